package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/m04kA/EuroAsia-BookingService/pkg/dbmetrics"
)

//go:embed *.sql
var files embed.FS

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Apply выполняет все *.sql файлы по порядку имён
// Скрипты идемпотентны (IF NOT EXISTS), поэтому запускаются при каждом старте
func Apply(ctx context.Context, db dbmetrics.DBExecutor, log Logger) error {
	names, err := fs.Glob(files, "*.sql")
	if err != nil {
		return fmt.Errorf("migrations: list files: %w", err)
	}
	sort.Strings(names)

	for _, name := range names {
		body, err := files.ReadFile(name)
		if err != nil {
			return fmt.Errorf("migrations: read %s: %w", name, err)
		}

		if _, err := db.ExecContext(ctx, string(body)); err != nil {
			return fmt.Errorf("migrations: apply %s: %w", name, err)
		}
		log.Info("Migration applied: %s", name)
	}

	return nil
}
