package admin

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/EuroAsia-BookingService/internal/domain"
	"github.com/m04kA/EuroAsia-BookingService/pkg/dbmetrics"
	"github.com/m04kA/EuroAsia-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий администраторов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория администраторов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateIfAbsent создает администратора, если логин ещё не занят
// Возвращает true, если запись была создана
func (r *Repository) CreateIfAbsent(ctx context.Context, admin *domain.Admin) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("admins").
		Columns("username", "password_hash", "full_name").
		Values(admin.Username, admin.PasswordHash, admin.FullName).
		Suffix("ON CONFLICT (username) DO NOTHING").
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: CreateIfAbsent - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: CreateIfAbsent - execute insert: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: CreateIfAbsent - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected > 0, nil
}

// GetByUsername получает администратора по логину
func (r *Repository) GetByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	return r.getOne(ctx, "GetByUsername", squirrel.Eq{"username": username})
}

// GetByID получает администратора по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Admin, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Sqlizer) (*domain.Admin, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "username", "password_hash", "full_name", "created_at").
		From("admins").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var admin domain.Admin
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&admin.ID,
		&admin.Username,
		&admin.PasswordHash,
		&admin.FullName,
		&admin.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan admin: %v", ErrScanRow, op, err)
	}

	return &admin, nil
}
