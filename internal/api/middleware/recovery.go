package middleware

import (
	"fmt"
	"net/http"

	gorillaHandlers "github.com/gorilla/handlers"
)

// Recovery превращает панику в обработчике в 500, панику и стек пишет в лог
func Recovery(logger Logger) func(http.Handler) http.Handler {
	return gorillaHandlers.RecoveryHandler(
		gorillaHandlers.RecoveryLogger(recoveryLogger{logger: logger}),
		gorillaHandlers.PrintRecoveryStack(true),
	)
}

// recoveryLogger адаптер gorilla RecoveryHandlerLogger поверх printf-логгера
type recoveryLogger struct {
	logger Logger
}

func (l recoveryLogger) Println(v ...interface{}) {
	l.logger.Error("panic recovered: %s", fmt.Sprint(v...))
}
