package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
)

// Job ежедневная задача
type Job func(ctx context.Context) error

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Daily запускает задачу раз в сутки в заданные час и минуту (локальное время)
// Пропущенные запуски (процесс был остановлен) не навёрстываются
type Daily struct {
	name     string
	expr     string
	schedule cron.Schedule
	job      Job
	logger   Logger
}

// NewDaily создает планировщик с cron-расписанием "M H * * *"
func NewDaily(name string, hour, minute int, job Job, logger Logger) (*Daily, error) {
	expr := fmt.Sprintf("%d %d * * *", minute, hour)

	schedule, err := cron.ParseStandard(expr)
	if err != nil {
		return nil, fmt.Errorf("scheduler: invalid time %02d:%02d: %w", hour, minute, err)
	}

	return &Daily{
		name:     name,
		expr:     expr,
		schedule: schedule,
		job:      job,
		logger:   logger,
	}, nil
}

// Run блокируется до отмены ctx; выполняющаяся задача дожидается завершения
func (d *Daily) Run(ctx context.Context) {
	c := cron.New(cron.WithChain(
		cron.Recover(cronLogger{d.logger}),
		cron.SkipIfStillRunning(cronLogger{d.logger}),
	))
	c.Schedule(d.schedule, cron.FuncJob(func() { d.run(ctx) }))

	d.logger.Info("Scheduler %s: started, cron %q", d.name, d.expr)
	c.Start()

	<-ctx.Done()
	<-c.Stop().Done()
	d.logger.Info("Scheduler %s: stopped", d.name)
}

func (d *Daily) run(ctx context.Context) {
	d.logger.Info("Scheduler %s: running job", d.name)
	if err := d.job(ctx); err != nil {
		d.logger.Error("Scheduler %s: job failed: %v", d.name, err)
	}
}

// cronLogger адаптер cron.Logger поверх printf-логгера
type cronLogger struct {
	logger Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info("cron: %s %v", msg, keysAndValues)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error("cron: %s: %v %v", msg, err, keysAndValues)
}
