package calendar

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/EuroAsia-BookingService/internal/domain"
	"github.com/m04kA/EuroAsia-BookingService/internal/infra/storage/pgerrors"
	"github.com/m04kA/EuroAsia-BookingService/pkg/dbmetrics"
	"github.com/m04kA/EuroAsia-BookingService/pkg/psqlbuilder"
)

var dayColumns = []string{
	"id",
	"date",
	"status",
	"order_id",
	"manual_reason",
	"created_at",
}

// Repository репозиторий календаря занятости
// Дата - естественный ключ: все записи через upsert (ON CONFLICT (date))
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория календаря
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает запись календаря по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.CalendarDay, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByDate получает запись календаря на дату
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByDate(ctx context.Context, date time.Time) (*domain.CalendarDay, error) {
	return r.getOne(ctx, "GetByDate", squirrel.Eq{"date": dateOnly(date)})
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Sqlizer) (*domain.CalendarDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(dayColumns...).
		From("calendar").
		Where(where)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	day, err := scanDay(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDayNotFound
	}
	if err != nil {
		if pgerrors.IsSerializationFailure(err) {
			return nil, fmt.Errorf("%w: %s: %v", ErrSerialization, op, err)
		}
		return nil, fmt.Errorf("%w: %s - scan day: %v", ErrScanRow, op, err)
	}

	return day, nil
}

// UpsertPending помечает дату как pending за заявкой
// Перезаписывает только свободную (free) запись: pending другой заявки и busy не трогаются,
// в этом случае возвращается ErrDateUnavailable
func (r *Repository) UpsertPending(ctx context.Context, date time.Time, orderID int64) (*domain.CalendarDay, error) {
	return r.upsert(ctx, "UpsertPending",
		date, domain.DayPending, &orderID, nil,
		"ON CONFLICT (date) DO UPDATE SET status = EXCLUDED.status, order_id = EXCLUDED.order_id, manual_reason = NULL "+
			"WHERE calendar.status = 'free'",
	)
}

// MarkBusy помечает дату занятой за принятой заявкой (идемпотентно)
func (r *Repository) MarkBusy(ctx context.Context, date time.Time, orderID int64) (*domain.CalendarDay, error) {
	return r.upsert(ctx, "MarkBusy",
		date, domain.DayBusy, &orderID, nil,
		"ON CONFLICT (date) DO UPDATE SET status = EXCLUDED.status, order_id = EXCLUDED.order_id, manual_reason = NULL",
	)
}

// MarkManualBusy блокирует дату администратором без заявки
// Перезаписывает любую существующую запись на эту дату
func (r *Repository) MarkManualBusy(ctx context.Context, date time.Time, reason *string) (*domain.CalendarDay, error) {
	return r.upsert(ctx, "MarkManualBusy",
		date, domain.DayBusy, nil, reason,
		"ON CONFLICT (date) DO UPDATE SET status = EXCLUDED.status, order_id = NULL, manual_reason = EXCLUDED.manual_reason",
	)
}

func (r *Repository) upsert(
	ctx context.Context,
	op string,
	date time.Time,
	status domain.DayStatus,
	orderID *int64,
	reason *string,
	onConflict string,
) (*domain.CalendarDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("calendar").
		Columns("date", "status", "order_id", "manual_reason").
		Values(dateOnly(date), status, orderID, reason).
		Suffix(onConflict + " RETURNING id, date, status, order_id, manual_reason, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build upsert query: %v", ErrBuildQuery, op, err)
	}

	day, err := scanDay(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			// ON CONFLICT ... WHERE не выполнил обновление
			return nil, ErrDateUnavailable
		case pgerrors.IsUniqueViolation(err):
			return nil, fmt.Errorf("%w: %s: %v", ErrDateUnavailable, op, err)
		case pgerrors.IsSerializationFailure(err):
			return nil, fmt.Errorf("%w: %s: %v", ErrSerialization, op, err)
		}
		return nil, fmt.Errorf("%w: %s - execute upsert: %v", ErrExecQuery, op, err)
	}

	return day, nil
}

// MarkFreeByOrder освобождает дату, удерживаемую заявкой
// Строка сохраняется со статусом free, ссылка на заявку очищается
// Возвращает количество изменённых строк (0 - заявка дату не удерживала)
func (r *Repository) MarkFreeByOrder(ctx context.Context, orderID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("calendar").
		Set("status", domain.DayFree).
		Set("order_id", nil).
		Where(squirrel.Eq{"order_id": orderID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: MarkFreeByOrder - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if pgerrors.IsSerializationFailure(err) {
			return 0, fmt.Errorf("%w: MarkFreeByOrder: %v", ErrSerialization, err)
		}
		return 0, fmt.Errorf("%w: MarkFreeByOrder - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: MarkFreeByOrder - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// Delete удаляет запись календаря
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("calendar").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrDayNotFound
	}

	return nil
}

// List получает записи календаря вместе с данными клиента заявки
// Поддерживает фильтрацию по периоду (включительно); сортировка по дате
func (r *Repository) List(ctx context.Context, filter domain.CalendarFilter) ([]*domain.CalendarEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"c.id",
		"c.date",
		"c.status",
		"c.order_id",
		"c.manual_reason",
		"c.created_at",
		"o.client_name",
		"o.client_phone",
	).
		From("calendar c").
		LeftJoin("orders o ON c.order_id = o.id")

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"c.date": dateOnly(*filter.StartDate)})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"c.date": dateOnly(*filter.EndDate)})
	}

	query, args, err := selectBuilder.OrderBy("c.date ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.CalendarEntry, 0)
	for rows.Next() {
		var entry domain.CalendarEntry
		err := rows.Scan(
			&entry.ID,
			&entry.Date,
			&entry.Status,
			&entry.OrderID,
			&entry.ManualReason,
			&entry.CreatedAt,
			&entry.ClientName,
			&entry.ClientPhone,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}

// ListPastBusy получает прошедшие занятые даты с количеством загруженных highlights
// Сортировка от последних к ранним
func (r *Repository) ListPastBusy(ctx context.Context, filter domain.PastBusyFilter) ([]*domain.PastEvent, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	const highlightsCount = "(SELECT COUNT(*) FROM highlights h WHERE h.calendar_id = c.id)"

	selectBuilder := psqlbuilder.Select(
		"c.id",
		"c.date",
		"c.status",
		"c.order_id",
		"c.manual_reason",
		"c.created_at",
		"o.client_name",
		highlightsCount+" AS highlights_count",
	).
		From("calendar c").
		LeftJoin("orders o ON c.order_id = o.id").
		Where(squirrel.Eq{"c.status": domain.DayBusy}).
		Where(squirrel.Lt{"c.date": dateOnly(filter.Before)}).
		OrderBy("c.date DESC")

	if filter.OnlyWithoutHighlights {
		selectBuilder = selectBuilder.Where(highlightsCount + " = 0")
	}
	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(filter.Limit)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListPastBusy - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListPastBusy - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	events := make([]*domain.PastEvent, 0)
	for rows.Next() {
		var event domain.PastEvent
		err := rows.Scan(
			&event.ID,
			&event.Date,
			&event.Status,
			&event.OrderID,
			&event.ManualReason,
			&event.CreatedAt,
			&event.ClientName,
			&event.HighlightsCount,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListPastBusy - scan row: %v", ErrScanRow, err)
		}
		events = append(events, &event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListPastBusy - rows error: %v", ErrScanRow, err)
	}

	return events, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDay(row rowScanner) (*domain.CalendarDay, error) {
	var day domain.CalendarDay

	err := row.Scan(
		&day.ID,
		&day.Date,
		&day.Status,
		&day.OrderID,
		&day.ManualReason,
		&day.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &day, nil
}

// dateOnly отбрасывает время, оставляя календарную дату
func dateOnly(t time.Time) string {
	return t.Format(domain.DateFormat)
}
