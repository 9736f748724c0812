package highlight

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

// Repository репозиторий материалов (highlights) прошедших мероприятий
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByDate получает материалы на дату календаря
func (r *Repository) GetByDate(ctx context.Context, date time.Time) (*domain.Highlight, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"h.id",
		"h.calendar_id",
		"c.date",
		"h.video_url",
		"h.image_path",
		"h.uploaded_at",
		"h.uploaded_by",
	).
		From("highlights h").
		Join("calendar c ON h.calendar_id = c.id").
		Where(squirrel.Eq{"c.date": date.Format(domain.DateFormat)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	var h domain.Highlight
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&h.ID,
		&h.CalendarID,
		&h.Date,
		&h.VideoURL,
		&h.ImagePath,
		&h.UploadedAt,
		&h.UploadedBy,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHighlightNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - scan highlight: %v", ErrScanRow, err)
	}

	return &h, nil
}

// GetByCalendarID получает материалы по ID записи календаря
func (r *Repository) GetByCalendarID(ctx context.Context, calendarID int64) (*domain.Highlight, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"calendar_id",
		"video_url",
		"image_path",
		"uploaded_at",
		"uploaded_by",
	).
		From("highlights").
		Where(squirrel.Eq{"calendar_id": calendarID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCalendarID - build select query: %v", ErrBuildQuery, err)
	}

	var h domain.Highlight
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&h.ID,
		&h.CalendarID,
		&h.VideoURL,
		&h.ImagePath,
		&h.UploadedAt,
		&h.UploadedBy,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHighlightNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCalendarID - scan highlight: %v", ErrScanRow, err)
	}

	return &h, nil
}

// Upsert создает или обновляет материалы записи календаря (одна запись на дату)
// Если новая обложка не передана (nil), сохраняется прежняя
func (r *Repository) Upsert(ctx context.Context, h *domain.Highlight) (*domain.Highlight, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("highlights").
		Columns("calendar_id", "video_url", "image_path", "uploaded_by").
		Values(h.CalendarID, h.VideoURL, h.ImagePath, h.UploadedBy).
		Suffix("ON CONFLICT (calendar_id) DO UPDATE SET " +
			"video_url = EXCLUDED.video_url, " +
			"image_path = COALESCE(EXCLUDED.image_path, highlights.image_path), " +
			"uploaded_by = EXCLUDED.uploaded_by, " +
			"uploaded_at = NOW() " +
			"RETURNING id, image_path, uploaded_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&h.ID, &h.ImagePath, &h.UploadedAt)
	if err != nil {
		if pgerrors.IsForeignKeyViolation(err) {
			return nil, ErrCalendarDayNotFound
		}
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	return h, nil
}

// Delete удаляет материалы и возвращает путь к обложке (для удаления файла)
func (r *Repository) Delete(ctx context.Context, id int64) (*string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("highlights").
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING image_path").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	var imagePath *string
	err = executor.QueryRowContext(ctx, query, args...).Scan(&imagePath)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHighlightNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return imagePath, nil
}
