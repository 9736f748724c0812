package calendar

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/EuroAsia-BookingService/internal/domain"
	calendarRepo "github.com/m04kA/EuroAsia-BookingService/internal/infra/storage/calendar"
	highlightRepo "github.com/m04kA/EuroAsia-BookingService/internal/infra/storage/highlight"
	"github.com/m04kA/EuroAsia-BookingService/internal/service/calendar/models"
)

// Service сервис календаря занятости
type Service struct {
	calendarRepo  CalendarRepository
	highlightRepo HighlightRepository
	files         FileStore
	txManager     TransactionManager
	logger        Logger
	now           func() time.Time
}

// NewService создает новый экземпляр сервиса календаря
func NewService(
	calendarRepo CalendarRepository,
	highlightRepo HighlightRepository,
	files FileStore,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		calendarRepo:  calendarRepo,
		highlightRepo: highlightRepo,
		files:         files,
		txManager:     txManager,
		logger:        logger,
		now:           time.Now,
	}
}

// GetAll возвращает весь календарь по возрастанию дат
func (s *Service) GetAll(ctx context.Context) (*models.CalendarResponse, error) {
	entries, err := s.calendarRepo.List(ctx, domain.CalendarFilter{})
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainEntries(entries), nil
}

// GetRange возвращает календарь за период (границы включительно)
func (s *Service) GetRange(ctx context.Context, start, end *time.Time) (*models.CalendarResponse, error) {
	if start == nil || end == nil {
		s.logger.Warn("GetRange: start_date and end_date are required")
		return nil, fmt.Errorf("%w: start_date and end_date are required", ErrInvalidRange)
	}
	if start.After(*end) {
		s.logger.Warn("GetRange: start=%s is after end=%s",
			start.Format(domain.DateFormat), end.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: start_date is after end_date", ErrInvalidRange)
	}

	entries, err := s.calendarRepo.List(ctx, domain.CalendarFilter{StartDate: start, EndDate: end})
	if err != nil {
		s.logger.Error("GetRange: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetRange - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainEntries(entries), nil
}

// GetPastBusy возвращает прошедшие занятые даты с количеством загруженных highlights
func (s *Service) GetPastBusy(ctx context.Context) (*models.PastEventsResponse, error) {
	events, err := s.calendarRepo.ListPastBusy(ctx, domain.PastBusyFilter{Before: s.now()})
	if err != nil {
		s.logger.Error("GetPastBusy: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetPastBusy - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPastEvents(events), nil
}

// MarkManualBusy блокирует дату вручную
// Существующая запись на эту дату перезаписывается (административное решение)
func (s *Service) MarkManualBusy(ctx context.Context, req *models.MarkBusyRequest) (*models.CalendarDayResponse, error) {
	reason := normalizeReason(req.ManualReason)
	if reason != nil && utf8.RuneCountInString(*reason) > domain.MaxManualReasonLength {
		s.logger.Warn("MarkManualBusy: manual reason is too long")
		return nil, fmt.Errorf("%w: manual_reason is too long", ErrInvalidInput)
	}

	day, err := s.calendarRepo.MarkManualBusy(ctx, req.Date, reason)
	if err != nil {
		s.logger.Error("MarkManualBusy: repository error for date=%s: %v", req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: MarkManualBusy - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("MarkManualBusy: date=%s marked busy, calendar_id=%d", req.Date.Format(domain.DateFormat), day.ID)
	return models.FromDomainDay(day), nil
}

// Delete удаляет запись календаря
// Дату, занятую через заявку, удалить нельзя: сначала нужно отклонить заявку
// Highlights удаляются каскадно, их изображение - после фиксации
func (s *Service) Delete(ctx context.Context, id int64) error {
	var imagePath *string

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		day, err := s.calendarRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, calendarRepo.ErrDayNotFound) {
				return ErrDayNotFound
			}
			return fmt.Errorf("%w: Delete - get day: %v", ErrInternal, err)
		}

		if day.IsOrderLinked() {
			return ErrOrderLinked
		}

		highlight, err := s.highlightRepo.GetByCalendarID(txCtx, id)
		switch {
		case err == nil:
			imagePath = highlight.ImagePath
		case !errors.Is(err, highlightRepo.ErrHighlightNotFound):
			return fmt.Errorf("%w: Delete - get highlight: %v", ErrInternal, err)
		}

		if err := s.calendarRepo.Delete(txCtx, id); err != nil {
			if errors.Is(err, calendarRepo.ErrDayNotFound) {
				return ErrDayNotFound
			}
			return fmt.Errorf("%w: Delete - delete day: %v", ErrInternal, err)
		}
		return nil
	})

	switch {
	case err == nil:
		s.logger.Info("Delete: calendar day id=%d deleted", id)
		s.removeFile("Delete", imagePath)
	case errors.Is(err, ErrDayNotFound), errors.Is(err, ErrOrderLinked):
		s.logger.Warn("Delete: calendar day id=%d: %v", id, err)
	default:
		s.logger.Error("Delete: calendar day id=%d: %v", id, err)
		if !errors.Is(err, ErrInternal) {
			err = fmt.Errorf("%w: Delete: %v", ErrInternal, err)
		}
	}

	return err
}

// removeFile удаляет файл; ошибка только логируется, запись в БД уже удалена
func (s *Service) removeFile(op string, path *string) {
	if path == nil || *path == "" {
		return
	}
	if err := s.files.Remove(*path); err != nil {
		s.logger.Warn("%s: failed to remove file %s: %v", op, *path, err)
	}
}

func normalizeReason(reason *string) *string {
	if reason == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*reason)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
