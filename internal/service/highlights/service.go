package highlights

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/EuroAsia-BookingService/internal/domain"
	"github.com/m04kA/EuroAsia-BookingService/internal/infra/filestore"
	highlightRepo "github.com/m04kA/EuroAsia-BookingService/internal/infra/storage/highlight"
	"github.com/m04kA/EuroAsia-BookingService/internal/service/highlights/models"
)

// Service сервис материалов (highlights) прошедших мероприятий
type Service struct {
	highlightRepo HighlightRepository
	files         FileStore
	logger        Logger
}

// NewService создает новый экземпляр сервиса
func NewService(highlightRepo HighlightRepository, files FileStore, logger Logger) *Service {
	return &Service{
		highlightRepo: highlightRepo,
		files:         files,
		logger:        logger,
	}
}

// GetByDate возвращает материалы на дату; nil, если ничего не загружено
func (s *Service) GetByDate(ctx context.Context, date time.Time) (*models.HighlightResponse, error) {
	h, err := s.highlightRepo.GetByDate(ctx, date)
	if err != nil {
		if errors.Is(err, highlightRepo.ErrHighlightNotFound) {
			return nil, nil
		}
		s.logger.Error("GetByDate: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetByDate - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainHighlight(h), nil
}

// Upsert создает или обновляет материалы даты календаря
// Новое изображение заменяет старое (старый файл удаляется), без изображения старое сохраняется
func (s *Service) Upsert(ctx context.Context, req *models.UpsertRequest) (*models.HighlightResponse, error) {
	if req.CalendarID <= 0 {
		return nil, fmt.Errorf("%w: calendar_id is required", ErrInvalidInput)
	}

	previous, err := s.highlightRepo.GetByCalendarID(ctx, req.CalendarID)
	if err != nil && !errors.Is(err, highlightRepo.ErrHighlightNotFound) {
		s.logger.Error("Upsert: failed to get highlight for calendar_id=%d: %v", req.CalendarID, err)
		return nil, fmt.Errorf("%w: Upsert - get previous: %v", ErrInternal, err)
	}

	var imagePath *string
	if req.Image != nil {
		saved, err := s.files.Save(filestore.CategoryHighlights, req.Image.Filename, req.Image.Content)
		if err != nil {
			return nil, s.mapFileError("Upsert", err)
		}
		imagePath = &saved
	}

	h, err := s.highlightRepo.Upsert(ctx, &domain.Highlight{
		CalendarID: req.CalendarID,
		VideoURL:   trimmedOrNil(req.VideoURL),
		ImagePath:  imagePath,
		UploadedBy: req.UploadedBy,
	})
	if err != nil {
		s.removeFile("Upsert", imagePath)
		if errors.Is(err, highlightRepo.ErrCalendarDayNotFound) {
			s.logger.Warn("Upsert: calendar day id=%d not found", req.CalendarID)
			return nil, ErrCalendarDayNotFound
		}
		s.logger.Error("Upsert: repository error for calendar_id=%d: %v", req.CalendarID, err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	if imagePath != nil && previous != nil {
		s.removeFile("Upsert", previous.ImagePath)
	}

	s.logger.Info("Upsert: highlight id=%d saved for calendar_id=%d", h.ID, req.CalendarID)
	return models.FromDomainHighlight(h), nil
}

// Delete удаляет материалы и файл изображения
func (s *Service) Delete(ctx context.Context, id int64) error {
	imagePath, err := s.highlightRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, highlightRepo.ErrHighlightNotFound) {
			s.logger.Warn("Delete: highlight id=%d not found", id)
			return ErrHighlightNotFound
		}
		s.logger.Error("Delete: repository error for highlight id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.removeFile("Delete", imagePath)
	s.logger.Info("Delete: highlight id=%d deleted", id)
	return nil
}

func (s *Service) mapFileError(op string, err error) error {
	switch {
	case errors.Is(err, filestore.ErrUnsupportedType):
		s.logger.Warn("%s: %v", op, err)
		return ErrUnsupportedImage
	case errors.Is(err, filestore.ErrTooLarge):
		s.logger.Warn("%s: %v", op, err)
		return ErrImageTooLarge
	}
	s.logger.Error("%s: failed to save image: %v", op, err)
	return fmt.Errorf("%w: %s - save image: %v", ErrInternal, op, err)
}

// removeFile удаляет файл; ошибка только логируется, запись в БД уже изменена
func (s *Service) removeFile(op string, path *string) {
	if path == nil || *path == "" {
		return
	}
	if err := s.files.Remove(*path); err != nil {
		s.logger.Warn("%s: failed to remove file %s: %v", op, *path, err)
	}
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
