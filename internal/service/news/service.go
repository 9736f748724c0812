package news

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/EuroAsia-BookingService/internal/domain"
	"github.com/m04kA/EuroAsia-BookingService/internal/infra/filestore"
	newsRepo "github.com/m04kA/EuroAsia-BookingService/internal/infra/storage/news"
	"github.com/m04kA/EuroAsia-BookingService/internal/service/news/models"
)

// Service сервис новостей
type Service struct {
	newsRepo NewsRepository
	files    FileStore
	logger   Logger
}

// NewService создает новый экземпляр сервиса новостей
func NewService(newsRepo NewsRepository, files FileStore, logger Logger) *Service {
	return &Service{
		newsRepo: newsRepo,
		files:    files,
		logger:   logger,
	}
}

// ListPublished опубликованные новости (публичная часть сайта)
func (s *Service) ListPublished(ctx context.Context) (*models.NewsListResponse, error) {
	return s.list(ctx, "ListPublished", true)
}

// ListAll все новости, включая скрытые (админ-панель)
func (s *Service) ListAll(ctx context.Context) (*models.NewsListResponse, error) {
	return s.list(ctx, "ListAll", false)
}

func (s *Service) list(ctx context.Context, op string, publishedOnly bool) (*models.NewsListResponse, error) {
	items, err := s.newsRepo.List(ctx, publishedOnly)
	if err != nil {
		s.logger.Error("%s: repository error: %v", op, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	resp := &models.NewsListResponse{News: make([]models.NewsResponse, 0, len(items))}
	for _, n := range items {
		item, err := s.toResponse(n)
		if err != nil {
			return nil, err
		}
		resp.News = append(resp.News, *item)
	}

	return resp, nil
}

// GetByID получает новость по ID
// publishedOnly: скрытая новость для публичной части считается несуществующей
func (s *Service) GetByID(ctx context.Context, id int64, publishedOnly bool) (*models.NewsResponse, error) {
	n, err := s.newsRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, newsRepo.ErrNewsNotFound) {
			s.logger.Warn("GetByID: news id=%d not found", id)
			return nil, ErrNewsNotFound
		}
		s.logger.Error("GetByID: repository error for news id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if publishedOnly && !n.Published {
		s.logger.Warn("GetByID: news id=%d is not published", id)
		return nil, ErrNewsNotFound
	}

	return s.toResponse(n)
}

// Create создает новость
func (s *Service) Create(ctx context.Context, req *models.NewsRequest) (*models.NewsResponse, error) {
	title, content, err := validate(req)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	imagePath, err := s.saveImage("Create", req.Image)
	if err != nil {
		return nil, err
	}

	created, err := s.newsRepo.Create(ctx, &domain.News{
		Title:     title,
		Content:   content,
		ImagePath: imagePath,
		Published: req.Published,
	})
	if err != nil {
		s.removeFile("Create", imagePath)
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: news id=%d created, published=%t", created.ID, created.Published)
	return s.toResponse(created)
}

// Update заменяет поля новости; изображение меняется только при загрузке нового
func (s *Service) Update(ctx context.Context, id int64, req *models.NewsRequest) (*models.NewsResponse, error) {
	title, content, err := validate(req)
	if err != nil {
		s.logger.Warn("Update: validation failed for news id=%d: %v", id, err)
		return nil, err
	}

	existing, err := s.newsRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, newsRepo.ErrNewsNotFound) {
			s.logger.Warn("Update: news id=%d not found", id)
			return nil, ErrNewsNotFound
		}
		s.logger.Error("Update: repository error for news id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - get news: %v", ErrInternal, err)
	}

	newImage, err := s.saveImage("Update", req.Image)
	if err != nil {
		return nil, err
	}

	oldImage := existing.ImagePath
	existing.Title = title
	existing.Content = content
	existing.Published = req.Published
	if newImage != nil {
		existing.ImagePath = newImage
	}

	if err := s.newsRepo.Update(ctx, existing); err != nil {
		s.removeFile("Update", newImage)
		if errors.Is(err, newsRepo.ErrNewsNotFound) {
			return nil, ErrNewsNotFound
		}
		s.logger.Error("Update: repository error for news id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if newImage != nil {
		s.removeFile("Update", oldImage)
	}

	s.logger.Info("Update: news id=%d updated", id)
	return s.toResponse(existing)
}

// Delete удаляет новость вместе с изображением
func (s *Service) Delete(ctx context.Context, id int64) error {
	imagePath, err := s.newsRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, newsRepo.ErrNewsNotFound) {
			s.logger.Warn("Delete: news id=%d not found", id)
			return ErrNewsNotFound
		}
		s.logger.Error("Delete: repository error for news id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.removeFile("Delete", imagePath)
	s.logger.Info("Delete: news id=%d deleted", id)
	return nil
}

// TogglePublish публикует или скрывает новость, возвращает новое состояние
func (s *Service) TogglePublish(ctx context.Context, id int64) (bool, error) {
	published, err := s.newsRepo.TogglePublished(ctx, id)
	if err != nil {
		if errors.Is(err, newsRepo.ErrNewsNotFound) {
			s.logger.Warn("TogglePublish: news id=%d not found", id)
			return false, ErrNewsNotFound
		}
		s.logger.Error("TogglePublish: repository error for news id=%d: %v", id, err)
		return false, fmt.Errorf("%w: TogglePublish - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("TogglePublish: news id=%d published=%t", id, published)
	return published, nil
}

func (s *Service) toResponse(n *domain.News) (*models.NewsResponse, error) {
	html, err := renderMarkdown(n.Content)
	if err != nil {
		s.logger.Error("render markdown for news id=%d: %v", n.ID, err)
		return nil, fmt.Errorf("%w: render markdown: %v", ErrInternal, err)
	}
	return models.FromDomainNews(n, html), nil
}

func (s *Service) saveImage(op string, image *models.FileUpload) (*string, error) {
	if image == nil {
		return nil, nil
	}

	saved, err := s.files.Save(filestore.CategoryNews, image.Filename, image.Content)
	if err != nil {
		switch {
		case errors.Is(err, filestore.ErrUnsupportedType):
			s.logger.Warn("%s: %v", op, err)
			return nil, ErrUnsupportedImage
		case errors.Is(err, filestore.ErrTooLarge):
			s.logger.Warn("%s: %v", op, err)
			return nil, ErrImageTooLarge
		}
		s.logger.Error("%s: failed to save image: %v", op, err)
		return nil, fmt.Errorf("%w: %s - save image: %v", ErrInternal, op, err)
	}

	return &saved, nil
}

func (s *Service) removeFile(op string, path *string) {
	if path == nil || *path == "" {
		return
	}
	if err := s.files.Remove(*path); err != nil {
		s.logger.Warn("%s: failed to remove file %s: %v", op, *path, err)
	}
}

func validate(req *models.NewsRequest) (string, string, error) {
	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)

	if title == "" || content == "" {
		return "", "", fmt.Errorf("%w: title and content are required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(title) > domain.MaxNewsTitleLength {
		return "", "", fmt.Errorf("%w: title is too long", ErrInvalidInput)
	}

	return title, content, nil
}
