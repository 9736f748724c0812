package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/EuroAsia-BookingService/internal/domain"
	adminRepo "github.com/m04kA/EuroAsia-BookingService/internal/infra/storage/admin"
	"github.com/m04kA/EuroAsia-BookingService/internal/service/auth/models"
)

// dummyHash сравнивается при неизвестном логине: время ответа не зависит от существования пользователя
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("dummy-password"), bcrypt.DefaultCost)

// Service сервис аутентификации администраторов
type Service struct {
	adminRepo AdminRepository
	tokens    TokenManager
	logger    Logger
	cost      int
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(adminRepo AdminRepository, tokens TokenManager, logger Logger) *Service {
	return &Service{
		adminRepo: adminRepo,
		tokens:    tokens,
		logger:    logger,
		cost:      bcrypt.DefaultCost,
	}
}

// EnsureAdmins создает учётные записи администраторов, которых ещё нет
// Пароли существующих записей не меняются
func (s *Service) EnsureAdmins(ctx context.Context, seeds []models.AdminSeed) error {
	for _, seed := range seeds {
		username := strings.TrimSpace(seed.Username)
		if username == "" || seed.Password == "" {
			return fmt.Errorf("%w: admin username and password are required", ErrInvalidInput)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), s.cost)
		if err != nil {
			return fmt.Errorf("%w: EnsureAdmins - hash password: %v", ErrInternal, err)
		}

		created, err := s.adminRepo.CreateIfAbsent(ctx, &domain.Admin{
			Username:     username,
			PasswordHash: string(hash),
			FullName:     seed.FullName,
		})
		if err != nil {
			s.logger.Error("EnsureAdmins: failed to create admin %s: %v", username, err)
			return fmt.Errorf("%w: EnsureAdmins - repository error: %v", ErrInternal, err)
		}

		if created {
			s.logger.Info("EnsureAdmins: admin %s created", username)
		}
	}

	return nil
}

// Login проверяет логин и пароль и выпускает токен на 24 часа
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	admin, err := s.adminRepo.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, adminRepo.ErrAdminNotFound) {
			bcrypt.CompareHashAndPassword(dummyHash, []byte(req.Password))
			s.logger.Warn("Login: unknown username=%s", req.Username)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error: %v", err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for username=%s", admin.Username)
		return nil, ErrInvalidCredentials
	}

	raw, expiresAt, err := s.tokens.Issue(admin.ID, admin.Username)
	if err != nil {
		s.logger.Error("Login: failed to issue token for admin id=%d: %v", admin.ID, err)
		return nil, fmt.Errorf("%w: Login - issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: admin id=%d logged in", admin.ID)
	return &models.LoginResponse{
		Success:   true,
		Token:     raw,
		ExpiresAt: expiresAt,
		Admin: models.AdminIdentity{
			ID:       admin.ID,
			Username: admin.Username,
			FullName: admin.FullName,
		},
	}, nil
}

// Verify проверяет токен и возвращает зашитую в него личность администратора
func (s *Service) Verify(raw string) (*models.AdminIdentity, error) {
	claims, err := s.tokens.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	return &models.AdminIdentity{
		ID:       claims.AdminID,
		Username: claims.Username,
	}, nil
}
