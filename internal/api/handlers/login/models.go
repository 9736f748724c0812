package login

import "github.com/m04kA/EuroAsia-BookingService/internal/service/auth/models"

// LoginRequest HTTP request model
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *LoginRequest) ToServiceRequest() *models.LoginRequest {
	return &models.LoginRequest{
		Username: r.Username,
		Password: r.Password,
	}
}
