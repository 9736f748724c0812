package models

import "time"

// AdminSeed администратор из конфигурации
type AdminSeed struct {
	Username string
	Password string
	FullName string
}

// LoginRequest запрос на вход
type LoginRequest struct {
	Username string
	Password string
}

// AdminIdentity данные администратора в ответах и в контексте запроса
type AdminIdentity struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name,omitempty"`
}

// LoginResponse результат успешного входа
type LoginResponse struct {
	Success   bool          `json:"success"`
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expires_at"`
	Admin     AdminIdentity `json:"admin"`
}
