package domain

import "time"

// Highlight материалы после мероприятия (обложка + ссылка на видео), одна запись на дату календаря
type Highlight struct {
	ID         int64
	CalendarID int64
	Date       time.Time // дата календаря, заполняется при выборке по дате
	VideoURL   *string
	ImagePath  *string
	UploadedAt time.Time
	UploadedBy *string
}

// News новость на сайте
type News struct {
	ID        int64
	Title     string
	Content   string
	ImagePath *string
	Published bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Admin учётная запись администратора
type Admin struct {
	ID           int64
	Username     string
	PasswordHash string
	FullName     string
	CreatedAt    time.Time
}
