package highlights_reminder

// Response итог запуска напоминания
type Response struct {
	Reminded int // количество мероприятий в напоминании
}
