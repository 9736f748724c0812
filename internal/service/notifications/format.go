package notifications

import (
	"fmt"
	"html"
	"strings"

	"github.com/m04kA/EuroAsia-BookingService/internal/domain"
)

const (
	timestampFormat = "02.01.2006 15:04"
	emptyValue      = "нет"
)

// Format строит текст уведомления (HTML-разметка Telegram)
// Пользовательский ввод экранируется
func Format(event domain.Event) string {
	switch event.Kind {
	case domain.EventOrderSubmitted:
		return formatSubmitted(event)
	case domain.EventOrderAccepted:
		return formatAccepted(event)
	case domain.EventOrderRejected:
		return formatRejected(event)
	case domain.EventHighlightsReminder:
		return formatReminder(event)
	}
	return ""
}

func formatSubmitted(event domain.Event) string {
	o := event.Order
	if o == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("🔔 <b>НОВАЯ ЗАЯВКА</b>\n\n")
	fmt.Fprintf(&b, "👤 Клиент: %s\n", esc(o.ClientName))
	fmt.Fprintf(&b, "📞 Телефон: %s\n", esc(o.ClientPhone))
	if o.ClientEmail != nil {
		fmt.Fprintf(&b, "📧 Email: %s\n", esc(*o.ClientEmail))
	}
	fmt.Fprintf(&b, "📅 Дата: %s\n", o.EventDate.Format(domain.DateFormat))
	fmt.Fprintf(&b, "💬 Сообщение: %s\n\n", escOr(o.Message))
	fmt.Fprintf(&b, "⏰ %s\n\n", event.OccurredAt.Format(timestampFormat))
	b.WriteString("👉 Зайдите в админ-панель и рассмотрите заявку.")
	return b.String()
}

func formatAccepted(event domain.Event) string {
	o := event.Order
	if o == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("✅ <b>ЗАЯВКА ПРИНЯТА</b>\n\n")
	fmt.Fprintf(&b, "📅 %s - дата занята\n", o.EventDate.Format(domain.DateFormat))
	fmt.Fprintf(&b, "👤 Клиент: %s\n", esc(o.ClientName))
	fmt.Fprintf(&b, "📞 Телефон: %s", esc(o.ClientPhone))
	return b.String()
}

func formatRejected(event domain.Event) string {
	o := event.Order
	if o == nil {
		return ""
	}

	reason := event.Reason
	if reason == nil {
		reason = o.RejectionReason
	}

	var b strings.Builder
	b.WriteString("❌ <b>ЗАЯВКА ОТКЛОНЕНА</b>\n\n")
	fmt.Fprintf(&b, "📅 %s\n", o.EventDate.Format(domain.DateFormat))
	fmt.Fprintf(&b, "👤 Клиент: %s\n", esc(o.ClientName))
	fmt.Fprintf(&b, "📝 Причина: %s", escOr(reason))
	return b.String()
}

func formatReminder(event domain.Event) string {
	if len(event.PastEvents) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("📸 <b>НАПОМИНАНИЕ О HIGHLIGHTS</b>\n\n")
	fmt.Fprintf(&b, "Для %d прошедших мероприятий не загружены материалы:\n\n", len(event.PastEvents))
	for i, past := range event.PastEvents {
		fmt.Fprintf(&b, "%d. 📅 %s", i+1, past.Date.Format(domain.DateFormat))
		if past.ClientName != nil {
			fmt.Fprintf(&b, " - %s", esc(*past.ClientName))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n👉 Загрузите материалы в админ-панели!")
	return b.String()
}

func esc(s string) string {
	return html.EscapeString(s)
}

func escOr(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return emptyValue
	}
	return esc(*s)
}
