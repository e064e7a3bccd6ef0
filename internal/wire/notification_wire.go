package wire

import (
	"safari-njema/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireNotification(r chi.Router, notificationHandler *adaptor.NotificationHandler) {
	// POST /api/notifications/sms - SMS send stub
	r.Post("/api/notifications/sms", notificationHandler.SendSMS)

	// POST /api/notifications/email - Email send stub
	r.Post("/api/notifications/email", notificationHandler.SendEmail)
}
