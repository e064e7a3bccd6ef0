package adaptor

import (
	"encoding/json"
	"net/http"

	"safari-njema/internal/dto/request"
	"safari-njema/internal/usecase"
	"safari-njema/pkg/utils"

	"go.uber.org/zap"
)

type NotificationHandler struct {
	service usecase.NotificationService
	log     *zap.Logger
}

func NewNotificationHandler(service usecase.NotificationService, log *zap.Logger) *NotificationHandler {
	return &NotificationHandler{
		service: service,
		log:     log.With(zap.String("handler", "notification")),
	}
}

// SendSMS handles POST /api/notifications/sms
func (h *NotificationHandler) SendSMS(w http.ResponseWriter, r *http.Request) {
	var req request.SendSMSRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Phone number and message are required", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Phone number and message are required", validationErrors)
		return
	}

	receipt, err := h.service.SendSMS(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "send SMS")
		return
	}

	utils.ResponseSuccess(w, "SMS sent successfully", receipt)
}

// SendEmail handles POST /api/notifications/email
func (h *NotificationHandler) SendEmail(w http.ResponseWriter, r *http.Request) {
	var req request.SendEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Email, subject and content are required", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Email, subject and content are required", validationErrors)
		return
	}

	receipt, err := h.service.SendEmail(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "send email")
		return
	}

	utils.ResponseSuccess(w, "Email sent successfully", receipt)
}
