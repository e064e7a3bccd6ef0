package usecase

import (
	"context"
	"fmt"
	"time"

	"safari-njema/internal/dto/request"
	"safari-njema/internal/dto/response"
	"safari-njema/pkg/utils"

	"go.uber.org/zap"
)

// NotificationService acknowledges send requests without delivering
// anything. Wiring a real SMS/email provider happens behind this interface.
type NotificationService interface {
	SendSMS(ctx context.Context, req *request.SendSMSRequest) (*response.SMSReceiptResponse, error)
	SendEmail(ctx context.Context, req *request.SendEmailRequest) (*response.EmailReceiptResponse, error)
}

type notificationService struct {
	log *zap.Logger
}

func NewNotificationService(log *zap.Logger) NotificationService {
	return &notificationService{
		log: log.With(zap.String("service", "notification")),
	}
}

func (s *notificationService) SendSMS(ctx context.Context, req *request.SendSMSRequest) (*response.SMSReceiptResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	s.log.Info("Sending SMS",
		zap.String("phone_number", req.PhoneNumber),
		zap.String("message", req.Message),
	)

	return &response.SMSReceiptResponse{
		PhoneNumber: req.PhoneNumber,
		Message:     req.Message,
		SentAt:      time.Now(),
	}, nil
}

func (s *notificationService) SendEmail(ctx context.Context, req *request.SendEmailRequest) (*response.EmailReceiptResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	s.log.Info("Sending email",
		zap.String("email", req.Email),
		zap.String("subject", req.Subject),
	)

	return &response.EmailReceiptResponse{
		Email:   req.Email,
		Subject: req.Subject,
		Content: req.Content,
		SentAt:  time.Now(),
	}, nil
}
