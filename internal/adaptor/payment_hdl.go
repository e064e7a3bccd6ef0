package adaptor

import (
	"encoding/json"
	"net/http"

	"safari-njema/internal/dto/request"
	"safari-njema/internal/usecase"
	"safari-njema/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment")),
	}
}

// Initiate handles POST /api/payments/initiate
func (h *PaymentHandler) Initiate(w http.ResponseWriter, r *http.Request) {
	var req request.InitiatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Missing required payment information", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Missing required payment information", validationErrors)
		return
	}

	payment, err := h.service.Initiate(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "initiate payment")
		return
	}

	utils.ResponseSuccess(w, "Payment initiated successfully", payment)
}

// GetStatus handles GET /api/payments/{paymentId}/status
func (h *PaymentHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	paymentID := chi.URLParam(r, "paymentId")

	payment, err := h.service.Status(r.Context(), paymentID)
	if err != nil {
		handleServiceError(h.log, w, err, "get payment status")
		return
	}

	utils.ResponseSuccess(w, "", payment)
}
