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

type CustomerHandler struct {
	service usecase.CustomerService
	log     *zap.Logger
}

func NewCustomerHandler(service usecase.CustomerService, log *zap.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: service,
		log:     log.With(zap.String("handler", "customer")),
	}
}

// Register handles POST /api/customers
func (h *CustomerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Missing required customer information", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Missing required customer information", validationErrors)
		return
	}

	customer, err := h.service.FindOrCreate(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "register customer")
		return
	}

	utils.ResponseSuccess(w, "", customer)
}

// Get handles GET /api/customers/{customerId}
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "customerId")

	customer, err := h.service.Get(r.Context(), customerID)
	if err != nil {
		handleServiceError(h.log, w, err, "get customer")
		return
	}

	utils.ResponseSuccess(w, "", customer)
}
