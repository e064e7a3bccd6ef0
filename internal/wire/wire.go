package wire

import (
	"net/http"
	"time"

	"safari-njema/internal/adaptor"
	"safari-njema/internal/data/repository"
	"safari-njema/internal/ledger"
	"safari-njema/internal/usecase"
	"safari-njema/pkg/middleware"
	"safari-njema/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the assembled dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, seats *ledger.Ledger, config *utils.Config, logger *zap.Logger) *App {
	// Initialize services and handlers
	service := usecase.NewService(repo, seats, config, logger)
	handler := adaptor.NewHandler(service, logger)

	// Setup router
	router := setupRouter(handler, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router
func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireCatalog(r, handler.Catalog)
	wireSeat(r, handler.Seat)
	wireCustomer(r, handler.Customer)
	wireBooking(r, handler.Booking)
	wirePayment(r, handler.Payment)
	wireNotification(r, handler.Notification)

	// Health check endpoint
	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, "Safari Njema API is running", map[string]string{
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Unknown routes answer in the same envelope as everything else
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "API endpoint not found")
	})

	return r
}
