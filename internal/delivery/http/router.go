package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"coursebooking/internal/delivery/http/controllers"
	"coursebooking/internal/delivery/http/middleware"
	"coursebooking/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
// Admin routes are wrapped with bearer-token auth; everything else is
// reachable by shoppers and the checkout integration.
func NewRouter(
	logger *slog.Logger,
	verifier domain.TokenVerifier,
	authController *controllers.AuthController,
	catalogController *controllers.CatalogController,
	bookingController *controllers.BookingController,
	orderController *controllers.OrderController,
	adminController *controllers.AdminController,
) *http.ServeMux {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(verifier, logger)

	// Shopper-facing catalog and checkout
	mux.HandleFunc("GET /products/{productID}/slots", catalogController.ListOpenSlots)
	mux.HandleFunc("POST /products/{productID}/quote", bookingController.Quote)
	mux.HandleFunc("POST /orders", orderController.PlaceOrder)
	mux.HandleFunc("POST /orders/{orderID}/complete", orderController.CompleteOrder)

	// Auth
	mux.HandleFunc("POST /auth/login", authController.Login)

	// Manager admin
	mux.HandleFunc("PUT /admin/products/{productID}/slots", requireAuth(catalogController.ReplaceSlots))
	mux.HandleFunc("GET /admin/dashboard", requireAuth(adminController.Dashboard))
	mux.HandleFunc("GET /admin/slots/{slotID}/roster", requireAuth(adminController.SlotRoster))
	mux.HandleFunc("GET /admin/slots/{slotID}/roster.csv", requireAuth(adminController.SlotRosterCSV))
	mux.HandleFunc("POST /admin/orders/{orderID}/resend", requireAuth(orderController.ResendNotifications))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
