package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"rewear-backend/internal/config"
	"rewear-backend/internal/security"
	"rewear-backend/internal/service"
)

// Services bundles what the router wires to handlers.
type Services struct {
	Donations     service.DonationService
	Lifecycle     service.LifecycleService
	Notifications service.NotificationService
	Photos        service.PhotoService
}

// NewRouter builds the full API surface. Photo downloads are public so photo
// URLs can be embedded directly; everything else requires a valid access
// token.
func NewRouter(cfg *config.Config, tm security.TokenManager, svcs Services) http.Handler {
	donationHandler := NewDonationHandler(svcs.Donations, svcs.Lifecycle)
	inventoryHandler := NewInventoryHandler(svcs.Lifecycle)
	notificationHandler := NewNotificationHandler(svcs.Notifications)
	photoHandler := NewPhotoHandler(svcs.Photos, cfg.Storage.MaxFileSizeMB)

	r := mux.NewRouter()
	r.Use(LoggingMiddleware)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	public := r.PathPrefix("/api/v1").Subrouter()
	public.HandleFunc("/photos/{key}", photoHandler.Download).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(AuthMiddleware(tm))

	api.HandleFunc("/donations", donationHandler.Submit).Methods(http.MethodPost)
	api.HandleFunc("/donations", donationHandler.ListMine).Methods(http.MethodGet)
	api.HandleFunc("/donations/{id:[0-9]+}", donationHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/donations/{id:[0-9]+}/cancel", donationHandler.Cancel).Methods(http.MethodPost)

	api.HandleFunc("/orgs/{orgID:[0-9]+}/donations", donationHandler.ListByOrg).Methods(http.MethodGet)
	api.HandleFunc("/orgs/{orgID:[0-9]+}/donations/{requestID:[0-9]+}/decision", donationHandler.Decide).Methods(http.MethodPost)

	api.HandleFunc("/orgs/{orgID:[0-9]+}/inventory", inventoryHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/orgs/{orgID:[0-9]+}/inventory/{inventoryID:[0-9]+}/distribute", inventoryHandler.Distribute).Methods(http.MethodPost)
	api.HandleFunc("/orgs/{orgID:[0-9]+}/distributions", inventoryHandler.ListDistributions).Methods(http.MethodGet)

	api.HandleFunc("/notifications", notificationHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/notifications/{id:[0-9]+}/read", notificationHandler.MarkAsRead).Methods(http.MethodPost)

	api.HandleFunc("/photos", photoHandler.CreateUpload).Methods(http.MethodPost)
	api.HandleFunc("/photos/upload/{key}", photoHandler.Upload).Methods(http.MethodPut)

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})
	return c.Handler(r)
}
