package rest

import (
	"encoding/json"
	"net/http"

	"github.com/ewilliams-labs/dashboard/internal/core/ports"
	"github.com/ewilliams-labs/dashboard/internal/core/services"
)

// CatalogFactory returns a catalog client acting for the user owning token.
type CatalogFactory func(token string) ports.CatalogProvider

// Handler manages the HTTP interface for our application.
type Handler struct {
	catalogFor CatalogFactory
	appCatalog ports.CatalogProvider // optional; serves token-less new releases
	widgets    *services.Widgets
	router     *http.ServeMux // Standard library router
}

// NewHandler initializes the HTTP adapter and sets up routes.
// appCatalog may be nil when no client credentials are configured.
func NewHandler(catalogFor CatalogFactory, appCatalog ports.CatalogProvider, widgets *services.Widgets) *Handler {
	h := &Handler{
		catalogFor: catalogFor,
		appCatalog: appCatalog,
		widgets:    widgets,
		router:     http.NewServeMux(),
	}

	// Register Routes
	h.routes()

	return h
}

// ServeHTTP satisfies the http.Handler interface.
// Every request gets a request id and an access log line before reaching the router.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	withRequestLogging(h.router).ServeHTTP(w, r)
}

// routes defines the mapping between URLs and methods.
func (h *Handler) routes() {
	// Health Check
	h.router.HandleFunc("GET /health", h.HealthCheck)
	// Catalog
	h.router.HandleFunc("GET /serverApi/me/getData", h.GetUserData)
	h.router.HandleFunc("GET /serverApi/dashboard/topArtist", h.GetTopArtist)
	h.router.HandleFunc("GET /serverApi/dashboard/artistTopTrack/{id}", h.GetArtistTopTrack)
	h.router.HandleFunc("GET /serverApi/dashboard/albums/{id}", h.GetAlbumsByArtist)
	h.router.HandleFunc("GET /serverApi/dashboard/newReleases", h.GetNewReleases)
	h.router.HandleFunc("GET /serverApi/dashboard/overview", h.GetOverview)
	// Layout configuration
	h.router.HandleFunc("GET /serverApi/config/widgets", h.ListWidgets)
	h.router.HandleFunc("POST /serverApi/config/widgets/seed", h.SeedWidgets)
}

// HealthCheck is a simple endpoint to verify the API is running.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok", "message": "Dashboard is live 🎶"})
}
