package rest

import (
	"net/http"
	"strings"

	"github.com/ewilliams-labs/dashboard/internal/core/services"
)

const errCodeMissingToken = "MISSING_TOKEN"

// dashboardFor builds the dashboard service for the caller's token. It writes
// a 401 and returns false when the request carries no token.
func (h *Handler) dashboardFor(w http.ResponseWriter, r *http.Request) (*services.Dashboard, string, bool) {
	token := requestToken(r)
	if token == "" {
		writeErrorWithCode(w, http.StatusUnauthorized, "Authorization header is required", errCodeMissingToken)
		return nil, "", false
	}
	return services.NewDashboard(h.catalogFor(token)), token, true
}

// GetUserData handles GET /serverApi/me/getData
func (h *Handler) GetUserData(w http.ResponseWriter, r *http.Request) {
	svc, token, ok := h.dashboardFor(w, r)
	if !ok {
		return
	}

	user, err := svc.Profile(r.Context(), token)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// GetTopArtist handles GET /serverApi/dashboard/topArtist
func (h *Handler) GetTopArtist(w http.ResponseWriter, r *http.Request) {
	svc, _, ok := h.dashboardFor(w, r)
	if !ok {
		return
	}

	artist, err := svc.TopArtist(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, artist)
}

// GetArtistTopTrack handles GET /serverApi/dashboard/artistTopTrack/{id}
func (h *Handler) GetArtistTopTrack(w http.ResponseWriter, r *http.Request) {
	svc, _, ok := h.dashboardFor(w, r)
	if !ok {
		return
	}

	track, err := svc.ArtistTopTrack(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, track)
}

// GetAlbumsByArtist handles GET /serverApi/dashboard/albums/{id}
func (h *Handler) GetAlbumsByArtist(w http.ResponseWriter, r *http.Request) {
	svc, _, ok := h.dashboardFor(w, r)
	if !ok {
		return
	}

	albums, err := svc.Albums(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, albums)
}

// GetNewReleases handles GET /serverApi/dashboard/newReleases.
// New releases need no user, so without a token the app credentials are used
// when configured.
func (h *Handler) GetNewReleases(w http.ResponseWriter, r *http.Request) {
	var svc *services.Dashboard
	if requestToken(r) == "" && h.appCatalog != nil {
		svc = services.NewDashboard(h.appCatalog)
	} else {
		var ok bool
		if svc, _, ok = h.dashboardFor(w, r); !ok {
			return
		}
	}

	albums, err := svc.NewReleases(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, albums)
}

// GetOverview handles GET /serverApi/dashboard/overview
func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	svc, token, ok := h.dashboardFor(w, r)
	if !ok {
		return
	}

	dashboard, err := svc.Overview(r.Context(), token)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dashboard)
}

// requestToken returns the Authorization header value, which is either a bare
// token or "Bearer <token>".
func requestToken(r *http.Request) string {
	token := strings.TrimSpace(r.Header.Get("Authorization"))
	if strings.EqualFold(token, "bearer") {
		return ""
	}
	return token
}
