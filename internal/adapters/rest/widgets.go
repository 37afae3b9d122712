package rest

import "net/http"

type seedResponse struct {
	Seeded int `json:"seeded"`
}

// ListWidgets handles GET /serverApi/config/widgets
func (h *Handler) ListWidgets(w http.ResponseWriter, r *http.Request) {
	widgets, err := h.widgets.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, widgets)
}

// SeedWidgets handles POST /serverApi/config/widgets/seed. Repeating it is safe.
func (h *Handler) SeedWidgets(w http.ResponseWriter, r *http.Request) {
	n, err := h.widgets.SeedDefaults(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, seedResponse{Seeded: n})
}
