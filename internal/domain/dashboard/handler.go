package dashboard

import (
	"encoding/json"
	"net/http"

	"zenith-dashboard/internal/domain/biometrics"
	"zenith-dashboard/internal/domain/roles"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, rolesSvc *roles.Service, bioSvc *biometrics.Service) {
	r.Get("/v1/dashboard", summaryHandler(rolesSvc, bioSvc))
	r.Get("/manifest.webmanifest", manifestHandler())
}

type summaryResponse struct {
	Date       string              `json:"date"`
	Weekday    string              `json:"weekday"`
	Role       roles.Role          `json:"role"`
	Biometrics biometrics.Snapshot `json:"biometrics"`
}

// summaryHandler
// @Summary  Resumen de Mission Control
// @Description  Rol del día y última lectura biométrica (status=offline si no hay datos).
// @Tags     dashboard
// @Produce  json
// @Success  200  {object}  dashboard.summaryResponse
// @Router   /v1/dashboard [get]
func summaryHandler(rolesSvc *roles.Service, bioSvc *biometrics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now, role := rolesSvc.Today()
		writeJSON(w, "application/json", summaryResponse{
			Date:       now.Format("2006-01-02"),
			Weekday:    now.Weekday().String(),
			Role:       role,
			Biometrics: bioSvc.Snapshot(r.Context()),
		})
	}
}

func manifestHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, "application/manifest+json", AppManifest())
	}
}

func writeJSON(w http.ResponseWriter, contentType string, v any) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(v)
}
