package biometrics

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/v1/biometrics", getLatestHandler(svc))
}

// getLatestHandler
// @Summary      Última lectura biométrica
// @Description  Devuelve la fila más reciente con HRV de la tabla Biometrics, o status=offline.
// @Tags         biometrics
// @Produce      json
// @Success      200  {object}  biometrics.Snapshot
// @Router       /v1/biometrics [get]
func getLatestHandler(svc *Service) http.HandlerFunc {
	// "Sin datos" es un resultado normal: siempre 200, la UI muestra offline.
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Snapshot(r.Context()))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
