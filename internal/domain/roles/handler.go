package roles

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/v1/roles", func(rr chi.Router) {
		rr.Get("/", listRolesHandler())
		rr.Get("/today", todayHandler(svc))
	})
}

type todayResponse struct {
	Date string `json:"date"` // YYYY-MM-DD en la zona configurada
	Role Role   `json:"role"`
}

// listRolesHandler
// @Summary  Roles de la semana
// @Tags     roles
// @Produce  json
// @Success  200  {array}  roles.Role
// @Router   /v1/roles [get]
func listRolesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, All())
	}
}

// todayHandler
// @Summary  Rol del día
// @Tags     roles
// @Produce  json
// @Success  200  {object}  roles.todayResponse
// @Router   /v1/roles/today [get]
func todayHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		now, role := svc.Today()
		writeJSON(w, http.StatusOK, todayResponse{
			Date: now.Format("2006-01-02"),
			Role: role,
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
