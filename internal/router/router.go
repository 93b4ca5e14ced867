package router

import (
	"net/http"
	"time"

	_ "zenith-dashboard/docs"
	"zenith-dashboard/internal/domain/biometrics"
	"zenith-dashboard/internal/domain/dashboard"
	"zenith-dashboard/internal/domain/roles"
	"zenith-dashboard/internal/middleware"
	"zenith-dashboard/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

const requestTimeout = 15 * time.Second

type Options struct {
	Logger logger.Logger // nil => Nop

	// Biometrics nil => servicio sin source (siempre offline).
	Biometrics *biometrics.Service
	// Roles nil => zona horaria local.
	Roles *roles.Service
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	bioSvc := opts.Biometrics
	if bioSvc == nil {
		bioSvc = biometrics.NewService(nil, log)
	}
	rolesSvc := opts.Roles
	if rolesSvc == nil {
		rolesSvc = roles.NewService(nil)
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recover(log))
	r.Use(middleware.AccessLog(log))
	r.Use(chimw.Timeout(requestTimeout))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Rutas por módulo
	biometrics.RegisterRoutes(r, bioSvc)
	roles.RegisterRoutes(r, rolesSvc)
	dashboard.RegisterRoutes(r, rolesSvc, bioSvc)

	return r
}
