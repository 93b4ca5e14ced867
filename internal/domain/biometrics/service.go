package biometrics

import (
	"context"
	"errors"
	"time"

	"zenith-dashboard/internal/middleware"
	"zenith-dashboard/internal/platform/httpclient"
	"zenith-dashboard/internal/platform/logger"
	"zenith-dashboard/internal/ports/tables"
)

const (
	TableName = "Biometrics"
	RowLimit  = 5
)

type Service struct {
	source tables.Reader
	log    logger.Logger
	now    func() time.Time
}

// NewService acepta source nil: en ese caso todo fetch es "sin datos".
func NewService(source tables.Reader, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		source: source,
		log:    log.With(map[string]any{"component": "biometrics"}),
		now:    time.Now,
	}
}

// Latest trae la lectura más reciente con HRV. El bool en false significa
// "sin datos"; el motivo solo queda en los logs.
func (s *Service) Latest(ctx context.Context) (Record, bool) {
	log := s.log
	if id := middleware.GetRequestID(ctx); id != "" {
		log = log.With(map[string]any{"request_id": id})
	}

	if s.source == nil {
		log.Error("biometrics source missing", nil)
		return Record{}, false
	}

	rows, err := s.source.ListRows(ctx, TableName, RowLimit)
	if err != nil {
		logFetchError(log, err)
		return Record{}, false
	}
	if len(rows) == 0 {
		log.Info("biometrics table returned no rows", nil)
		return Record{}, false
	}

	row, err := SelectLatest(rows)
	if err != nil {
		log.Info("no valid biometrics rows (all empty)", map[string]any{"rows": len(rows)})
		return Record{}, false
	}

	// Traza incondicional: sale con el nivel por defecto.
	log.Info("raw row values", map[string]any{
		"row_id": row.ID,
		"values": row.Values,
	})

	return Normalize(row.Values, s.now()), true
}

// Snapshot envuelve Latest con el estado online/offline para la UI.
func (s *Service) Snapshot(ctx context.Context) Snapshot {
	rec, ok := s.Latest(ctx)
	if !ok {
		return Snapshot{Status: StatusOffline}
	}
	return Snapshot{Status: StatusOnline, Data: &rec}
}

func logFetchError(log logger.Logger, err error) {
	fields := map[string]any{"error": err}

	var he *httpclient.HTTPError
	if errors.As(err, &he) {
		fields["status"] = he.StatusCode
		fields["status_text"] = he.Status
	}

	switch {
	case errors.Is(err, tables.ErrNotConfigured):
		log.Error("missing coda configuration", fields)
	case errors.Is(err, tables.ErrUnauthorized):
		log.Error("coda rejected credentials", fields)
	default:
		log.Error("failed to fetch coda data", fields)
	}
}
