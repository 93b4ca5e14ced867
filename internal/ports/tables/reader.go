package tables

import (
	"context"
	"errors"
)

var (
	ErrNotConfigured = errors.New("table source not configured")
	ErrUnauthorized  = errors.New("table source unauthorized")
	ErrUpstream      = errors.New("table source upstream error")
)

// Row es una fila de una tabla remota, con valores por nombre de columna.
type Row struct {
	ID     string           `json:"id"`
	Index  int              `json:"index"`
	Values map[string]Value `json:"values"`
}

// Reader lista las filas de una tabla en el orden en que el upstream las
// devuelve (las agregadas al final son las más recientes).
type Reader interface {
	ListRows(ctx context.Context, table string, limit int) ([]Row, error)
}
