package biometrics

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"zenith-dashboard/internal/config"
	"zenith-dashboard/internal/platform/httpclient"
	"zenith-dashboard/internal/platform/logger"
	"zenith-dashboard/internal/ports/tables"

	"github.com/go-chi/chi/v5"
	"github.com/google/go-cmp/cmp"
)

// -------------------------
// Test reader
// -------------------------

type fakeReader struct {
	rows  []tables.Row
	err   error
	calls int

	table string
	limit int
}

func (f *fakeReader) ListRows(ctx context.Context, table string, limit int) ([]tables.Row, error) {
	f.calls++
	f.table = table
	f.limit = limit
	return f.rows, f.err
}

func decodeRows(t *testing.T, body string) []tables.Row {
	t.Helper()

	var resp struct {
		Items []tables.Row `json:"items"`
	}
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("decode rows: %v", err)
	}
	return resp.Items
}

func newTestService(src tables.Reader, buf *bytes.Buffer) *Service {
	var log logger.Logger = logger.Nop()
	if buf != nil {
		log = logger.New(logger.Options{Level: logger.Debug, Format: logger.FormatJSON, Output: buf})
	}
	s := NewService(src, log)
	s.now = func() time.Time { return time.Date(2026, 10, 15, 7, 0, 0, 0, time.UTC) }
	return s
}

func TestLatest_EndToEndExample(t *testing.T) {
	src := &fakeReader{rows: decodeRows(t, `{"items":[
		{"values":{"HRV":"45"}},
		{"values":{"HRV":"52","Sleep_Hours":"7.5","Date":"2024-01-02"}}
	]}`)}

	var logs bytes.Buffer
	got, ok := newTestService(src, &logs).Latest(context.Background())
	if !ok {
		t.Fatalf("expected data")
	}

	want := Record{Date: "2024-01-02", HRV: 52, SleepSeconds: 0, SleepHours: 7.5}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Latest mismatch (-want +got):\n%s", diff)
	}
	if src.table != TableName || src.limit != RowLimit {
		t.Fatalf("unexpected request table=%q limit=%d", src.table, src.limit)
	}
	if !strings.Contains(logs.String(), "raw row values") {
		t.Fatalf("expected debug trace of raw values, logs=%s", logs.String())
	}
}

func TestLatest_RawValuesTraceAtDefaultLevel(t *testing.T) {
	src := &fakeReader{rows: decodeRows(t, `{"items":[{"id":"i-9","values":{"HRV":"52"}}]}`)}

	var logs bytes.Buffer
	opts := config.Default().LoggerOptions()
	opts.Output = &logs

	if _, ok := NewService(src, logger.New(opts)).Latest(context.Background()); !ok {
		t.Fatalf("expected data")
	}
	out := logs.String()
	if !strings.Contains(out, "raw row values") || !strings.Contains(out, "i-9") {
		t.Fatalf("expected raw values trace with default options, logs=%q", out)
	}
}

func TestLatest_ThousandsSeparatorsAndNulls(t *testing.T) {
	src := &fakeReader{rows: decodeRows(t, `{"items":[
		{"values":{"HRV":"1,234","Sleep_Seconds":null,"Date":"2024-03-01"}}
	]}`)}

	got, ok := newTestService(src, nil).Latest(context.Background())
	if !ok {
		t.Fatalf("expected data")
	}
	want := Record{Date: "2024-03-01", HRV: 1234}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Latest mismatch (-want +got):\n%s", diff)
	}
}

func TestLatest_UnparseableHRVStillSelectedButZero(t *testing.T) {
	src := &fakeReader{rows: decodeRows(t, `{"items":[{"values":{"HRV":"not-a-number"}}]}`)}

	got, ok := newTestService(src, nil).Latest(context.Background())
	if !ok {
		t.Fatalf("expected data: non-empty string is a usable reading")
	}
	if got.HRV != 0 || got.Date != "2026-10-15T07:00:00.000Z" {
		t.Fatalf("unexpected record %+v", got)
	}
}

func TestLatest_NoData(t *testing.T) {
	cases := []struct {
		name string
		src  *fakeReader
		log  string
	}{
		{
			name: "not configured",
			src:  &fakeReader{err: fmt.Errorf("%w: missing api_token", tables.ErrNotConfigured)},
			log:  "missing coda configuration",
		},
		{
			name: "status 500",
			src: &fakeReader{err: fmt.Errorf("%w: %w", tables.ErrUpstream, &httpclient.HTTPError{
				StatusCode: http.StatusInternalServerError,
				Status:     "500 Internal Server Error",
			})},
			log: `"status":500`,
		},
		{
			name: "unauthorized",
			src:  &fakeReader{err: fmt.Errorf("%w: %w", tables.ErrUnauthorized, &httpclient.HTTPError{StatusCode: 401})},
			log:  "coda rejected credentials",
		},
		{
			name: "network error",
			src:  &fakeReader{err: fmt.Errorf("%w: %w", tables.ErrUpstream, errors.New("connection refused"))},
			log:  "connection refused",
		},
		{
			name: "no items",
			src:  &fakeReader{rows: []tables.Row{}},
			log:  "no rows",
		},
		{
			name: "only empty HRV",
			src:  &fakeReader{rows: decodeRows(t, `{"items":[{"values":{"HRV":""}}]}`)},
			log:  "no valid biometrics rows",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var logs bytes.Buffer
			rec, ok := newTestService(tc.src, &logs).Latest(context.Background())
			if ok {
				t.Fatalf("expected no data, got %+v", rec)
			}
			if rec != (Record{}) {
				t.Fatalf("expected zero record, got %+v", rec)
			}
			if !strings.Contains(logs.String(), tc.log) {
				t.Fatalf("expected log containing %q, got %s", tc.log, logs.String())
			}
		})
	}
}

func TestLatest_NilSource(t *testing.T) {
	if _, ok := newTestService(nil, nil).Latest(context.Background()); ok {
		t.Fatalf("expected no data with nil source")
	}
}

func TestHandler_OnlineAndOffline(t *testing.T) {
	cases := []struct {
		name string
		src  *fakeReader
		want string
	}{
		{
			name: "online",
			src:  &fakeReader{rows: decodeRows(t, `{"items":[{"values":{"HRV":52,"Date":"2024-01-02"}}]}`)},
			want: `{"status":"online","data":{"date":"2024-01-02","hrv":52,"sleepSeconds":0,"sleepHours":0}}`,
		},
		{
			name: "offline",
			src:  &fakeReader{err: tables.ErrUpstream},
			want: `{"status":"offline"}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := chi.NewRouter()
			RegisterRoutes(r, newTestService(tc.src, nil))

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/biometrics", nil))

			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			if got := strings.TrimSpace(rec.Body.String()); got != tc.want {
				t.Fatalf("body=%s want %s", got, tc.want)
			}
		})
	}
}
