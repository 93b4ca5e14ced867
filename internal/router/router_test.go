package router_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"zenith-dashboard/internal/adapters/coda"
	"zenith-dashboard/internal/domain/biometrics"
	"zenith-dashboard/internal/domain/roles"
	"zenith-dashboard/internal/router"

	"github.com/google/go-cmp/cmp"
)

// fakeCoda simula el endpoint de filas y cuenta las llamadas.
type fakeCoda struct {
	*httptest.Server
	hits int32
}

func newFakeCoda(t *testing.T, status int, body string) *fakeCoda {
	t.Helper()

	f := &fakeCoda{}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&f.hits, 1)
		if r.URL.Path != "/docs/doc-1/tables/Biometrics/rows" {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("Authorization") != "Bearer tok-1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(f.Close)
	return f
}

func (f *fakeCoda) Hits() int32 { return atomic.LoadInt32(&f.hits) }

func newServer(t *testing.T, creds coda.Credentials, codaURL string) *httptest.Server {
	t.Helper()

	client, err := coda.NewClient(coda.Config{Credentials: creds, BaseURL: codaURL, Timeout: time.Second})
	if err != nil {
		t.Fatalf("coda client: %v", err)
	}

	ts := httptest.NewServer(router.NewRouter(router.Options{
		Biometrics: biometrics.NewService(client, nil),
		Roles:      roles.NewService(time.UTC),
	}))
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()

	res, err := http.Get(url)
	if err != nil {
		t.Fatalf("get %s: %v", url, err)
	}
	defer res.Body.Close()

	body, _ := io.ReadAll(res.Body)
	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			t.Fatalf("decode %s: %v body=%s", url, err, string(body))
		}
	}
	return res.StatusCode
}

func TestHTTP_Biometrics_EndToEnd(t *testing.T) {
	upstream := newFakeCoda(t, http.StatusOK, `{"items":[
		{"id":"i-1","values":{"HRV":"45"}},
		{"id":"i-2","values":{"HRV":"52","Sleep_Hours":"7.5","Date":"2024-01-02"}}
	]}`)
	ts := newServer(t, coda.Credentials{APIToken: "tok-1", DocID: "doc-1"}, upstream.URL)

	var snap biometrics.Snapshot
	if st := getJSON(t, ts.URL+"/v1/biometrics", &snap); st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}

	want := biometrics.Snapshot{
		Status: biometrics.StatusOnline,
		Data:   &biometrics.Record{Date: "2024-01-02", HRV: 52, SleepHours: 7.5},
	}
	if diff := cmp.Diff(want, snap); diff != "" {
		t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
	}

	// Dentro de la ventana de revalidación no se vuelve a pedir upstream.
	getJSON(t, ts.URL+"/v1/biometrics", &snap)
	if n := upstream.Hits(); n != 1 {
		t.Fatalf("expected 1 upstream hit, got %d", n)
	}
}

func TestHTTP_Biometrics_OfflineCases(t *testing.T) {
	cases := []struct {
		name      string
		status    int
		body      string
		creds     coda.Credentials
		wantCalls int32
	}{
		{"missing credentials", http.StatusOK, `{"items":[{"values":{"HRV":"45"}}]}`, coda.Credentials{}, 0},
		{"upstream 500", http.StatusInternalServerError, `{}`, coda.Credentials{APIToken: "tok-1", DocID: "doc-1"}, 1},
		{"empty items", http.StatusOK, `{"items":[]}`, coda.Credentials{APIToken: "tok-1", DocID: "doc-1"}, 1},
		{"only empty HRV", http.StatusOK, `{"items":[{"values":{"HRV":""}}]}`, coda.Credentials{APIToken: "tok-1", DocID: "doc-1"}, 1},
		{"malformed body", http.StatusOK, `<html>`, coda.Credentials{APIToken: "tok-1", DocID: "doc-1"}, 1},
		{"bad token", http.StatusOK, `{"items":[]}`, coda.Credentials{APIToken: "wrong", DocID: "doc-1"}, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			upstream := newFakeCoda(t, tc.status, tc.body)
			ts := newServer(t, tc.creds, upstream.URL)

			var raw map[string]any
			if st := getJSON(t, ts.URL+"/v1/biometrics", &raw); st != http.StatusOK {
				t.Fatalf("expected 200, got %d", st)
			}
			if raw["status"] != "offline" {
				t.Fatalf("expected offline, got %v", raw)
			}
			if _, ok := raw["data"]; ok {
				t.Fatalf("offline response must not carry data: %v", raw)
			}
			if n := upstream.Hits(); n != tc.wantCalls {
				t.Fatalf("expected %d upstream calls, got %d", tc.wantCalls, n)
			}
		})
	}
}

func TestHTTP_Dashboard(t *testing.T) {
	upstream := newFakeCoda(t, http.StatusOK, `{"items":[{"values":{"HRV":61,"Sleep_Seconds":"27,000"}}]}`)
	ts := newServer(t, coda.Credentials{APIToken: "tok-1", DocID: "doc-1"}, upstream.URL)

	var resp struct {
		Date       string              `json:"date"`
		Weekday    string              `json:"weekday"`
		Role       roles.Role          `json:"role"`
		Biometrics biometrics.Snapshot `json:"biometrics"`
	}
	if st := getJSON(t, ts.URL+"/v1/dashboard", &resp); st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	if resp.Role.Weekday != resp.Weekday || resp.Role.ID == "" {
		t.Fatalf("unexpected role %+v for %s", resp.Role, resp.Weekday)
	}
	if resp.Biometrics.Status != biometrics.StatusOnline || resp.Biometrics.Data == nil {
		t.Fatalf("expected online biometrics, got %+v", resp.Biometrics)
	}
	if resp.Biometrics.Data.HRV != 61 || resp.Biometrics.Data.SleepSeconds != 27000 {
		t.Fatalf("unexpected record %+v", resp.Biometrics.Data)
	}
}

func TestHTTP_HealthManifestAndSwagger(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	res, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusOK || res.Header.Get("X-Request-ID") == "" {
		t.Fatalf("unexpected health response: %d headers=%v", res.StatusCode, res.Header)
	}

	var manifest map[string]any
	if st := getJSON(t, ts.URL+"/manifest.webmanifest", &manifest); st != http.StatusOK || manifest["short_name"] != "Zenith" {
		t.Fatalf("unexpected manifest %d %v", st, manifest)
	}

	res, err = http.Get(ts.URL + "/swagger/doc.json")
	if err != nil {
		t.Fatalf("swagger: %v", err)
	}
	body, _ := io.ReadAll(res.Body)
	res.Body.Close()
	if res.StatusCode != http.StatusOK || !strings.Contains(string(body), "/v1/biometrics") {
		t.Fatalf("unexpected swagger doc: %d %s", res.StatusCode, string(body))
	}
}

func TestHTTP_DefaultsAreOffline(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	var snap biometrics.Snapshot
	getJSON(t, ts.URL+"/v1/biometrics", &snap)
	if snap.Status != biometrics.StatusOffline {
		t.Fatalf("expected offline without a source, got %+v", snap)
	}
}
