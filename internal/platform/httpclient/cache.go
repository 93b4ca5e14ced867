package httpclient

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// CacheTransport reutiliza respuestas 200 de GET mientras no superen TTL
// (ventana de revalidación). Requests concurrentes con cache vacía van todas
// upstream; no hay coalescing.
type CacheTransport struct {
	Next http.RoundTripper
	TTL  time.Duration

	now func() time.Time

	mu      sync.Mutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	storedAt time.Time
	status   int
	proto    string
	header   http.Header
	body     []byte
}

func NewCacheTransport(next http.RoundTripper, ttl time.Duration) *CacheTransport {
	if next == nil {
		next = http.DefaultTransport
	}
	return &CacheTransport{
		Next:    next,
		TTL:     ttl,
		now:     time.Now,
		entries: map[string]cacheEntry{},
	}
}

func (t *CacheTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.TTL <= 0 || req.Method != http.MethodGet || bypassCache(req) {
		return t.Next.RoundTrip(req)
	}

	key := cacheKey(req)
	now := t.now()

	t.mu.Lock()
	e, ok := t.entries[key]
	if ok && now.Sub(e.storedAt) > t.TTL {
		delete(t.entries, key)
		ok = false
	}
	t.mu.Unlock()

	if ok {
		return e.response(req, now), nil
	}

	resp, err := t.Next.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return resp, nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	_ = resp.Body.Close()
	if err != nil {
		return nil, err
	}
	resp.Body = io.NopCloser(bytes.NewReader(body))

	t.mu.Lock()
	t.entries[key] = cacheEntry{
		storedAt: now,
		status:   resp.StatusCode,
		proto:    resp.Proto,
		header:   resp.Header.Clone(),
		body:     body,
	}
	t.mu.Unlock()

	return resp, nil
}

func (e cacheEntry) response(req *http.Request, now time.Time) *http.Response {
	h := e.header.Clone()
	h.Set("Age", strconv.Itoa(int(now.Sub(e.storedAt)/time.Second)))
	return &http.Response{
		Status:        strconv.Itoa(e.status) + " " + http.StatusText(e.status),
		StatusCode:    e.status,
		Proto:         e.proto,
		Header:        h,
		Body:          io.NopCloser(bytes.NewReader(e.body)),
		ContentLength: int64(len(e.body)),
		Request:       req,
	}
}

func bypassCache(req *http.Request) bool {
	cc := strings.ToLower(req.Header.Get("Cache-Control"))
	return strings.Contains(cc, "no-cache") || strings.Contains(cc, "no-store")
}

// La key incluye un hash del Authorization para no mezclar credenciales.
func cacheKey(req *http.Request) string {
	sum := sha256.Sum256([]byte(req.Header.Get("Authorization")))
	return req.Method + " " + req.URL.String() + " " + hex.EncodeToString(sum[:8])
}
