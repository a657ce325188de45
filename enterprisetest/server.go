// Package enterprisetest provides an in-process mock of the Redis Enterprise
// REST API for tests of code built on the enterprise client.
package enterprisetest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	enterprise "github.com/redis-developer/redis-enterprise-go"
)

// Default credentials accepted by the mock server.
const (
	Username = "admin@redis.local"
	Password = "password"
)

// RecordedRequest is a request received by the Server.
type RecordedRequest struct {
	Method   string
	Path     string
	Query    string
	Body     []byte
	Username string
	Password string
	Header   http.Header
}

// Server is a mock cluster. Routes are matched on exact method and path;
// unmatched requests get the fallback response, a 404 by default.
type Server struct {
	t   testing.TB
	srv *httptest.Server

	mu       sync.Mutex
	routes   map[string]http.HandlerFunc
	fallback http.HandlerFunc
	requests []RecordedRequest
}

// NewServer starts a mock server that is closed when the test ends.
func NewServer(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		t:      t,
		routes: make(map[string]http.HandlerFunc),
		fallback: func(w http.ResponseWriter, r *http.Request) {
			WriteJSON(w, http.StatusNotFound, ErrorBody(http.StatusNotFound, "no mock for "+r.Method+" "+r.URL.Path))
		},
	}
	s.srv = httptest.NewServer(http.HandlerFunc(s.serveHTTP))
	t.Cleanup(s.srv.Close)
	return s
}

// URL is the base URL of the server.
func (s *Server) URL() string {
	return s.srv.URL
}

// Client returns a client pointed at the server with the default credentials.
func (s *Server) Client(opts ...enterprise.Option) *enterprise.Client {
	s.t.Helper()

	client, err := enterprise.New(enterprise.Config{
		BaseURL:  s.srv.URL,
		Username: Username,
		Password: Password,
	}, opts...)
	require.NoError(s.t, err)
	s.t.Cleanup(func() { _ = client.Close() })
	return client
}

// Requests returns a copy of every request received so far.
func (s *Server) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]RecordedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// Handle registers h for method and path, replacing any earlier handler.
func (s *Server) Handle(method, path string, h http.HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes[method+" "+path] = h
}

// Respond registers a fixed JSON response. A nil body sends no content.
func (s *Server) Respond(method, path string, status int, body any) {
	s.Handle(method, path, func(w http.ResponseWriter, _ *http.Request) {
		WriteJSON(w, status, body)
	})
}

// RespondRaw registers a fixed response with an arbitrary body.
func (s *Server) RespondRaw(method, path string, status int, body string) {
	s.Handle(method, path, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	})
}

// RespondDelayed registers a JSON response sent after delay. The handler
// gives up early when the client goes away.
func (s *Server) RespondDelayed(method, path string, delay time.Duration, status int, body any) {
	s.Handle(method, path, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(delay):
			WriteJSON(w, status, body)
		case <-r.Context().Done():
		}
	})
}

func (s *Server) MockDatabasesList(databases ...map[string]any) {
	s.Respond(http.MethodGet, "/v1/bdbs", http.StatusOK, nonNil(databases))
}

func (s *Server) MockDatabaseGet(uid int, database map[string]any) {
	s.Respond(http.MethodGet, "/v1/bdbs/"+strconv.Itoa(uid), http.StatusOK, database)
}

func (s *Server) MockDatabaseCreate(database map[string]any) {
	s.Respond(http.MethodPost, "/v1/bdbs", http.StatusOK, database)
}

func (s *Server) MockDatabaseDelete(uid int) {
	s.Respond(http.MethodDelete, "/v1/bdbs/"+strconv.Itoa(uid), http.StatusOK, nil)
}

func (s *Server) MockNodesList(nodes ...map[string]any) {
	s.Respond(http.MethodGet, "/v1/nodes", http.StatusOK, nonNil(nodes))
}

func (s *Server) MockNodeGet(uid int, node map[string]any) {
	s.Respond(http.MethodGet, "/v1/nodes/"+strconv.Itoa(uid), http.StatusOK, node)
}

func (s *Server) MockClusterInfo(cluster map[string]any) {
	s.Respond(http.MethodGet, "/v1/cluster", http.StatusOK, cluster)
}

func (s *Server) MockClusterStats(stats map[string]any) {
	s.Respond(http.MethodGet, "/v1/cluster/stats", http.StatusOK, stats)
}

func (s *Server) MockLicense(license map[string]any) {
	s.Respond(http.MethodGet, "/v1/license", http.StatusOK, license)
}

func (s *Server) MockUsersList(users ...map[string]any) {
	s.Respond(http.MethodGet, "/v1/users", http.StatusOK, nonNil(users))
}

func (s *Server) MockUserGet(uid int, user map[string]any) {
	s.Respond(http.MethodGet, "/v1/users/"+strconv.Itoa(uid), http.StatusOK, user)
}

// MockError makes method and path fail with status and the standard error body.
func (s *Server) MockError(method, path string, status int, message string) {
	s.Respond(method, path, status, ErrorBody(status, message))
}

// MockUnauthorized answers every unmatched request with 401.
func (s *Server) MockUnauthorized() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fallback = func(w http.ResponseWriter, _ *http.Request) {
		WriteJSON(w, http.StatusUnauthorized, ErrorBody(http.StatusUnauthorized, "Unauthorized"))
	}
}

func (s *Server) serveHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	user, pass, _ := r.BasicAuth()

	s.mu.Lock()
	s.requests = append(s.requests, RecordedRequest{
		Method:   r.Method,
		Path:     r.URL.Path,
		Query:    r.URL.RawQuery,
		Body:     body,
		Username: user,
		Password: pass,
		Header:   r.Header.Clone(),
	})
	h, ok := s.routes[r.Method+" "+r.URL.Path]
	if !ok {
		h = s.fallback
	}
	s.mu.Unlock()

	h(w, r)
}

// WriteJSON writes body as JSON with the given status. A nil body writes
// only the status.
func WriteJSON(w http.ResponseWriter, status int, body any) {
	if body == nil {
		w.WriteHeader(status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// ErrorBody is the error document the cluster returns.
func ErrorBody(status int, message string) map[string]any {
	return map[string]any{"error": message, "code": status}
}

func nonNil(items []map[string]any) []map[string]any {
	if items == nil {
		return []map[string]any{}
	}
	return items
}
