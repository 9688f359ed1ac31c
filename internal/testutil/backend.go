package testutil

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

// Route names, one per backend endpoint
const (
	RouteWrapped     = "getWrapped"
	RouteAllGames    = "getAllGames"
	RouteAnalyze     = "analyze"
	RouteAccountData = "accountdata"
	RouteSummaryYear = "summary_year"
	RouteVersions    = "versions"
)

// RecordedRequest is a request the fake backend received
type RecordedRequest struct {
	Route  string
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// Backend fakes the stats host, the analysis host and DataDragon on one httptest server
type Backend struct {
	Server *httptest.Server

	mu       sync.Mutex
	handlers map[string]http.HandlerFunc
	requests []RecordedRequest
}

// NewBackend starts a fake backend that is closed when the test ends
func NewBackend(t testing.TB) *Backend {
	t.Helper()

	backend := &Backend{
		handlers: make(map[string]http.HandlerFunc),
	}

	router := mux.NewRouter()

	// Stats host
	router.HandleFunc("/getWrapped", backend.route(RouteWrapped)).Methods("POST")
	router.HandleFunc("/getAllGames", backend.route(RouteAllGames)).Methods("POST")

	// Analysis host
	router.HandleFunc("/analyze", backend.route(RouteAnalyze)).Methods("POST")
	router.HandleFunc("/accountdata", backend.route(RouteAccountData)).Methods("GET")
	router.HandleFunc("/summary_year", backend.route(RouteSummaryYear)).Methods("GET")

	// DataDragon
	router.HandleFunc("/api/versions.json", backend.route(RouteVersions)).Methods("GET")

	backend.Server = httptest.NewServer(router)
	t.Cleanup(backend.Server.Close)

	return backend
}

// URL is the base URL for every faked host
func (backend *Backend) URL() string {
	return backend.Server.URL
}

// Handle overrides the handler for a route
func (backend *Backend) Handle(route string, handler http.HandlerFunc) {
	backend.mu.Lock()
	defer backend.mu.Unlock()
	backend.handlers[route] = handler
}

// Respond makes a route answer with a fixed status and body
func (backend *Backend) Respond(route string, status int, body string) {
	backend.Handle(route, func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(status)
		writer.Write([]byte(body))
	})
}

// Requests returns the requests received on a route, in arrival order
func (backend *Backend) Requests(route string) []RecordedRequest {
	backend.mu.Lock()
	defer backend.mu.Unlock()

	var matched []RecordedRequest
	for _, recorded := range backend.requests {
		if recorded.Route == route {
			matched = append(matched, recorded)
		}
	}
	return matched
}

// LastRequest returns the most recent request on a route and fails the test if there was none
func (backend *Backend) LastRequest(t testing.TB, route string) RecordedRequest {
	t.Helper()

	requests := backend.Requests(route)
	require.NotEmpty(t, requests, "no request received on route %s", route)
	return requests[len(requests)-1]
}

func (backend *Backend) route(name string) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		body, _ := io.ReadAll(request.Body)
		request.Body = io.NopCloser(bytes.NewReader(body))

		backend.mu.Lock()
		backend.requests = append(backend.requests, RecordedRequest{
			Route:  name,
			Method: request.Method,
			Path:   request.URL.Path,
			Query:  request.URL.Query(),
			Header: request.Header.Clone(),
			Body:   body,
		})
		handler := backend.handlers[name]
		backend.mu.Unlock()

		if handler == nil {
			http.Error(writer, "no handler for "+name, http.StatusNotImplemented)
			return
		}
		handler(writer, request)
	}
}
