package mock

import (
	"net/http"
	"net/http/httptest"
	"sync"
)

// WeatherServer mimics the upstream forecast provider. Scenarios configure
// the payload and status it answers with.
type WeatherServer struct {
	mu       sync.Mutex
	payload  string
	status   int
	requests int
	server   *httptest.Server
}

// NewWeatherServer starts a stub upstream returning an empty JSON object.
func NewWeatherServer() *WeatherServer {
	ws := &WeatherServer{
		payload: "{}",
		status:  http.StatusOK,
	}

	ws.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws.mu.Lock()
		payload, status := ws.payload, ws.status
		ws.requests++
		ws.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(payload))
	}))

	return ws
}

// URL returns the stub's base URL.
func (ws *WeatherServer) URL() string {
	return ws.server.URL
}

// Respond configures the payload and status for subsequent requests.
func (ws *WeatherServer) Respond(payload string, status int) {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.payload = payload
	ws.status = status
}

// Requests returns how many requests the stub has served.
func (ws *WeatherServer) Requests() int {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return ws.requests
}

// Close shuts the stub down.
func (ws *WeatherServer) Close() {
	ws.server.Close()
}
