// Package testutil provides testing utilities for the Confluence exporter.
package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
)

// MockResponse defines the behavior for a mock Confluence endpoint response.
type MockResponse struct {
	StatusCode int
	Body       string
	Headers    map[string]string
}

// MockConfluence is a configurable mock Confluence server for testing.
// Its base URL ends in /wiki, matching the API root the URL parser derives,
// so handler paths are registered as "/wiki/rest/api/...".
type MockConfluence struct {
	server   *httptest.Server
	mu       sync.RWMutex
	handlers map[string]func(w http.ResponseWriter, r *http.Request)

	// Tracking
	RequestCount      int
	PathCounts        map[string]int
	LastRequestHeader http.Header
}

// NewMockConfluence creates a new mock Confluence server.
func NewMockConfluence() *MockConfluence {
	mock := &MockConfluence{
		handlers:   make(map[string]func(w http.ResponseWriter, r *http.Request)),
		PathCounts: make(map[string]int),
	}

	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mock.mu.Lock()
		mock.RequestCount++
		mock.PathCounts[r.URL.Path]++
		mock.LastRequestHeader = r.Header.Clone()
		mock.mu.Unlock()

		mock.mu.RLock()
		handler, exists := mock.handlers[r.URL.Path]
		mock.mu.RUnlock()

		if exists {
			handler(w, r)
			return
		}

		mock.defaultHandler(w, r)
	}))

	return mock
}

// BaseURL returns the mock site's API base URL ("{server}/wiki").
func (m *MockConfluence) BaseURL() string {
	return m.server.URL + "/wiki"
}

// URL returns the raw mock server URL without the /wiki suffix.
func (m *MockConfluence) URL() string {
	return m.server.URL
}

// PageURL returns a modern-shape page URL for pageID on the mock site,
// suitable as input-list content.
func (m *MockConfluence) PageURL(spaceKey, pageID string) string {
	return fmt.Sprintf("%s/wiki/spaces/%s/pages/%s/Mock+Page", m.server.URL, spaceKey, pageID)
}

// Close shuts down the mock server.
func (m *MockConfluence) Close() {
	m.server.Close()
}

// Reset clears all tracking counters.
func (m *MockConfluence) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RequestCount = 0
	m.PathCounts = make(map[string]int)
	m.LastRequestHeader = nil
}

// SetHandler sets a custom handler for a specific path.
func (m *MockConfluence) SetHandler(path string, handler func(w http.ResponseWriter, r *http.Request)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[path] = handler
}

// SetResponse configures a simple response for a path.
func (m *MockConfluence) SetResponse(path string, resp MockResponse) {
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		for key, value := range resp.Headers {
			w.Header().Set(key, value)
		}
		if resp.Headers["Content-Type"] == "" {
			w.Header().Set("Content-Type", "application/json")
		}
		w.WriteHeader(resp.StatusCode)
		if resp.Body != "" {
			w.Write([]byte(resp.Body))
		}
	})
}

// SetPageResponse configures the content-by-id endpoint for pageID.
func (m *MockConfluence) SetPageResponse(pageID string, resp MockResponse) {
	m.SetResponse("/wiki/rest/api/content/"+pageID, resp)
}

// SetUserResponse configures the user-by-accountId endpoint.
// The mock keys user responses on the path alone, so the one handler serves
// every accountId; use SetHandler for per-account behavior.
func (m *MockConfluence) SetUserResponse(resp MockResponse) {
	m.SetResponse("/wiki/rest/api/user", resp)
}

// GetRequestCount returns the number of requests made to the server.
func (m *MockConfluence) GetRequestCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.RequestCount
}

// GetPathCount returns the number of requests made to a specific path.
func (m *MockConfluence) GetPathCount(path string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.PathCounts[path]
}

// defaultHandler answers unregistered paths with a Confluence-style 404.
func (m *MockConfluence) defaultHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"statusCode":404,"message":"No content found"}`))
}

// NewPageResponse creates a 200 OK content payload with the given fields.
// Empty fields are omitted so fallback behavior can be exercised.
func NewPageResponse(title, spaceKey, spaceName, bodyHTML, accountID, friendlyWhen, webui string) MockResponse {
	body := fmt.Sprintf(`{
		"title": %q,
		"space": {"key": %q, "name": %q},
		"body": {"storage": {"value": %q}},
		"version": {"friendlyWhen": %q},
		"history": {"createdBy": {"accountId": %q}},
		"_links": {"webui": %q}
	}`, title, spaceKey, spaceName, bodyHTML, friendlyWhen, accountID, webui)

	return MockResponse{
		StatusCode: http.StatusOK,
		Body:       body,
		Headers:    map[string]string{"Content-Type": "application/json"},
	}
}

// NewUserResponse creates a 200 OK user payload.
func NewUserResponse(accountID, displayName string) MockResponse {
	return MockResponse{
		StatusCode: http.StatusOK,
		Body:       fmt.Sprintf(`{"accountId": %q, "displayName": %q}`, accountID, displayName),
		Headers:    map[string]string{"Content-Type": "application/json"},
	}
}

// NewServerErrorResponse creates a 500 Internal Server Error response.
func NewServerErrorResponse() MockResponse {
	return MockResponse{
		StatusCode: http.StatusInternalServerError,
		Body:       `{"message": "Internal server error"}`,
		Headers:    map[string]string{"Content-Type": "application/json"},
	}
}

// NewNotFoundResponse creates a 404 Not Found response.
func NewNotFoundResponse() MockResponse {
	return MockResponse{
		StatusCode: http.StatusNotFound,
		Body:       `{"statusCode":404,"message":"No content found"}`,
		Headers:    map[string]string{"Content-Type": "application/json"},
	}
}
