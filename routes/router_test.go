package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"pet-care-server/config"
	"pet-care-server/repository/memory"
	"pet-care-server/services"
)

// testEnv wires the handler against in-memory repositories so tests can
// exercise the full HTTP surface without a database.
type testEnv struct {
	router    *gin.Engine
	customers *memory.CustomerRepo
	providers *memory.ProviderRepo
	contacts  *memory.ContactRepo
	bookings  *memory.BookingRepo
	store     *memory.SessionStore
	sessions  *services.SessionService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)
	config.Load()

	env := &testEnv{
		customers: memory.NewCustomerRepo(),
		providers: memory.NewProviderRepo(),
		contacts:  memory.NewContactRepo(),
		bookings:  memory.NewBookingRepo(),
		store:     memory.NewSessionStore(),
	}
	env.sessions = services.NewSessionService(env.store, time.Hour)

	handler := NewHandler(env.customers, env.providers, env.contacts, env.bookings, env.sessions)
	env.router = gin.New()
	handler.Register(env.router)

	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), target))
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	t.Fatalf("no %q cookie in response", name)
	return nil
}
