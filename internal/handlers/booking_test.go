package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studio-api/internal/auth"
	"studio-api/internal/config"
	"studio-api/internal/logger"
	"studio-api/internal/middleware"
	"studio-api/internal/models"
	"studio-api/internal/services"
	"studio-api/internal/storage"
)

type testEnv struct {
	router *gin.Engine
	store  *storage.InMemoryStore
	token  string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewLogger()
	store := storage.NewInMemoryStore()
	tokens := auth.NewManager("test-secret", time.Hour)

	email := services.NewEmailService(config.EmailConfig{Enabled: false}, config.StudioConfig{
		Name:       "Eugine Ray Studios",
		AdminEmail: "admin@example.com",
	}, log)
	bookingService := services.NewBookingService(store, email, nil, nil, log)
	contactService := services.NewContactService(store, email, nil, nil, log)
	catalogService := services.NewCatalogService(store, log)
	authService := services.NewAuthService(store, tokens, log)

	bookingHandler := NewBookingHandler(bookingService, log)
	contactHandler := NewContactHandler(contactService, log)
	catalogHandler := NewCatalogHandler(catalogService, log)
	authHandler := NewAuthHandler(authService, log)

	router := gin.New()
	api := router.Group("/api")
	api.POST("/bookings", bookingHandler.Submit)
	api.POST("/contact", contactHandler.Submit)
	api.GET("/offers", catalogHandler.ListOffers(true))
	api.GET("/portfolio", catalogHandler.ListPortfolio)
	api.GET("/testimonials", catalogHandler.ListTestimonials(true))
	api.POST("/admin/login", authHandler.Login)

	admin := api.Group("/admin")
	admin.Use(middleware.RequireAdmin(tokens, log))
	admin.GET("/bookings", bookingHandler.List)
	admin.GET("/bookings/:id", bookingHandler.Get)
	admin.PATCH("/bookings/:id", bookingHandler.UpdateStatus)
	admin.GET("/messages", contactHandler.List)
	admin.PATCH("/messages/:id", contactHandler.UpdateReadStatus)
	admin.DELETE("/messages/:id", contactHandler.Delete)
	admin.POST("/messages/read-all", contactHandler.MarkAllRead)
	admin.POST("/offers", catalogHandler.CreateOffer)

	token, err := tokens.GenerateToken(1, "admin")
	require.NoError(t, err)

	return &testEnv{router: router, store: store, token: token}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+e.token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func validBookingBody() map[string]interface{} {
	return map[string]interface{}{
		"firstName":    "Amina",
		"lastName":     "Odhiambo",
		"email":        "amina@example.com",
		"phone":        "0712345678",
		"serviceType":  "wedding",
		"location":     "Meru",
		"message":      "Full day coverage",
		"budget":       50000,
		"agreeToTerms": true,
	}
}

func TestSubmitBookingEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/bookings", validBookingBody(), false)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Message   string `json:"message"`
		BookingID int64  `json:"bookingId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Booking request submitted successfully", resp.Message)
	assert.NotZero(t, resp.BookingID)
}

func TestSubmitBookingEndpointValidation(t *testing.T) {
	env := newTestEnv(t)

	body := validBookingBody()
	body["agreeToTerms"] = false
	body["budget"] = 5000

	w := env.do(t, http.MethodPost, "/api/bookings", body, false)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Validation error", resp.Message)
	assert.Contains(t, resp.Errors, "agreeToTerms")
	assert.Contains(t, resp.Errors, "budget")
}

func TestAdminBookingsRequireAuth(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/admin/bookings", nil, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodGet, "/api/admin/bookings", nil, true)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateBookingStatusEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/bookings", validBookingBody(), false)
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodPatch, "/api/admin/bookings/1",
		map[string]string{"status": "confirmed"}, true)
	require.Equal(t, http.StatusOK, w.Code)

	var booking models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &booking))
	assert.Equal(t, models.StatusConfirmed, booking.Status)

	w = env.do(t, http.MethodPatch, "/api/admin/bookings/1",
		map[string]string{"status": "archived"}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPatch, "/api/admin/bookings/999999",
		map[string]string{"status": "confirmed"}, true)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListBookingsEndpointFilters(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/bookings", validBookingBody(), false)
	require.Equal(t, http.StatusCreated, w.Code)

	body := validBookingBody()
	body["firstName"] = "Brian"
	body["serviceType"] = "commercial"
	w = env.do(t, http.MethodPost, "/api/bookings", body, false)
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodGet, "/api/admin/bookings?search=brian", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	var bookings []models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bookings))
	require.Len(t, bookings, 1)
	assert.Equal(t, "Brian", bookings[0].FirstName)

	w = env.do(t, http.MethodGet, "/api/admin/bookings?sort=nope", nil, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodGet, "/api/admin/bookings?status=weird", nil, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
