package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studio-api/internal/models"
)

func validContactBody() map[string]interface{} {
	return map[string]interface{}{
		"name":    "Wanjiru Kamau",
		"email":   "wanjiru@example.com",
		"subject": "Wedding inquiry",
		"message": "I would like a quote for a full day wedding shoot in December.",
	}
}

func TestSubmitContactEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/contact", validContactBody(), false)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Message   string `json:"message"`
		MessageID int64  `json:"messageId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Message sent successfully", resp.Message)
	assert.NotZero(t, resp.MessageID)
}

func TestSubmitContactEndpointValidation(t *testing.T) {
	env := newTestEnv(t)

	body := validContactBody()
	body["message"] = "Hi"

	w := env.do(t, http.MethodPost, "/api/contact", body, false)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Message must be at least 10 characters", resp.Errors["message"])
}

func TestMessageReadStatusEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/contact", validContactBody(), false)
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodPatch, "/api/admin/messages/1",
		map[string]bool{"isRead": true}, true)
	require.Equal(t, http.StatusOK, w.Code)

	var msg models.ContactMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &msg))
	assert.True(t, msg.IsRead)

	// A missing isRead field is a 400, not a silent false.
	w = env.do(t, http.MethodPatch, "/api/admin/messages/1",
		map[string]string{}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPatch, "/api/admin/messages/999999",
		map[string]bool{"isRead": true}, true)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteMessageEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/contact", validContactBody(), false)
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodDelete, "/api/admin/messages/1", nil, true)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodDelete, "/api/admin/messages/1", nil, true)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMarkAllReadEndpoint(t *testing.T) {
	env := newTestEnv(t)

	for i := 0; i < 2; i++ {
		w := env.do(t, http.MethodPost, "/api/contact", validContactBody(), false)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := env.do(t, http.MethodPost, "/api/admin/messages/read-all", nil, true)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Updated int64 `json:"updated"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(2), resp.Updated)

	w = env.do(t, http.MethodGet, "/api/admin/messages", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	var messages []models.ContactMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &messages))
	for _, m := range messages {
		assert.True(t, m.IsRead)
	}
}

func TestLoginEndpoint(t *testing.T) {
	env := newTestEnv(t)

	// No users seeded, any credentials are rejected.
	w := env.do(t, http.MethodPost, "/api/admin/login",
		map[string]string{"username": "admin", "password": "pass"}, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodPost, "/api/admin/login",
		map[string]string{"username": "admin"}, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
