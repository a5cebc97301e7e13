package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginWithSharedPassword(t *testing.T) {
	r := setupRouter(t)

	w := performRequest(r, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "someone@example.com",
		"password": "test-password",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["token"])
	assert.Equal(t, "someone@example.com", resp["email"])
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	r := setupRouter(t)

	w := performRequest(r, http.MethodPost, "/auth/login", "", gin.H{
		"password": "not-the-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginRequiresPassword(t *testing.T) {
	r := setupRouter(t)

	w := performRequest(r, http.MethodPost, "/auth/login", "", gin.H{
		"email": "someone@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAPIRequiresToken(t *testing.T) {
	r := setupRouter(t)

	w := performRequest(r, http.MethodGet, "/api/patients", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = performRequest(r, http.MethodGet, "/api/patients", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMeEchoesReferenceEmail(t *testing.T) {
	r := setupRouter(t)
	token := loginToken(t, r)

	w := performRequest(r, http.MethodGet, "/auth/me", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "tester@example.com", resp["email"])
}
