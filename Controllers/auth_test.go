package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRegisterAndLogin(t *testing.T) {
	router := setupTestServer(t)

	token := registerAndLogin(t, router)
	assert.NotEmpty(t, token)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	router := setupTestServer(t)
	registerAndLogin(t, router)

	recorder := doJSON(router, http.MethodPost, "/api/register", "", gin.H{
		"name":     "Dr. Other",
		"email":    "house@example.com",
		"password": "different123",
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Email already registered", decodeBody(t, recorder)["error"])
}

func TestRegisterShortPassword(t *testing.T) {
	router := setupTestServer(t)

	recorder := doJSON(router, http.MethodPost, "/api/register", "", gin.H{
		"name":     "Dr. House",
		"email":    "house@example.com",
		"password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	router := setupTestServer(t)
	registerAndLogin(t, router)

	recorder := doJSON(router, http.MethodPost, "/api/login", "", gin.H{
		"email":    "house@example.com",
		"password": "not-the-password",
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCurrentDoctor(t *testing.T) {
	router := setupTestServer(t)
	token := registerAndLogin(t, router)

	recorder := doJSON(router, http.MethodGet, "/api/protected/doctor", token, nil)
	assert.Equal(t, http.StatusOK, recorder.Code)

	data, ok := decodeBody(t, recorder)["data"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "Dr. House", data["name"])
	assert.Equal(t, "house@example.com", data["email"])
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := setupTestServer(t)

	recorder := doJSON(router, http.MethodGet, "/api/protected/doctor", "", nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder = doJSON(router, http.MethodGet, "/api/protected/patients", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
