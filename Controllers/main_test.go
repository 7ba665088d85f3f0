package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"MediTrack/Models"
	"MediTrack/Routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupTestServer(t *testing.T) *gin.Engine {
	t.Helper()

	t.Setenv("API_SECRET", "test-secret")
	t.Setenv("TOKEN_HOUR_LIFESPAN", "1")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&Models.Doctor{}, &Models.Patient{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	Models.DB = db

	gin.SetMode(gin.TestMode)
	router := gin.New()
	Routes.ConfigRoutes(router)
	return router
}

func doJSON(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response %q: %v", recorder.Body.String(), err)
	}
	return body
}

func registerAndLogin(t *testing.T, router *gin.Engine) string {
	t.Helper()

	recorder := doJSON(router, http.MethodPost, "/api/register", "", gin.H{
		"name":     "Dr. House",
		"email":    "house@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusCreated, recorder.Code)

	recorder = doJSON(router, http.MethodPost, "/api/login", "", gin.H{
		"email":    "house@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, recorder.Code)

	token, ok := decodeBody(t, recorder)["jwt"].(string)
	if !ok || token == "" {
		t.Fatal("login did not return a jwt")
	}
	return token
}
