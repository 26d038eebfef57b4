package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"volunteerhub/internal/config"
	"volunteerhub/internal/database"
	"volunteerhub/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testPassword = "CorrectHorse#42Battery"

func itoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	t.Setenv("APP_ENV", "test")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		JWTSecret: "test-secret-test-secret-test-secret",
		Port:      "0",
		Env:       "test",
	}
	return NewServerWithDeps(cfg, db, nil)
}

func doJSON(t *testing.T, s *Server, method, path string, body any, token string) *http.Response {
	t.Helper()

	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.App.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

func registerUser(t *testing.T, s *Server, username string) uint {
	t.Helper()
	resp := doJSON(t, s, http.MethodPost, "/api/register", map[string]any{
		"username":   username,
		"email":      username + "@example.com",
		"password":   testPassword,
		"full_name":  "Test Volunteer",
		"skills":     []string{"Programming"},
		"state_code": "TX",
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		UserID uint `json:"userId"`
	}
	decodeBody(t, resp, &body)
	return body.UserID
}

func loginUser(t *testing.T, s *Server, username string) string {
	t.Helper()
	resp := doJSON(t, s, http.MethodPost, "/api/login", map[string]any{
		"username": username,
		"password": testPassword,
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		ID    uint   `json:"id"`
		Token string `json:"token"`
	}
	decodeBody(t, resp, &body)
	require.NotEmpty(t, body.Token)
	return body.Token
}

func adminToken(t *testing.T, s *Server) string {
	t.Helper()
	registerUser(t, s, "reportadmin")
	require.NoError(t, s.DB.Model(&models.User{}).
		Where("username = ?", "reportadmin").
		Update("role", models.UserRoleAdmin).Error)
	return loginUser(t, s, "reportadmin")
}

func createEvent(t *testing.T, s *Server, name, date string, maxVolunteers int) uint {
	t.Helper()
	resp := doJSON(t, s, http.MethodPost, "/events/create", map[string]any{
		"name":            name,
		"description":     "a test event",
		"location":        "Community Hall",
		"required_skills": []string{"Programming"},
		"urgency":         "High",
		"date":            date,
		"max_volunteers":  maxVolunteers,
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		Data models.Event `json:"data"`
	}
	decodeBody(t, resp, &body)
	require.NotZero(t, body.Data.ID)
	return body.Data.ID
}
