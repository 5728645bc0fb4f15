package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/divinosdoces/contratos-api/internal/config"
)

func decodeToken(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["token"])
	return resp["token"]
}

func TestSignupIssuesTokenSignedWithConfiguredSecret(t *testing.T) {
	db := &fakeDB{}
	h := NewAuthHandler(db, &config.Config{JWTSecret: "panel-secret"})

	body := `{"email":"damaris@divinos.com","password":"doces123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/signup", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Signup(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, db.user)

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(decodeToken(t, w), claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("panel-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, db.user.ID, claims["user_id"])
}

func TestLoginRoundTrip(t *testing.T) {
	db := &fakeDB{}
	cfg := &config.Config{JWTSecret: "panel-secret"}
	h := NewAuthHandler(db, cfg)

	body := `{"email":"damaris@divinos.com","password":"doces123"}`
	w := httptest.NewRecorder()
	h.Signup(w, httptest.NewRequest(http.MethodPost, "/api/signup", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	h.Login(w, httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, w.Code)
	decodeToken(t, w)
}

func TestLoginUnknownUser(t *testing.T) {
	h := NewAuthHandler(&fakeDB{}, &config.Config{JWTSecret: "panel-secret"})

	body := `{"email":"ninguem@divinos.com","password":"x"}`
	w := httptest.NewRecorder()
	h.Login(w, httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body)))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	db := &fakeDB{}
	h := NewAuthHandler(db, &config.Config{JWTSecret: "panel-secret"})

	w := httptest.NewRecorder()
	h.Signup(w, httptest.NewRequest(http.MethodPost, "/api/signup",
		strings.NewReader(`{"email":"damaris@divinos.com","password":"doces123"}`)))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	h.Login(w, httptest.NewRequest(http.MethodPost, "/api/login",
		strings.NewReader(`{"email":"damaris@divinos.com","password":"errada"}`)))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
