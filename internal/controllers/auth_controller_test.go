package controllers

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
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"linkly-be/internal/entities"
	"linkly-be/internal/jwt"
	"linkly-be/internal/repository"
	"linkly-be/internal/repository/mocks"
	"linkly-be/internal/service"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)

	jwtSvc := jwt.NewJWTService("test-secret", time.Hour)
	ac := NewAuthController(service.NewAuthService(userRepo, jwtSvc))

	router := gin.New()
	auth := router.Group("/api/auth")
	{
		auth.POST("/register", ac.Register)
		auth.POST("/login", ac.Login)
	}
	return router, userRepo
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterReturnsToken(t *testing.T) {
	router, userRepo := newAuthRouter(t)

	userRepo.EXPECT().
		Create("a@example.com", gomock.Any()).
		Return(&entities.User{ID: "user-1", Email: "a@example.com"}, nil)

	w := postJSON(router, "/api/auth/register", `{"email":"a@example.com","password":"hunter22"}`)

	require.Equal(t, http.StatusCreated, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body["token"])
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	router, userRepo := newAuthRouter(t)

	userRepo.EXPECT().
		Create("a@example.com", gomock.Any()).
		Return(nil, repository.ErrDuplicateEmail)

	w := postJSON(router, "/api/auth/register", `{"email":"a@example.com","password":"hunter22"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "message")
}

func TestRegisterMissingFields(t *testing.T) {
	router, _ := newAuthRouter(t)

	w := postJSON(router, "/api/auth/register", `{"email":"a@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginReturnsToken(t *testing.T) {
	router, userRepo := newAuthRouter(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)

	userRepo.EXPECT().
		FindByEmail("a@example.com").
		Return(&entities.User{ID: "user-1", Email: "a@example.com", PasswordHash: string(hash)}, nil)

	w := postJSON(router, "/api/auth/login", `{"email":"a@example.com","password":"hunter22"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body["token"])
}

func TestLoginBadCredentials(t *testing.T) {
	router, userRepo := newAuthRouter(t)

	userRepo.EXPECT().
		FindByEmail("a@example.com").
		Return(nil, repository.ErrUserNotFound)

	w := postJSON(router, "/api/auth/login", `{"email":"a@example.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
