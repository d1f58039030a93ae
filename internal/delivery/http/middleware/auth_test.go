package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gdugdh24/godate-backend/internal/domain"
	"github.com/gdugdh24/godate-backend/internal/repository"
	"github.com/gdugdh24/godate-backend/internal/usecase/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// singleUserRepo serves one fixed user; the embedded interface panics on
// anything the middleware path does not need.
type singleUserRepo struct {
	repository.UserRepository
	user *domain.User
}

func (r *singleUserRepo) GetByID(_ context.Context, id int) (*domain.User, error) {
	if r.user.ID == id {
		return r.user, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *singleUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.user.Email == email {
		return r.user, nil
	}
	return nil, domain.ErrUserNotFound
}

const testSecret = "test-secret-used-only-in-unit-tests!!"

func setupRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &domain.User{
		ID:           7,
		Email:        "anna@example.com",
		Nickname:     "anna",
		PasswordHash: string(hash),
	}
	authUC := auth.NewUseCase(&singleUserRepo{user: user}, testSecret, 1)

	token, err := authUC.Login(context.Background(), &auth.LoginRequest{
		Email:    "anna@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	router := gin.New()
	router.GET("/protected", NewAuthMiddleware(authUC).RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetInt("user_id")})
	})
	return router, token.AccessToken
}

func TestRequireAuthMissingHeader(t *testing.T) {
	router, _ := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	router, token := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", token) // missing Bearer prefix
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthBadToken(t *testing.T) {
	router, _ := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthValidToken(t *testing.T) {
	router, token := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":7}`, w.Body.String())
}
