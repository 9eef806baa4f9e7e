package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"aydf-backend/models"
	"aydf-backend/utils"
)

func setupTest(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	utils.DB = db

	r := gin.New()
	RegisterAuthRoutes(r.Group("/api/auth"))
	return r
}

func performRequest(r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedUser(t *testing.T, email, password, role string, active bool) models.User {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Name:     "Ravi Kumar",
		Email:    email,
		Password: string(hashed),
		Phone:    "9876543210",
		Role:     role,
		IsActive: active,
	}
	require.NoError(t, utils.DB.Create(&user).Error)
	return user
}

func TestRegisterCreatesUser(t *testing.T) {
	r := setupTest(t)

	body := gin.H{
		"name":     "Ravi Kumar",
		"email":    "ravi@example.com",
		"password": "secret123",
		"phone":    "9876543210",
	}
	w := performRequest(r, http.MethodPost, "/api/auth/register", body, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Token string `json:"token"`
		User  struct {
			Role string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "user", resp.User.Role)

	var stored models.User
	require.NoError(t, utils.DB.Where("email = ?", "ravi@example.com").First(&stored).Error)
	assert.NotEqual(t, "secret123", stored.Password)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r := setupTest(t)
	seedUser(t, "ravi@example.com", "secret123", "user", true)

	body := gin.H{
		"name":     "Ravi Kumar",
		"email":    "ravi@example.com",
		"password": "secret123",
		"phone":    "9876543210",
	}
	w := performRequest(r, http.MethodPost, "/api/auth/register", body, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestRegisterInvalidPhone(t *testing.T) {
	r := setupTest(t)

	body := gin.H{
		"name":     "Ravi Kumar",
		"email":    "ravi@example.com",
		"password": "secret123",
		"phone":    "12345",
	}
	w := performRequest(r, http.MethodPost, "/api/auth/register", body, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "10-digit phone number")
}

func TestLoginSuccess(t *testing.T) {
	r := setupTest(t)
	seedUser(t, "ravi@example.com", "secret123", "user", true)

	w := performRequest(r, http.MethodPost, "/api/auth/login", gin.H{"email": "ravi@example.com", "password": "secret123"}, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "token")
}

func TestLoginWrongPassword(t *testing.T) {
	r := setupTest(t)
	seedUser(t, "ravi@example.com", "secret123", "user", true)

	w := performRequest(r, http.MethodPost, "/api/auth/login", gin.H{"email": "ravi@example.com", "password": "wrong"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestLoginUnknownEmail(t *testing.T) {
	r := setupTest(t)

	w := performRequest(r, http.MethodPost, "/api/auth/login", gin.H{"email": "nobody@example.com", "password": "secret123"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginDeactivatedAccount(t *testing.T) {
	r := setupTest(t)
	seedUser(t, "ravi@example.com", "secret123", "user", false)

	w := performRequest(r, http.MethodPost, "/api/auth/login", gin.H{"email": "ravi@example.com", "password": "secret123"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "deactivated")
}

func TestProtectAndRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	utils.DB = db

	r := gin.New()
	r.GET("/admin-only", Protect(), RequireRole("admin"), func(c *gin.Context) {
		user, ok := CurrentUser(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"email": user.Email})
	})

	// no token
	w := performRequest(r, http.MethodGet, "/admin-only", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// garbage token
	w = performRequest(r, http.MethodGet, "/admin-only", nil, "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// wrong role
	user := seedUser(t, "ravi@example.com", "secret123", "user", true)
	userToken, err := utils.GenerateToken(user.ID, user.Role)
	require.NoError(t, err)
	w = performRequest(r, http.MethodGet, "/admin-only", nil, userToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// admin passes
	admin := seedUser(t, "admin@example.com", "secret123", "admin", true)
	adminToken, err := utils.GenerateToken(admin.ID, admin.Role)
	require.NoError(t, err)
	w = performRequest(r, http.MethodGet, "/admin-only", nil, adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin@example.com")
}
