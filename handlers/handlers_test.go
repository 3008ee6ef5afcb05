package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"littlelemon-api/config"
	"littlelemon-api/middleware"
	"littlelemon-api/models"
	"littlelemon-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupRouter gives each test a fresh in-memory database and a fully wired
// router.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a second connection would see a different empty in-memory database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	config.DB = db
	config.JWTSecret = []byte("test-secret")
	require.NoError(t, config.SeedRoles())

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func createUser(t *testing.T, username string, isAdmin bool, roleNames ...models.RoleName) (*models.User, string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{
		Username:     username,
		Email:        username + "@littlelemon.test",
		PasswordHash: string(hash),
		IsAdmin:      isAdmin,
	}
	require.NoError(t, config.DB.Create(user).Error)
	for _, name := range roleNames {
		var role models.Role
		require.NoError(t, config.DB.Where("name = ?", name).First(&role).Error)
		require.NoError(t, config.DB.Model(user).Association("Roles").Append(&role))
	}
	token, err := middleware.GenerateToken(user)
	require.NoError(t, err)
	return user, token
}

// seedMenu creates a category with two items: Greek Salad at 5.00 and
// Lemon Dessert at 3.00.
func seedMenu(t *testing.T) (models.MenuItem, models.MenuItem) {
	t.Helper()
	cat := models.Category{Slug: "mains", Title: "Mains"}
	require.NoError(t, config.DB.Create(&cat).Error)
	a := models.MenuItem{Title: "Greek Salad", Price: decimal.RequireFromString("5.00"), CategoryID: cat.ID}
	b := models.MenuItem{Title: "Lemon Dessert", Price: decimal.RequireFromString("3.00"), CategoryID: cat.ID}
	require.NoError(t, config.DB.Create(&a).Error)
	require.NoError(t, config.DB.Create(&b).Error)
	return a, b
}

func doRequest(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
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

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
