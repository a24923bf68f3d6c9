package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pageza/brewshare/backend/internal/middleware"
	"github.com/pageza/brewshare/backend/internal/models"
	"github.com/pageza/brewshare/backend/internal/repositories"
	"github.com/pageza/brewshare/backend/internal/service"
	"github.com/pageza/brewshare/backend/internal/testhelpers"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	RegisterValidators()
	os.Exit(m.Run())
}

// testEnv is a router wired to real services over a SQLite database
type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	auth   *service.AuthService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testhelpers.SetupTestDatabase(t)

	likeStore := repositories.NewToggleStore(db, service.KindLike.Table())
	favoriteStore := repositories.NewToggleStore(db, service.KindFavorite.Table())
	recipes := service.NewRecipeService(db, likeStore, favoriteStore)
	auth := service.NewAuthService(db, "test-secret", time.Hour)

	router := gin.New()
	router.Use(middleware.ErrorHandler())
	RegisterRoutes(router, Services{
		DB:         db,
		Auth:       auth,
		Likes:      service.NewToggleService(service.KindLike, likeStore, recipes),
		Favorites:  service.NewToggleService(service.KindFavorite, favoriteStore, recipes),
		Recipes:    recipes,
		Beans:      service.NewBeanService(db, nil),
		TasteNotes: service.NewTasteNoteService(db, recipes),
		Grinders:   service.NewGrinderService(db),
	})

	return &testEnv{router: router, db: db, auth: auth}
}

// newUser registers a user and returns it with a bearer token
func (e *testEnv) newUser(t *testing.T) (*models.User, string) {
	t.Helper()
	email := fmt.Sprintf("brewer+%s@example.com", uuid.NewString()[:8])
	user, token, err := e.auth.Register(context.Background(), email, "password123", "Test Brewer")
	require.NoError(t, err)
	return user, token
}

func (e *testEnv) newRecipe(t *testing.T, ownerID uuid.UUID) *models.Recipe {
	t.Helper()
	return testhelpers.CreateTestRecipe(t, e.db, ownerID)
}

// performRequest sends body as JSON. An empty token sends no Authorization header.
func performRequest(router http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), "body: %s", w.Body.String())
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	decode(t, w, &body)
	return body["error"]
}
