package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/brewshare/backend/internal/middleware"
	"github.com/pageza/brewshare/backend/internal/mocks"
	"github.com/pageza/brewshare/backend/internal/models"
	"github.com/pageza/brewshare/backend/internal/service"
	"github.com/pageza/brewshare/backend/internal/types"
)

func createRecipeBody() types.CreateRecipeRequest {
	return types.CreateRecipeRequest{
		Title:        "Weekend Chemex",
		Description:  "Sweet and round",
		BrewMethod:   "chemex",
		DoseGrams:    30,
		WaterGrams:   500,
		WaterTempC:   96,
		GrindSetting: "medium-coarse",
		BrewSeconds:  270,
		Steps:        []string{"bloom 60g", "pour to 500g"},
	}
}

func TestRecipeCRUD(t *testing.T) {
	env := setupTestEnv(t)
	_, token := env.newUser(t)
	_, otherToken := env.newUser(t)

	w := performRequest(env.router, http.MethodPost, "/api/v1/recipes", token, createRecipeBody())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created models.Recipe
	decode(t, w, &created)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "chemex", created.BrewMethod)
	path := "/api/v1/recipes/" + created.ID.String()

	w = performRequest(env.router, http.MethodGet, path, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var fetched models.Recipe
	decode(t, w, &fetched)
	assert.Equal(t, created.Title, fetched.Title)
	assert.Equal(t, []string{"bloom 60g", "pour to 500g"}, []string(fetched.Steps))

	title := "Weekday Chemex"
	w = performRequest(env.router, http.MethodPut, path, otherToken, types.UpdateRecipeRequest{Title: &title})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = performRequest(env.router, http.MethodPut, path, token, types.UpdateRecipeRequest{Title: &title})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decode(t, w, &fetched)
	assert.Equal(t, title, fetched.Title)

	w = performRequest(env.router, http.MethodDelete, path, otherToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = performRequest(env.router, http.MethodDelete, path, token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var deleted types.DeleteRecipeResponse
	decode(t, w, &deleted)
	assert.True(t, deleted.Success)
	assert.Empty(t, deleted.CleanupErrors)

	w = performRequest(env.router, http.MethodGet, path, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateRecipeValidation(t *testing.T) {
	env := setupTestEnv(t)
	_, token := env.newUser(t)

	w := performRequest(env.router, http.MethodPost, "/api/v1/recipes", "", createRecipeBody())
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	body := createRecipeBody()
	body.BrewMethod = "percolator"
	w = performRequest(env.router, http.MethodPost, "/api/v1/recipes", token, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "brew_method is not a valid brew method", errorMessage(t, w))

	body = createRecipeBody()
	body.DoseGrams = 0
	w = performRequest(env.router, http.MethodPost, "/api/v1/recipes", token, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body = createRecipeBody()
	missing := uuid.New()
	body.BeanID = &missing
	w = performRequest(env.router, http.MethodPost, "/api/v1/recipes", token, body)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, errorMessage(t, w), "bean")
}

func TestGetRecipeNotFound(t *testing.T) {
	env := setupTestEnv(t)

	for _, id := range []string{uuid.NewString(), "42"} {
		w := performRequest(env.router, http.MethodGet, "/api/v1/recipes/"+id, "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code, id)
	}
}

func TestListRecipes(t *testing.T) {
	env := setupTestEnv(t)
	user, token := env.newUser(t)
	other, _ := env.newUser(t)
	env.newRecipe(t, other.ID)

	w := performRequest(env.router, http.MethodPost, "/api/v1/recipes", token, createRecipeBody())
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Recipes []models.Recipe `json:"recipes"`
	}

	w = performRequest(env.router, http.MethodGet, "/api/v1/recipes?brew_method=chemex", "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decode(t, w, &resp)
	require.Len(t, resp.Recipes, 1)
	assert.Equal(t, user.ID, resp.Recipes[0].UserID)

	w = performRequest(env.router, http.MethodGet, "/api/v1/recipes?user_id="+other.ID.String(), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &resp)
	require.Len(t, resp.Recipes, 1)
	assert.Equal(t, other.ID, resp.Recipes[0].UserID)

	w = performRequest(env.router, http.MethodGet, "/api/v1/recipes?q=weekend", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &resp)
	assert.Len(t, resp.Recipes, 1)

	w = performRequest(env.router, http.MethodGet, "/api/v1/recipes?bean_id=nope", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(env.router, http.MethodGet, "/api/v1/recipes?brew_method=percolator", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSimilarRecipes(t *testing.T) {
	env := setupTestEnv(t)
	user, _ := env.newUser(t)
	base := env.newRecipe(t, user.ID)
	near := env.newRecipe(t, user.ID)

	w := performRequest(env.router, http.MethodGet, fmt.Sprintf("/api/v1/recipes/%s/similar?limit=5", base.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		Recipes []models.Recipe `json:"recipes"`
	}
	decode(t, w, &resp)
	require.Len(t, resp.Recipes, 1)
	assert.Equal(t, near.ID, resp.Recipes[0].ID)
}

func TestDeleteRecipeReportsCleanupFailures(t *testing.T) {
	userID := uuid.New()
	recipeID := uuid.New()

	validator := new(mocks.MockTokenValidator)
	validator.On("ValidateToken", "valid-token").Return(&types.TokenClaims{UserID: userID}, nil)

	recipes := new(mocks.MockRecipeService)
	recipes.On("DeleteRecipe", mock.Anything, userID, recipeID).Return(&service.DeleteResult{
		RecipeID: recipeID,
		Failures: []service.CleanupFailure{{Step: "favorites", Err: errors.New("connection reset")}},
	}, nil)

	router := gin.New()
	router.Use(middleware.ErrorHandler())
	NewRecipeHandler(recipes, validator).RegisterRoutes(router.Group("/api/v1"))

	w := performRequest(router, http.MethodDelete, "/api/v1/recipes/"+recipeID.String(), "valid-token", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp types.DeleteRecipeResponse
	decode(t, w, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, []string{"favorites"}, resp.CleanupErrors)
	assert.NotContains(t, w.Body.String(), "connection reset")
	recipes.AssertExpectations(t)
}

func TestDeleteRecipeClearsMarks(t *testing.T) {
	env := setupTestEnv(t)
	owner, ownerToken := env.newUser(t)
	_, token := env.newUser(t)
	recipe := env.newRecipe(t, owner.ID)
	toggle(t, env, "like", token, recipe.ID)
	toggle(t, env, "favorite", token, recipe.ID)

	w := performRequest(env.router, http.MethodDelete, "/api/v1/recipes/"+recipe.ID.String(), ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var n int64
	require.NoError(t, env.db.WithContext(context.Background()).Model(&models.RecipeLike{}).Where("recipe_id = ?", recipe.ID).Count(&n).Error)
	assert.Zero(t, n)
	require.NoError(t, env.db.Model(&models.RecipeFavorite{}).Where("recipe_id = ?", recipe.ID).Count(&n).Error)
	assert.Zero(t, n)
}
