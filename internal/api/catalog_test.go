package api

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/brewshare/backend/internal/models"
	"github.com/pageza/brewshare/backend/internal/types"
)

func TestBeanHandlers(t *testing.T) {
	env := setupTestEnv(t)
	_, token := env.newUser(t)
	_, otherToken := env.newUser(t)

	w := performRequest(env.router, http.MethodPost, "/api/v1/beans", token, types.CreateBeanRequest{
		Name:       "Huila Supremo",
		Roaster:    "Hilltop",
		Origin:     "Colombia",
		Process:    "washed",
		RoastLevel: "medium",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var bean models.Bean
	decode(t, w, &bean)
	path := "/api/v1/beans/" + bean.ID.String()

	w = performRequest(env.router, http.MethodGet, "/api/v1/beans?origin=colombia", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Beans []models.Bean `json:"beans"`
	}
	decode(t, w, &list)
	require.Len(t, list.Beans, 1)
	assert.Equal(t, bean.ID, list.Beans[0].ID)

	notes := "stone fruit"
	w = performRequest(env.router, http.MethodPut, path, otherToken, types.UpdateBeanRequest{Notes: &notes})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = performRequest(env.router, http.MethodPut, path, token, types.UpdateBeanRequest{Notes: &notes})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Uploads are unavailable without object storage
	w = performRequest(env.router, http.MethodPost, path+"/image", token, types.BeanImageRequest{ContentType: "image/png"})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = performRequest(env.router, http.MethodPost, path+"/image", token, types.BeanImageRequest{ContentType: "image/gif"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(env.router, http.MethodPost, "/api/v1/beans", token, map[string]string{"name": "Bad", "roast_level": "blonde"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "roast_level is not a valid roast level", errorMessage(t, w))

	w = performRequest(env.router, http.MethodDelete, path, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = performRequest(env.router, http.MethodGet, path, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGrinderHandlers(t *testing.T) {
	env := setupTestEnv(t)
	_, token := env.newUser(t)

	req := types.CreateGrinderRequest{
		Brand:      "Comandante",
		Model:      "C40",
		BurrType:   "conical",
		MinSetting: 0,
		MaxSetting: 40,
	}
	w := performRequest(env.router, http.MethodPost, "/api/v1/grinders", token, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var grinder models.Grinder
	decode(t, w, &grinder)

	w = performRequest(env.router, http.MethodPost, "/api/v1/grinders", token, req)
	assert.Equal(t, http.StatusConflict, w.Code)

	req.Model = "C60"
	req.MinSetting, req.MaxSetting = 10, 5
	w = performRequest(env.router, http.MethodPost, "/api/v1/grinders", token, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(env.router, http.MethodGet, "/api/v1/grinders/"+grinder.ID.String(), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(env.router, http.MethodGet, "/api/v1/grinders/"+uuid.NewString(), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performRequest(env.router, http.MethodGet, "/api/v1/grinders", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Grinders []models.Grinder `json:"grinders"`
	}
	decode(t, w, &list)
	assert.Len(t, list.Grinders, 1)
}

func TestTasteNoteHandlers(t *testing.T) {
	env := setupTestEnv(t)
	owner, _ := env.newUser(t)
	_, token := env.newUser(t)
	_, otherToken := env.newUser(t)
	recipe := env.newRecipe(t, owner.ID)
	notesPath := "/api/v1/recipes/" + recipe.ID.String() + "/notes"

	w := performRequest(env.router, http.MethodPost, notesPath, token, types.TasteNoteRequest{
		Rating:  4,
		Acidity: 3,
		Flavors: []string{"jasmine", "bergamot"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var note models.TasteNote
	decode(t, w, &note)

	w = performRequest(env.router, http.MethodPost, notesPath, otherToken, types.TasteNoteRequest{Rating: 2})
	require.Equal(t, http.StatusCreated, w.Code)

	w = performRequest(env.router, http.MethodPost, notesPath, token, types.TasteNoteRequest{Rating: 6})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(env.router, http.MethodGet, notesPath, "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var list struct {
		Notes   []models.TasteNote  `json:"notes"`
		Summary models.TasteSummary `json:"summary"`
	}
	decode(t, w, &list)
	assert.Len(t, list.Notes, 2)
	assert.Equal(t, int64(2), list.Summary.NoteCount)
	assert.InDelta(t, 3.0, list.Summary.AverageRating, 0.001)

	notePath := "/api/v1/notes/" + note.ID.String()
	w = performRequest(env.router, http.MethodPut, notePath, otherToken, types.TasteNoteRequest{Rating: 1})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = performRequest(env.router, http.MethodPut, notePath, token, types.TasteNoteRequest{Rating: 5})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = performRequest(env.router, http.MethodDelete, notePath, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(env.router, http.MethodPost, "/api/v1/recipes/"+uuid.NewString()+"/notes", token, types.TasteNoteRequest{Rating: 3})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "recipe not found", errorMessage(t, w))
}
