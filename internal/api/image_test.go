package api

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gastronomia/backend/internal/models"
)

type stubImageService struct {
	url      string
	err      error
	uploaded bool
}

func (s *stubImageService) UploadRecipeImage(_ context.Context, _ []byte, _ string) (string, error) {
	s.uploaded = true
	return s.url, s.err
}

func setupImageRouter(t *testing.T) (*gin.Engine, *stubImageService, string, string) {
	t.Helper()
	_, db, authService := setupTestRouter(t)

	// Rebuild the router with the stub image service wired in.
	images := &stubImageService{url: "https://img.example.com/recipe.png"}
	router := gin.New()
	RegisterRoutes(router, db, authService, images, nil)

	ownerToken := registerTestUser(t, authService, "owner@example.com")
	strangerToken := registerTestUser(t, authService, "stranger@example.com")
	return router, images, ownerToken, strangerToken
}

func uploadImage(t *testing.T, router *gin.Engine, recipeID, token string, payload []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", "photo.png")
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recipes/"+recipeID+"/image", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestUploadRecipeImage(t *testing.T) {
	router, images, ownerToken, _ := setupImageRouter(t)

	w := doJSON(router, http.MethodPost, "/api/v1/recipes", ownerToken, validRecipeBody())
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = uploadImage(t, router, created.ID.String(), ownerToken, []byte("pngdata"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, images.url, decodeBody(t, w)["imageUrl"])

	// The stored recipe now carries the URL.
	w = doJSON(router, http.MethodGet, "/api/v1/recipes/"+created.ID.String(), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var fetched models.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, images.url, fetched.ImageURL)
}

func TestUploadRecipeImageOwnershipGate(t *testing.T) {
	router, images, ownerToken, strangerToken := setupImageRouter(t)

	w := doJSON(router, http.MethodPost, "/api/v1/recipes", ownerToken, validRecipeBody())
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = uploadImage(t, router, created.ID.String(), "", []byte("pngdata"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = uploadImage(t, router, created.ID.String(), strangerToken, []byte("pngdata"))
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Nothing reached storage for the refused attempts.
	assert.False(t, images.uploaded)
}
