package api

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gastronomia/backend/internal/middleware"
	"github.com/gastronomia/backend/internal/service"
)

// maxImageBytes bounds an uploaded recipe image.
const maxImageBytes = 5 << 20

// ImageHandler handles recipe image uploads.
type ImageHandler struct {
	recipeService *service.RecipeService
	imageService  service.IImageService
	authService   middleware.TokenValidator
}

func NewImageHandler(recipeService *service.RecipeService, imageService service.IImageService, authService middleware.TokenValidator) *ImageHandler {
	return &ImageHandler{
		recipeService: recipeService,
		imageService:  imageService,
		authService:   authService,
	}
}

func (h *ImageHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/recipes/:id/image", middleware.AuthMiddleware(h.authService), h.UploadRecipeImage)
}

// UploadRecipeImage stores a multipart "image" file and records its public
// URL on the recipe. Only the owner may upload.
func (h *ImageHandler) UploadRecipeImage(c *gin.Context) {
	userID, ok := middleware.SessionUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	// Ownership is checked before anything is written to storage.
	recipe, err := h.recipeService.GetRecipe(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		log.Printf("upload image %s: lookup failed: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	if !service.UserOwnsResource(userID, recipe.OwnerID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	if fileHeader.Size > maxImageBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image exceeds the 5 MB limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("upload image %s: open failed: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("upload image %s: read failed: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	imageURL, err := h.imageService.UploadRecipeImage(c.Request.Context(), data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		log.Printf("upload image %s: store failed: %v", id, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported image"})
		return
	}

	if err := h.recipeService.SetRecipeImageURL(c.Request.Context(), userID, id, imageURL); err != nil {
		switch {
		case errors.Is(err, service.ErrRecipeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		case errors.Is(err, service.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		default:
			log.Printf("upload image %s: update failed: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"imageUrl": imageURL})
}
