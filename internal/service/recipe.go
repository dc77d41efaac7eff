package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gastronomia/backend/internal/models"
	"github.com/gastronomia/backend/internal/types"
	"github.com/gastronomia/backend/internal/validation"
)

// listLimit caps the number of recipes a single list call returns.
const listLimit = 50

// RecipeService handles recipe persistence. Mutations re-validate their
// input server-side and enforce ownership before touching the store.
type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// ListRecipes returns the most recent recipes matching the filters, newest
// first, children in list order. Filters are AND-combined.
func (s *RecipeService) ListRecipes(ctx context.Context, filters types.RecipeFilters) ([]models.Recipe, error) {
	query := s.db.WithContext(ctx).Model(&models.Recipe{})

	if filters.Query != "" {
		like := "%" + escapeLike(strings.ToLower(filters.Query)) + "%"
		query = query.Where(`LOWER(title) LIKE ? ESCAPE '\'`, like)
	}
	if filters.MaxTime != nil {
		query = query.Where("total_minutes <= ?", *filters.MaxTime)
	}
	if filters.Difficulty != "" {
		query = query.Where("difficulty = ?", filters.Difficulty)
	}

	recipes := []models.Recipe{}
	err := query.
		Preload("Ingredients", byPosition).
		Preload("Steps", byPosition).
		Order("created_at DESC").
		Limit(listLimit).
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetRecipe retrieves a recipe with its ordered ingredient and step lists.
func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.WithContext(ctx).
		Preload("Ingredients", byPosition).
		Preload("Steps", byPosition).
		First(&recipe, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// CreateRecipe validates the input and persists the recipe together with its
// ingredient and step rows in one transaction. Child order is assigned as a
// 1-based sequence matching the input arrays.
func (s *RecipeService) CreateRecipe(ctx context.Context, ownerID uuid.UUID, input types.RecipeInput) (*models.Recipe, error) {
	if result := validation.ValidateRecipe(input); !result.IsValid {
		return nil, &ValidationError{Errors: result.Errors}
	}

	recipe := &models.Recipe{
		Title:        input.Title,
		Description:  input.Description,
		TotalMinutes: input.TotalMinutes,
		Difficulty:   input.Difficulty,
		ImageURL:     input.ImageURL,
		OwnerID:      ownerID,
		Ingredients:  buildIngredients(uuid.Nil, input.Ingredients),
		Steps:        buildSteps(uuid.Nil, input.Steps),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(recipe).Error
	})
	if err != nil {
		return nil, err
	}
	return recipe, nil
}

// UpdateRecipe checks existence, then ownership, then validity, in that
// order. On success the prior ingredient/step rows are dropped and a fresh
// ordered set is written, atomically with the scalar update.
func (s *RecipeService) UpdateRecipe(ctx context.Context, ownerID, id uuid.UUID, input types.RecipeInput) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	if !UserOwnsResource(ownerID, recipe.OwnerID) {
		return nil, ErrNotOwner
	}
	if result := validation.ValidateRecipe(input); !result.IsValid {
		return nil, &ValidationError{Errors: result.Errors}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&models.RecipeStep{}).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{
			"title":         input.Title,
			"description":   input.Description,
			"total_minutes": input.TotalMinutes,
			"difficulty":    input.Difficulty,
			"image_url":     input.ImageURL,
		}
		if err := tx.Model(&models.Recipe{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}

		ingredients := buildIngredients(id, input.Ingredients)
		if err := tx.Create(&ingredients).Error; err != nil {
			return err
		}
		steps := buildSteps(id, input.Steps)
		return tx.Create(&steps).Error
	})
	if err != nil {
		return nil, err
	}

	return s.GetRecipe(ctx, id)
}

// DeleteRecipe checks existence then ownership, and removes the recipe with
// its child rows in one transaction.
func (s *RecipeService) DeleteRecipe(ctx context.Context, ownerID, id uuid.UUID) error {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecipeNotFound
		}
		return err
	}
	if !UserOwnsResource(ownerID, recipe.OwnerID) {
		return ErrNotOwner
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&models.RecipeStep{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Recipe{}, "id = ?", id).Error
	})
}

// SetRecipeImageURL records the stored image location on a recipe, with the
// same existence-then-ownership gating as the other mutations.
func (s *RecipeService) SetRecipeImageURL(ctx context.Context, ownerID, id uuid.UUID, imageURL string) error {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecipeNotFound
		}
		return err
	}
	if !UserOwnsResource(ownerID, recipe.OwnerID) {
		return ErrNotOwner
	}
	return s.db.WithContext(ctx).Model(&recipe).Update("image_url", imageURL).Error
}

// likeEscaper neutralizes LIKE metacharacters so a search term matches them
// literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func byPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

func buildIngredients(recipeID uuid.UUID, contents []string) []models.RecipeIngredient {
	out := make([]models.RecipeIngredient, len(contents))
	for i, content := range contents {
		out[i] = models.RecipeIngredient{RecipeID: recipeID, Content: content, Position: i + 1}
	}
	return out
}

func buildSteps(recipeID uuid.UUID, contents []string) []models.RecipeStep {
	out := make([]models.RecipeStep, len(contents))
	for i, content := range contents {
		out[i] = models.RecipeStep{RecipeID: recipeID, Content: content, Position: i + 1}
	}
	return out
}
