package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Difficulty values accepted for a recipe.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

type Recipe struct {
	ID           uuid.UUID          `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
	Title        string             `gorm:"size:255;not null" json:"title"`
	Description  string             `gorm:"type:text" json:"description,omitempty"`
	TotalMinutes int                `gorm:"not null" json:"totalMinutes"`
	Difficulty   string             `gorm:"size:16" json:"difficulty"`
	ImageURL     string             `gorm:"size:255" json:"imageUrl,omitempty"`
	OwnerID      uuid.UUID          `gorm:"type:varchar(36);not null;index" json:"ownerId"`
	Ingredients  []RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"ingredients"`
	Steps        []RecipeStep       `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"steps"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// RecipeIngredient is one entry of a recipe's ingredient list. Position is
// 1-based and contiguous per recipe; it is serialized as "order" on the wire.
type RecipeIngredient struct {
	ID       uuid.UUID `gorm:"type:varchar(36);primarykey" json:"-"`
	RecipeID uuid.UUID `gorm:"type:varchar(36);not null;index" json:"recipeId"`
	Content  string    `gorm:"not null" json:"content"`
	Position int       `gorm:"not null" json:"order"`
}

func (i *RecipeIngredient) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// RecipeStep is one entry of a recipe's ordered step list.
type RecipeStep struct {
	ID       uuid.UUID `gorm:"type:varchar(36);primarykey" json:"-"`
	RecipeID uuid.UUID `gorm:"type:varchar(36);not null;index" json:"recipeId"`
	Content  string    `gorm:"not null" json:"content"`
	Position int       `gorm:"not null" json:"order"`
}

func (s *RecipeStep) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
