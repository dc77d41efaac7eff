// Package validation checks candidate recipe payloads against the structural
// rules of the product contract. The messages are user-facing and their exact
// wording and ordering are part of that contract.
package validation

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/gastronomia/backend/internal/models"
	"github.com/gastronomia/backend/internal/types"
)

const (
	MsgTitleTooShort      = "Le titre doit contenir au moins 3 caractères"
	MsgIngredientRequired = "Au moins un ingrédient est requis"
	MsgStepRequired       = "Au moins une étape est requise"
	MsgMinutesOutOfRange  = "La durée totale doit être comprise entre 1 et 300 minutes"
	MsgInvalidDifficulty  = "La difficulté doit être easy, medium ou hard"
	MsgInvalidImageURL    = "L'URL de l'image est invalide"
)

// Result pairs a validity flag with the ordered list of failing messages.
type Result struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// recipeChecks is the declarative rule set. Checks are independent: every
// rule runs and every failing message is collected, in this order.
var recipeChecks = []struct {
	message string
	ok      func(types.RecipeInput) bool
}{
	{MsgTitleTooShort, func(in types.RecipeInput) bool {
		return utf8.RuneCountInString(strings.TrimSpace(in.Title)) >= 3
	}},
	{MsgIngredientRequired, func(in types.RecipeInput) bool {
		return len(in.Ingredients) >= 1
	}},
	{MsgStepRequired, func(in types.RecipeInput) bool {
		return len(in.Steps) >= 1
	}},
	{MsgMinutesOutOfRange, func(in types.RecipeInput) bool {
		return in.TotalMinutes >= 1 && in.TotalMinutes <= 300
	}},
	{MsgInvalidDifficulty, func(in types.RecipeInput) bool {
		switch in.Difficulty {
		case "", models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard:
			return true
		}
		return false
	}},
	{MsgInvalidImageURL, func(in types.RecipeInput) bool {
		if in.ImageURL == "" {
			return true
		}
		return isAbsoluteURL(in.ImageURL)
	}},
}

// ValidateRecipe runs the full rule set against the payload. No short
// circuiting: the result carries every failing message.
func ValidateRecipe(in types.RecipeInput) Result {
	errs := []string{}
	for _, check := range recipeChecks {
		if !check.ok(in) {
			errs = append(errs, check.message)
		}
	}
	return Result{IsValid: len(errs) == 0, Errors: errs}
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme != "" && (u.Host != "" || u.Opaque != "")
}
