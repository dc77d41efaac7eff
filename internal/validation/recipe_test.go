package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gastronomia/backend/internal/types"
)

func validInput() types.RecipeInput {
	return types.RecipeInput{
		Title:        "Tarte aux pommes",
		Description:  "Un classique",
		Ingredients:  []string{"pommes", "pâte"},
		Steps:        []string{"Préparer", "Cuire"},
		TotalMinutes: 45,
		Difficulty:   "easy",
		ImageURL:     "http://example.com/tarte.jpg",
	}
}

func TestValidateRecipeAcceptsValidPayload(t *testing.T) {
	result := ValidateRecipe(validInput())
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
}

func TestValidateRecipeAcceptsMinimalPayload(t *testing.T) {
	result := ValidateRecipe(types.RecipeInput{
		Title:        "Pho",
		Ingredients:  []string{"nouilles"},
		Steps:        []string{"Cuire"},
		TotalMinutes: 1,
	})
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
}

func TestValidateRecipeTitle(t *testing.T) {
	for _, title := range []string{"", "ab", "  ab  ", "\t\n"} {
		in := validInput()
		in.Title = title
		result := ValidateRecipe(in)
		assert.False(t, result.IsValid, "title %q", title)
		assert.Equal(t, []string{MsgTitleTooShort}, result.Errors, "title %q", title)
	}

	// Trimmed length counts runes, not bytes.
	in := validInput()
	in.Title = " ïlé "
	assert.True(t, ValidateRecipe(in).IsValid)
}

func TestValidateRecipeIngredientsAndSteps(t *testing.T) {
	in := validInput()
	in.Ingredients = nil
	result := ValidateRecipe(in)
	assert.Equal(t, []string{MsgIngredientRequired}, result.Errors)

	in = validInput()
	in.Steps = []string{}
	result = ValidateRecipe(in)
	assert.Equal(t, []string{MsgStepRequired}, result.Errors)
}

func TestValidateRecipeTotalMinutes(t *testing.T) {
	cases := map[int]bool{0: false, 1: true, 150: true, 300: true, 301: false, -5: false}
	for minutes, want := range cases {
		in := validInput()
		in.TotalMinutes = minutes
		result := ValidateRecipe(in)
		assert.Equal(t, want, result.IsValid, "minutes %d", minutes)
		if !want {
			assert.Equal(t, []string{MsgMinutesOutOfRange}, result.Errors)
		}
	}
}

func TestValidateRecipeDifficulty(t *testing.T) {
	for _, difficulty := range []string{"easy", "medium", "hard", ""} {
		in := validInput()
		in.Difficulty = difficulty
		assert.True(t, ValidateRecipe(in).IsValid, "difficulty %q", difficulty)
	}

	in := validInput()
	in.Difficulty = "extreme"
	result := ValidateRecipe(in)
	assert.Equal(t, []string{MsgInvalidDifficulty}, result.Errors)
}

func TestValidateRecipeImageURL(t *testing.T) {
	valid := []string{"", "http://example.com/a.png", "https://cdn.example.com/img?id=1"}
	for _, u := range valid {
		in := validInput()
		in.ImageURL = u
		assert.True(t, ValidateRecipe(in).IsValid, "url %q", u)
	}

	invalid := []string{"notaurl", "example.com/a.png", "/relative/path", "http://"}
	for _, u := range invalid {
		in := validInput()
		in.ImageURL = u
		result := ValidateRecipe(in)
		assert.False(t, result.IsValid, "url %q", u)
		assert.Equal(t, []string{MsgInvalidImageURL}, result.Errors, "url %q", u)
	}
}

func TestValidateRecipeCollectsAllErrorsInOrder(t *testing.T) {
	result := ValidateRecipe(types.RecipeInput{
		Title:        "ab",
		TotalMinutes: 0,
		Difficulty:   "extreme",
		ImageURL:     "notaurl",
	})

	assert.False(t, result.IsValid)
	assert.Equal(t, []string{
		MsgTitleTooShort,
		MsgIngredientRequired,
		MsgStepRequired,
		MsgMinutesOutOfRange,
		MsgInvalidDifficulty,
		MsgInvalidImageURL,
	}, result.Errors)
}

func TestValidateRecipeCollectsPartialErrors(t *testing.T) {
	in := validInput()
	in.Steps = nil
	in.TotalMinutes = 400

	result := ValidateRecipe(in)
	assert.Equal(t, []string{MsgStepRequired, MsgMinutesOutOfRange}, result.Errors)
}
