package types

// RecipeInput is the candidate payload of a create or update request. Every
// field is optional at this level; validation decides what is acceptable.
type RecipeInput struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Ingredients  []string `json:"ingredients"`
	Steps        []string `json:"steps"`
	TotalMinutes int      `json:"totalMinutes"`
	Difficulty   string   `json:"difficulty"`
	ImageURL     string   `json:"imageUrl"`
}

// RecipeFilters holds the optional list filters. A nil MaxTime means no
// duration bound; empty strings mean no filter.
type RecipeFilters struct {
	Query      string
	MaxTime    *int
	Difficulty string
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
