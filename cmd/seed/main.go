package main

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/gastronomia/backend/config"
	"github.com/gastronomia/backend/internal/database"
	"github.com/gastronomia/backend/internal/models"
)

// Seeds a demo account with two sample recipes for local development.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(db, "migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	var user models.User
	err = db.Where("email = ?", "demo@gastronomia.dev").First(&user).Error
	if err == nil {
		log.Println("Demo user already exists, nothing to seed")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	user = models.User{
		Name:         "Demo",
		Email:        "demo@gastronomia.dev",
		PasswordHash: string(hashed),
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatalf("Failed to create demo user: %v", err)
	}

	recipes := []models.Recipe{
		{
			Title:        "Pâtes Carbonara",
			Description:  "Recette classique italienne",
			TotalMinutes: 25,
			Difficulty:   models.DifficultyEasy,
			OwnerID:      user.ID,
			Ingredients: []models.RecipeIngredient{
				{Content: "pâtes", Position: 1},
				{Content: "œufs", Position: 2},
				{Content: "lardons", Position: 3},
				{Content: "parmesan", Position: 4},
			},
			Steps: []models.RecipeStep{
				{Content: "Cuire les pâtes", Position: 1},
				{Content: "Préparer la sauce", Position: 2},
				{Content: "Mélanger et servir", Position: 3},
			},
		},
		{
			Title:        "Poulet rôti",
			Description:  "Simple et savoureux",
			TotalMinutes: 90,
			Difficulty:   models.DifficultyMedium,
			OwnerID:      user.ID,
			Ingredients: []models.RecipeIngredient{
				{Content: "poulet", Position: 1},
				{Content: "beurre", Position: 2},
				{Content: "herbes de Provence", Position: 3},
			},
			Steps: []models.RecipeStep{
				{Content: "Préchauffer le four", Position: 1},
				{Content: "Enfourner le poulet", Position: 2},
				{Content: "Arroser régulièrement", Position: 3},
			},
		},
	}

	for i := range recipes {
		if err := db.Create(&recipes[i]).Error; err != nil {
			log.Fatalf("Failed to create recipe %q: %v", recipes[i].Title, err)
		}
		log.Printf("Seeded recipe %q", recipes[i].Title)
	}

	log.Println("Seeding complete")
}
