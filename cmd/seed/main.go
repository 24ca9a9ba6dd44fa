// Command seed loads development fixtures so the frontend and manual
// testing have data to work with immediately. It is safe to run twice:
// seeding is skipped when subjects already exist.
package main

import (
	"context"
	"log"
	"time"

	"github.com/stellar-compass/learning-service/internal/config"
	"github.com/stellar-compass/learning-service/internal/models"
	"github.com/stellar-compass/learning-service/internal/repositories"
	"github.com/stellar-compass/learning-service/internal/repositories/mongodb"
	"github.com/stellar-compass/learning-service/pkg"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	client, err := pkg.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	repoManager := mongodb.NewRepositoryManager(mongodb.RepositoryConfig{
		Client:   client,
		Database: cfg.MongoDatabase,
	})
	if err := repoManager.Initialize(ctx); err != nil {
		log.Fatalf("Failed to initialize repositories: %v", err)
	}
	defer repoManager.Shutdown(ctx)

	if err := seed(ctx, repoManager.GetRepository()); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
}

func seed(ctx context.Context, repo repositories.Repository) error {
	count, err := repo.Subject().Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Println("Data already present, skipping initialization")
		return nil
	}

	log.Println("Database is empty, loading test data...")

	math := &models.Subject{Title: "Mathematics", Description: "Basics of algebra and geometry"}
	if err := repo.Subject().Create(ctx, math); err != nil {
		return err
	}

	history := &models.Subject{Title: "History", Description: "World history of the 20th century"}
	if err := repo.Subject().Create(ctx, history); err != nil {
		return err
	}

	lessons := []*models.Lesson{
		{
			Title:       "Introduction to Numbers",
			Content:     "What are natural numbers?",
			ContentType: "TEXT",
			SubjectID:   math.ID.Hex(),
		},
		{
			Title:       "Adding & Subtracting",
			Content:     "Learn basic arithmetic.",
			VideoURL:    "https://youtube.com/watch?v=example",
			ContentType: "VIDEO",
			SubjectID:   math.ID.Hex(),
		},
		{
			Title:       "The Cold War",
			Content:     "Summary of events.",
			ContentType: "TEXT",
			SubjectID:   history.ID.Hex(),
		},
	}
	for _, lesson := range lessons {
		if err := repo.Lesson().Create(ctx, lesson); err != nil {
			return err
		}
	}

	log.Println("Test data loaded successfully")
	return nil
}
