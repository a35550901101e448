package main

import (
	"context"
	"log"
	"os"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/savthe/prediction-confidence/adapters/postgres"
	"github.com/savthe/prediction-confidence/domain/confidence"
	"github.com/savthe/prediction-confidence/domain/core"
	"github.com/savthe/prediction-confidence/models"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: migrate <database_url>")
	}
	databaseURL := os.Args[1]

	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	log.Println("Applying distributions schema")
	if _, err := db.Exec(postgres.Schema); err != nil {
		log.Fatalf("Failed to apply schema: %v", err)
	}

	// Seed the reference distribution so deployments can query it by name
	// even though the service also serves it as the built-in default.
	repo := postgres.NewDistributionRepository(db)
	ctx := context.Background()

	ref := confidence.DefaultConfig()
	if _, err := repo.GetByName(ctx, "reference"); core.IsNotFoundError(err) {
		d := models.NewDistribution("reference", ref.Params)
		if err := repo.Create(ctx, d); err != nil {
			log.Fatalf("Failed to seed reference distribution: %v", err)
		}
		log.Printf("Seeded reference distribution %s", d.ID)
	} else if err != nil {
		log.Fatalf("Failed to check for reference distribution: %v", err)
	} else {
		log.Println("Reference distribution already present, skipping seed")
	}

	log.Println("Migration complete")
}
