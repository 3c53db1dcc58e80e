package main

import (
	"log"

	"ai-bankassist-be/internal/config"
	"ai-bankassist-be/pkg/database"

	"github.com/fatih/color"
)

func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding demo banking data...")
	SeedDemoUser(db)
	SeedProducts(db)

	color.Cyan("Seeding knowledge base...")
	SeedKnowledge(db, cfg)

	color.Green("Seeding completed!")
}
