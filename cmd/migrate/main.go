package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/contentwerk/seo-engine/internal/database"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found")
	}

	dsn := flag.String("dsn", os.Getenv("POSTGRES_URI"), "PostgreSQL connection string")
	flag.Parse()

	if *dsn == "" {
		log.Fatal().Msg("No DSN provided, set POSTGRES_URI or pass -dsn")
	}

	db, err := gorm.Open(postgres.Open(*dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to the database")
	}

	if err := database.RunMigrations(db); err != nil {
		log.Fatal().Err(err).Msg("Migration failed")
	}
	log.Info().Msg("Migrations completed successfully")
}
