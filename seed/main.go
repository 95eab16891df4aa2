package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/pup-picks/pawmatch_api/model"
	"github.com/pup-picks/pawmatch_api/seed/seeders"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	var (
		dbPath = flag.String("db", "", "Database path (overrides DB_DATABASE env var)")
		help   = flag.Bool("help", false, "Show help message")
	)
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	databasePath := *dbPath
	if databasePath == "" {
		databasePath = os.Getenv("DB_DATABASE")
		if databasePath == "" {
			databasePath = "pawmatch.db"
		}
	}

	db, err := gorm.Open(sqlite.Open(databasePath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&model.Toy{}); err != nil {
		log.Fatalf("Failed to migrate toy table: %v", err)
	}

	if err := seeders.NewMainSeeder(db).SeedAll(); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}

func showHelp() {
	log.Println("Usage: seed [-db path/to/sqlite.db]")
	log.Println("Seeds the toy catalog into the configured database.")
}
