package main

import (
	"errors"
	"log"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
)

// Applies the SQL migrations in cmd/migrate/migrations against DB_ADDR.
//
//	go run ./cmd/migrate up
//	go run ./cmd/migrate down
func main() {
	if err := godotenv.Load(); err != nil {
		log.Fatalf("Error loading .env file: %v", err)
	}

	if len(os.Args) < 2 {
		log.Fatal("usage: migrate [up|down]")
	}

	m, err := migrate.New("file://cmd/migrate/migrations", os.Getenv("DB_ADDR"))
	if err != nil {
		log.Fatal(err)
	}
	defer m.Close()

	switch os.Args[1] {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	default:
		log.Fatalf("unknown direction %q", os.Args[1])
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatal(err)
	}

	log.Println("migrations applied")
}
