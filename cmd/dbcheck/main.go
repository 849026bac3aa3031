package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/resumehub/resumehub/internal/config"
	"github.com/resumehub/resumehub/internal/db"
)

// dbcheck verifies connectivity to the configured database and prints the
// server version.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	pool, err := db.NewPool(cfg.DatabaseURL())

	if err != nil {
		fmt.Fprintf(os.Stderr, "Connection failed: %v\n", err)
		os.Exit(1)
	}

	defer pool.Close()

	ctx, cancel := config.WithTimeout(5 * time.Second)
	defer cancel()

	var version string

	err = pool.QueryRow(ctx, `SELECT version()`).Scan(&version)

	if err != nil {
		fmt.Fprintf(os.Stderr, "Connection failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Connected successfully")
	fmt.Printf("PostgreSQL version: %s\n", version)
}
