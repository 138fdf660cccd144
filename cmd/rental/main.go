package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/aaronlin79/game-rental-system/internal/cli"
	"github.com/aaronlin79/game-rental-system/internal/config"
	"github.com/aaronlin79/game-rental-system/internal/postgres"
	"github.com/aaronlin79/game-rental-system/internal/rental"
)

func main() {
	_ = godotenv.Load()

	if len(os.Args) != 4 {
		fmt.Fprintf(os.Stderr, "Usage: %s <dbname> <port> <user>\n", filepath.Base(os.Args[0]))
		os.Exit(1)
	}
	cfg := config.Load(os.Args[1], os.Args[2], os.Args[3])
	ctx := context.Background()

	fmt.Print("Connecting to database...")
	pool, err := postgres.Connect(ctx, cfg.DSN())
	if err != nil {
		fmt.Println()
		log.Fatalf("unable to connect to database: %v", err)
	}
	fmt.Println("Done")

	repo := rental.NewRepo(pool, os.Stdout)
	h := cli.NewHandler(repo, os.Stdin, os.Stdout)
	if err := h.Run(ctx); err != nil && !errors.Is(err, io.EOF) {
		log.Println(err)
	}

	fmt.Print("Disconnecting from database...")
	pool.Close()
	fmt.Print("Done\n\nBye !\n")
}
