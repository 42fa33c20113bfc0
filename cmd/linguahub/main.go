package main

import (
	"context"
	"log"

	"github.com/dalemusser/linguahub/internal/app/bootstrap"
	"github.com/dalemusser/waffle/app"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()

	port := bootstrap.BridgePort()
	log.Printf("linguahub: listening port %s", port)

	if err := app.Run(context.Background(), bootstrap.Hooks); err != nil {
		log.Fatal(err)
	}
}
