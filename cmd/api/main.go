package main

import (
	"context"
	"log"
	"os"

	"github.com/planora/planora/internal/app/bootstrap"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/default.yaml"
	}

	ctx := context.Background()
	runtime, err := bootstrap.NewRuntime(ctx, configPath)
	if err != nil {
		log.Fatalf("bootstrap planora api: %v", err)
	}
	if err := runtime.RunAPI(ctx); err != nil {
		log.Fatalf("serve planora api: %v", err)
	}
}
