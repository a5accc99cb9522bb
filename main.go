package main

import (
	"log"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"orderseed/internal/config"
	"orderseed/internal/generator"
	"orderseed/internal/report"
	"orderseed/internal/services"
	"orderseed/internal/shopify"
	"orderseed/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	// Everything is read from the environment up front; a missing credential
	// fails here, before any network activity.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	// --- Platform client and generator ---
	client := shopify.NewClient(shopify.Config{
		ShopDomain:  cfg.ShopDomain,
		AccessToken: cfg.AccessToken,
		APIVersion:  cfg.APIVersion,
		Endpoint:    cfg.APIEndpoint,
		Timeout:     cfg.HTTPTimeout,
	})
	gen := generator.New(rand.New(rand.NewSource(time.Now().UnixNano())))

	// --- Reporters ---
	// Console output always; the broker sink only when a URL is configured.
	reporters := []report.Reporter{report.NewConsole(logger)}
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close() // Ensure the connection is closed on exit
		reporters = append(reporters, report.NewAMQP(mqClient, logger))
	}

	// --- Run the pipeline once ---
	service := services.NewSeedService(client, gen, report.Combine(reporters...), cfg)
	if _, err := service.Run(); err != nil {
		log.Fatalf("Order generation failed: %v", err)
	}
}
