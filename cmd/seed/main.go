// Seed tool: loads the sample product catalog into MongoDB.
// Run with: go run ./cmd/seed
package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/BodapatiPranav/E-Commerce-Website/internal/domain"
	"github.com/BodapatiPranav/E-Commerce-Website/internal/repository"
)

var sampleProducts = []domain.Product{
	{
		Name:        "Wireless Mouse",
		Price:       29.99,
		Description: "Ergonomic wireless mouse with precision tracking. Perfect for work and gaming.",
		Image:       "https://images.unsplash.com/photo-1527814050087-3793815479db?w=500&h=500&fit=crop",
	},
	{
		Name:        "Mechanical Keyboard",
		Price:       89.99,
		Description: "RGB mechanical keyboard with cherry MX switches. Great for typing and gaming.",
		Image:       "https://images.unsplash.com/photo-1587829741301-dc798b83add3?w=500&h=500&fit=crop",
	},
	{
		Name:        "USB-C Hub",
		Price:       49.99,
		Description: "Multi-port USB-C hub with HDMI, USB 3.0, and SD card reader.",
		Image:       "https://plus.unsplash.com/premium_photo-1761043248662-42f371ad31b4?w=500&fit=crop",
	},
	{
		Name:        "Wireless Headphones",
		Price:       79.99,
		Description: "Noise-cancelling wireless headphones with 30-hour battery life.",
		Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=500&h=500&fit=crop",
	},
	{
		Name:        "Laptop Stand",
		Price:       39.99,
		Description: "Adjustable aluminum laptop stand for better ergonomics.",
		Image:       "https://images.unsplash.com/photo-1629317480826-910f729d1709?w=500&fit=crop",
	},
	{
		Name:        "Webcam HD",
		Price:       59.99,
		Description: "1080p HD webcam with built-in microphone for video calls.",
		Image:       "https://images.unsplash.com/photo-1614588876378-b2ffa4520c22?w=500&fit=crop",
	},
	{
		Name:        "USB Flash Drive 64GB",
		Price:       19.99,
		Description: "High-speed USB 3.0 flash drive with 64GB storage capacity.",
		Image:       "https://plus.unsplash.com/premium_photo-1726768935831-b4541df89d85?w=500&fit=crop",
	},
	{
		Name:        "Monitor Stand",
		Price:       34.99,
		Description: "Dual monitor stand with adjustable height and tilt.",
		Image:       "https://plus.unsplash.com/premium_photo-1683326528070-4ebec9188ae1?w=500&fit=crop",
	},
}

func main() {
	_ = godotenv.Load()

	mongoURI := getEnv("MONGO_URI", "mongodb://localhost:27017")
	mongoDBName := getEnv("MONGO_DB_NAME", "storefront")

	ctx := context.Background()
	mongoDB, err := repository.ConnectMongoDB(ctx, mongoURI, mongoDBName)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoDB.Client().Disconnect(ctx)

	if err := repository.EnsureIndexes(ctx, mongoDB); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	products := repository.NewMongoProductRepository(mongoDB)

	// Upserts keyed by name, so reseeding is idempotent
	for i := range sampleProducts {
		if err := products.Upsert(ctx, &sampleProducts[i]); err != nil {
			log.Fatalf("Failed to seed product %q: %v", sampleProducts[i].Name, err)
		}
	}

	log.Printf("Seeded %d products into %s", len(sampleProducts), mongoDBName)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
