// Package seed loads the canned service catalog into an empty store.
//
// The guard is a count threshold, not an upsert: a store already holding at
// least as many services as the canned set is left untouched, but seeding a
// partially overlapping store can still produce duplicates.
package seed

import (
	"context"
	"fmt"
	"time"

	"homehero/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ServicesCollection is the subset of *mongo.Collection the seeder uses.
type ServicesCollection interface {
	CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
	InsertMany(ctx context.Context, documents []interface{}, opts ...*options.InsertManyOptions) (*mongo.InsertManyResult, error)
}

// Result reports what a seeding run did.
type Result struct {
	Skipped       bool
	ExistingCount int64
	Inserted      int
	Total         int64
}

// Run inserts the canned services unless the collection already holds at
// least that many records.
func Run(ctx context.Context, coll ServicesCollection, logger *zap.Logger) (*Result, error) {
	services := Services()

	existing, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to count services: %w", err)
	}

	if existing >= int64(len(services)) {
		logger.Info("Database already has services, skipping seed",
			zap.Int64("existingCount", existing))
		return &Result{Skipped: true, ExistingCount: existing, Total: existing}, nil
	}

	now := time.Now()
	docs := make([]interface{}, 0, len(services))
	for i := range services {
		services[i].CreatedAt = now
		services[i].UpdatedAt = now
		docs = append(docs, services[i])
	}

	result, err := coll.InsertMany(ctx, docs)
	if err != nil {
		return nil, fmt.Errorf("failed to insert services: %w", err)
	}

	total, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to count services after seeding: %w", err)
	}

	logger.Info("Seeded services",
		zap.Int("inserted", len(result.InsertedIDs)),
		zap.Int64("total", total))

	return &Result{
		ExistingCount: existing,
		Inserted:      len(result.InsertedIDs),
		Total:         total,
	}, nil
}

// Services returns the canned catalog. Reviews start empty; timestamps are
// stamped at insert time.
func Services() []models.Service {
	return []models.Service{
		{
			ServiceName:   "Professional Electrical Repair",
			Category:      "Electrician",
			Price:         75,
			Description:   "Expert electrical repair services for residential and commercial properties. We handle everything from circuit breaker repairs to complete rewiring projects. Licensed and insured with 10+ years of experience.",
			ImageURL:      "https://images.unsplash.com/photo-1621905251189-08b45d6a269e?w=800",
			ProviderName:  "John Smith",
			ProviderEmail: "john.smith@example.com",
			ProviderImage: "https://i.pravatar.cc/150?img=12",
			Reviews:       []models.Review{},
		},
		{
			ServiceName:   "Emergency Plumbing Services",
			Category:      "Plumber",
			Price:         90,
			Description:   "24/7 emergency plumbing services. We fix leaks, unclog drains, repair pipes, and handle all your plumbing needs. Fast response time and quality workmanship guaranteed.",
			ImageURL:      "https://images.unsplash.com/photo-1607472586893-edb57bdc0e39?w=800",
			ProviderName:  "Mike Johnson",
			ProviderEmail: "mike.johnson@example.com",
			ProviderImage: "https://i.pravatar.cc/150?img=13",
			Reviews:       []models.Review{},
		},
		{
			ServiceName:   "Deep Home Cleaning",
			Category:      "Cleaner",
			Price:         120,
			Description:   "Professional deep cleaning service for your home. We use eco-friendly products and ensure every corner sparkles. Includes kitchen, bathrooms, bedrooms, and living areas.",
			ImageURL:      "https://images.unsplash.com/photo-1581578731548-c64695cc6952?w=800",
			ProviderName:  "Sarah Williams",
			ProviderEmail: "sarah.williams@example.com",
			ProviderImage: "https://i.pravatar.cc/150?img=5",
			Reviews:       []models.Review{},
		},
		{
			ServiceName:   "Custom Carpentry Work",
			Category:      "Carpenter",
			Price:         85,
			Description:   "Skilled carpenter offering custom furniture, cabinet installation, deck building, and repair services. Quality craftsmanship with attention to detail.",
			ImageURL:      "https://images.unsplash.com/photo-1504148455328-c376907d081c?w=800",
			ProviderName:  "David Brown",
			ProviderEmail: "david.brown@example.com",
			ProviderImage: "https://i.pravatar.cc/150?img=14",
			Reviews:       []models.Review{},
		},
		{
			ServiceName:   "Interior & Exterior Painting",
			Category:      "Painter",
			Price:         95,
			Description:   "Professional painting services for both interior and exterior projects. We prep, prime, and paint with precision. Free color consultation included.",
			ImageURL:      "https://images.unsplash.com/photo-1589939705384-5185137a7f0f?w=800",
			ProviderName:  "Emily Davis",
			ProviderEmail: "emily.davis@example.com",
			ProviderImage: "https://i.pravatar.cc/150?img=1",
			Reviews:       []models.Review{},
		},
		{
			ServiceName:   "HVAC Installation & Repair",
			Category:      "HVAC",
			Price:         110,
			Description:   "Complete HVAC services including installation, maintenance, and repair. Keep your home comfortable year-round with our expert technicians.",
			ImageURL:      "https://images.unsplash.com/photo-1581094794329-c8112a89af12?w=800",
			ProviderName:  "Robert Wilson",
			ProviderEmail: "robert.wilson@example.com",
			ProviderImage: "https://i.pravatar.cc/150?img=15",
			Reviews:       []models.Review{},
		},
	}
}
