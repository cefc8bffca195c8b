// Command seed bulk-loads the fixed sample dataset into the products
// collection, clearing prior contents first. One-shot operational tool,
// not part of the request-serving service.
package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"warung/internal/config"
	"warung/internal/database"
	"warung/internal/models"
	"warung/internal/repositories"
	"warung/pkg/logger"
)

func sampleProducts(now time.Time) []models.Product {
	intPtr := func(n int) *int { return &n }
	floatPtr := func(f float64) *float64 { return &f }

	requests := []models.CreateProductRequest{
		{ProductID: "P001", Name: "Amul Full Cream Milk 1L", MRPPrice: floatPtr(66), Stock: intPtr(40), Category: models.CategoryDairy, ExpiryDate: now.AddDate(0, 0, 5).Format("2006-01-02")},
		{ProductID: "P002", Name: "Fresh Bananas 1kg", MRPPrice: floatPtr(55), Stock: intPtr(25), Category: models.CategoryFruits, Discounts: "10% off on 2kg"},
		{ProductID: "P003", Name: "Tomatoes 500g", MRPPrice: floatPtr(30), Stock: intPtr(60), Category: models.CategoryVegetables},
		{ProductID: "P004", Name: "Basmati Rice 5kg", MRPPrice: floatPtr(480), Stock: intPtr(15), Category: models.CategoryGrocery},
		{ProductID: "P005", Name: "Whole Wheat Bread", MRPPrice: floatPtr(45), Stock: intPtr(20), Category: models.CategoryBakery, ExpiryDate: now.AddDate(0, 0, 3).Format("2006-01-02")},
		{ProductID: "P006", Name: "Orange Juice 1L", MRPPrice: floatPtr(120), Stock: intPtr(18), Category: models.CategoryBeverages, ExpiryDate: now.AddDate(0, 1, 0).Format("2006-01-02")},
		{ProductID: "P007", Name: "Salted Potato Chips 150g", MRPPrice: floatPtr(50), Stock: intPtr(0), Category: models.CategorySnacks, Discounts: "Buy 2 get 1 free"},
		{ProductID: "P008", Name: "Paneer 200g", MRPPrice: floatPtr(90), Stock: intPtr(12), Category: models.CategoryDairy, ExpiryDate: now.AddDate(0, 0, 7).Format("2006-01-02")},
		{ProductID: "P009", Name: "Green Apples 1kg", MRPPrice: floatPtr(180), Stock: intPtr(30), Category: models.CategoryFruits},
		{ProductID: "P010", Name: "Dish Soap Bar", MRPPrice: floatPtr(25), Stock: intPtr(100), Category: models.CategoryOther},
	}

	products := make([]models.Product, 0, len(requests))
	for _, r := range requests {
		products = append(products, r.ToProduct(now))
	}
	return products
}

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.IsDevelopment())
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx := context.Background()

	client, err := database.Connect(ctx, cfg)
	if err != nil {
		log.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer client.Disconnect(context.Background())

	collection := client.Database(cfg.MongoDatabase).Collection("products")
	if err := collection.Drop(ctx); err != nil {
		log.Fatal("failed to clear products collection", zap.Error(err))
	}
	log.Info("cleared products collection")

	repo := repositories.NewMongoProductRepository(client.Database(cfg.MongoDatabase), cfg.OperationTimeout)
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Fatal("failed to create product indexes", zap.Error(err))
	}

	for _, product := range sampleProducts(time.Now()) {
		if err := repo.Insert(ctx, &product); err != nil {
			log.Error("failed to seed product", zap.String("productId", product.ProductID), zap.Error(err))
			continue
		}
		log.Info("seeded product", zap.String("productId", product.ProductID), zap.String("name", product.Name))
	}
	log.Info("seeding complete")
}
