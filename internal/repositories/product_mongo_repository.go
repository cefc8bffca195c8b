package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"warung/internal/models"
)

// MongoProductRepository is a MongoDB implementation of ProductRepository.
// Every operation runs under a fixed timeout so a slow store fails the
// request instead of hanging.
type MongoProductRepository struct {
	collection *mongo.Collection
	opTimeout  time.Duration
}

// NewMongoProductRepository creates a repository over the products
// collection of db.
func NewMongoProductRepository(db *mongo.Database, opTimeout time.Duration) *MongoProductRepository {
	return &MongoProductRepository{
		collection: db.Collection("products"),
		opTimeout:  opTimeout,
	}
}

// EnsureIndexes creates the unique index on productId and the text index
// over name and category. Safe to call repeatedly.
func (r *MongoProductRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "productId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "name", Value: "text"}, {Key: "category", Value: "text"}},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create product indexes: %w", err)
	}
	return nil
}

func (r *MongoProductRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.opTimeout)
}

// FindByID retrieves a single product by its productId.
func (r *MongoProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var product models.Product
	err := r.collection.FindOne(ctx, bson.M{"productId": id}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product %s: %w", id, err)
	}
	return &product, nil
}

// FindMany retrieves one page of products plus the total match count.
// The count and the page fetch run concurrently as independent reads.
func (r *MongoProductRepository) FindMany(ctx context.Context, opts ListOptions) ([]models.Product, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	filter := buildMongoFilter(opts.Filter)

	countCh := make(chan struct {
		n   int64
		err error
	}, 1)
	go func() {
		n, err := r.collection.CountDocuments(ctx, filter)
		countCh <- struct {
			n   int64
			err error
		}{n, err}
	}()

	findOpts := options.Find().SetSkip(opts.Skip).SetLimit(int64(opts.Limit))
	if opts.Filter.Search != "" {
		// Relevance-ranked when searching, most recent first otherwise.
		findOpts.SetProjection(bson.M{"score": bson.M{"$meta": "textScore"}})
		findOpts.SetSort(bson.M{"score": bson.M{"$meta": "textScore"}})
	} else {
		findOpts.SetSort(bson.D{{Key: "createdAt", Value: -1}})
	}

	cursor, err := r.collection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, 0, fmt.Errorf("failed to decode products: %w", err)
	}

	count := <-countCh
	if count.err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", count.err)
	}
	return products, count.n, nil
}

// Insert stores a new product. Uniqueness of productId is enforced by the
// unique index, which makes concurrent duplicate inserts race-safe.
func (r *MongoProductRepository) Insert(ctx context.Context, product *models.Product) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if _, err := r.collection.InsertOne(ctx, product); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateID
		}
		return fmt.Errorf("failed to insert product %s: %w", product.ProductID, err)
	}
	return nil
}

// UpdateByID applies the patch atomically and returns the updated document.
func (r *MongoProductRepository) UpdateByID(ctx context.Context, id string, patch models.UpdateProductRequest) (*models.Product, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	set := buildSetDocument(patch)
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Product
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"productId": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update product %s: %w", id, err)
	}
	return &updated, nil
}

// DeleteByID removes the product atomically and returns the deleted
// document for confirmation.
func (r *MongoProductRepository) DeleteByID(ctx context.Context, id string) (*models.Product, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var deleted models.Product
	err := r.collection.FindOneAndDelete(ctx, bson.M{"productId": id}).Decode(&deleted)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	return &deleted, nil
}

// buildMongoFilter translates the store-agnostic filter into a bson query.
func buildMongoFilter(f ProductFilter) bson.M {
	filter := bson.M{}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.InStockOnly {
		filter["stock"] = bson.M{"$gt": 0}
	}
	if f.Search != "" {
		filter["$text"] = bson.M{"$search": f.Search}
	}
	return filter
}

// buildSetDocument turns the non-nil patch fields into a $set document.
// productId is deliberately excluded: the stored identifier is immutable.
func buildSetDocument(patch models.UpdateProductRequest) bson.M {
	set := bson.M{"updatedAt": time.Now()}
	if patch.Name != nil {
		// Stored trimmed, matching what the merged candidate validated.
		set["name"] = strings.TrimSpace(*patch.Name)
	}
	if patch.MRPPrice != nil {
		set["mrpPrice"] = *patch.MRPPrice
	}
	if patch.Image != nil {
		set["image"] = *patch.Image
	}
	if patch.Stock != nil {
		set["stock"] = *patch.Stock
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.Discounts != nil {
		set["discounts"] = *patch.Discounts
	}
	if patch.ExpiryDate != nil {
		set["expiryDate"] = *patch.ExpiryDate
	}
	return set
}
