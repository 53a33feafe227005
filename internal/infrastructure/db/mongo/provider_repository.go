package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tareqferdous/foodhub-api/internal/core/domain"
)

const collectionProviders = "providers"

type ProviderRepository struct {
	col *mongo.Collection
}

func NewProviderRepository(db *mongo.Database) *ProviderRepository {
	return &ProviderRepository{col: db.Collection(collectionProviders)}
}

type mongoProvider struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	UserID         string             `bson:"user_id"`
	RestaurantName string             `bson:"restaurant_name"`
	Cuisine        string             `bson:"cuisine,omitempty"`
	Address        string             `bson:"address,omitempty"`
	Phone          string             `bson:"phone,omitempty"`
	Image          string             `bson:"image,omitempty"`
	CreatedAt      time.Time          `bson:"created_at"`
}

func (r *ProviderRepository) Create(ctx context.Context, p *domain.Provider) (*domain.Provider, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, mongoProvider{
		UserID:         p.UserID,
		RestaurantName: p.RestaurantName,
		Cuisine:        p.Cuisine,
		Address:        p.Address,
		Phone:          p.Phone,
		Image:          p.Image,
		CreatedAt:      p.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("insert provider: %w", err)
	}

	created := *p
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *ProviderRepository) FindByID(ctx context.Context, id string) (*domain.Provider, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProviderNotFound
	}

	var mp mongoProvider
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProviderNotFound
		}
		return nil, fmt.Errorf("find provider: %w", err)
	}
	return toDomainProvider(mp), nil
}

func (r *ProviderRepository) List(ctx context.Context, page, limit int) ([]*domain.Provider, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count providers: %w", err)
	}

	cursor, err := r.col.Find(ctx, bson.M{}, listOptions(page, limit, bson.D{{Key: "restaurant_name", Value: 1}}))
	if err != nil {
		return nil, 0, fmt.Errorf("list providers: %w", err)
	}
	defer cursor.Close(ctx)

	var providers []*domain.Provider
	for cursor.Next(ctx) {
		var mp mongoProvider
		if err := cursor.Decode(&mp); err != nil {
			return nil, 0, fmt.Errorf("decode provider: %w", err)
		}
		providers = append(providers, toDomainProvider(mp))
	}
	return providers, total, cursor.Err()
}

func toDomainProvider(mp mongoProvider) *domain.Provider {
	return &domain.Provider{
		ID:             mp.ID.Hex(),
		UserID:         mp.UserID,
		RestaurantName: mp.RestaurantName,
		Cuisine:        mp.Cuisine,
		Address:        mp.Address,
		Phone:          mp.Phone,
		Image:          mp.Image,
		CreatedAt:      mp.CreatedAt,
	}
}
