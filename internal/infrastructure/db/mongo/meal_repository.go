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
	"github.com/tareqferdous/foodhub-api/internal/core/ports"
)

const collectionMeals = "meals"

type MealRepository struct {
	col *mongo.Collection
}

func NewMealRepository(db *mongo.Database) *MealRepository {
	return &MealRepository{col: db.Collection(collectionMeals)}
}

type mongoMeal struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Title        string             `bson:"title"`
	Description  string             `bson:"description,omitempty"`
	Price        float64            `bson:"price"`
	Image        string             `bson:"image,omitempty"`
	DietaryType  string             `bson:"dietary_type,omitempty"`
	IsAvailable  bool               `bson:"is_available"`
	ProviderID   string             `bson:"provider_id"`
	ProviderName string             `bson:"provider_name,omitempty"`
	CategoryID   string             `bson:"category_id,omitempty"`
	CategoryName string             `bson:"category_name,omitempty"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (r *MealRepository) Create(ctx context.Context, m *domain.Meal) (*domain.Meal, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, toMongoMeal(m))
	if err != nil {
		return nil, fmt.Errorf("insert meal: %w", err)
	}

	created := *m
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MealRepository) FindByID(ctx context.Context, id string) (*domain.Meal, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMealNotFound
	}

	var mm mongoMeal
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&mm); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMealNotFound
		}
		return nil, fmt.Errorf("find meal: %w", err)
	}
	return toDomainMeal(mm), nil
}

func (r *MealRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Meal, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}

	cursor, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, fmt.Errorf("find meals: %w", err)
	}
	defer cursor.Close(ctx)

	var meals []*domain.Meal
	for cursor.Next(ctx) {
		var mm mongoMeal
		if err := cursor.Decode(&mm); err != nil {
			return nil, fmt.Errorf("decode meal: %w", err)
		}
		meals = append(meals, toDomainMeal(mm))
	}
	return meals, cursor.Err()
}

// List returns a page of meals matching filter and the total count.
func (r *MealRepository) List(ctx context.Context, filter ports.ListMealsFilter) ([]*domain.Meal, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.ProviderID != "" {
		query["provider_id"] = filter.ProviderID
	}
	if filter.CategoryID != "" {
		query["category_id"] = filter.CategoryID
	}
	if filter.DietaryType != "" {
		query["dietary_type"] = filter.DietaryType
	}
	if filter.AvailableOnly {
		query["is_available"] = true
	}
	if filter.Search != "" {
		query["title"] = bson.M{"$regex": filter.Search, "$options": "i"}
	}
	price := bson.M{}
	if filter.MinPrice > 0 {
		price["$gte"] = filter.MinPrice
	}
	if filter.MaxPrice > 0 {
		price["$lte"] = filter.MaxPrice
	}
	if len(price) > 0 {
		query["price"] = price
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count meals: %w", err)
	}

	cursor, err := r.col.Find(ctx, query, listOptions(filter.Page, filter.Limit, bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, 0, fmt.Errorf("list meals: %w", err)
	}
	defer cursor.Close(ctx)

	var meals []*domain.Meal
	for cursor.Next(ctx) {
		var mm mongoMeal
		if err := cursor.Decode(&mm); err != nil {
			return nil, 0, fmt.Errorf("decode meal: %w", err)
		}
		meals = append(meals, toDomainMeal(mm))
	}
	return meals, total, cursor.Err()
}

// Update overwrites the mutable fields of a meal. A non-empty providerID adds
// an ownership filter, so a provider can only write its own menu.
func (r *MealRepository) Update(ctx context.Context, m *domain.Meal, providerID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(m.ID)
	if err != nil {
		return domain.ErrMealNotFound
	}

	query := bson.M{"_id": oid}
	if providerID != "" {
		query["provider_id"] = providerID
	}

	res, err := r.col.UpdateOne(ctx, query, bson.M{"$set": bson.M{
		"title":         m.Title,
		"description":   m.Description,
		"price":         m.Price,
		"image":         m.Image,
		"dietary_type":  string(m.DietaryType),
		"is_available":  m.IsAvailable,
		"category_id":   m.CategoryID,
		"category_name": m.CategoryName,
		"updated_at":    m.UpdatedAt,
	}})
	if err != nil {
		return fmt.Errorf("update meal: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrMealNotFound
	}
	return nil
}

func (r *MealRepository) Delete(ctx context.Context, id, providerID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrMealNotFound
	}

	query := bson.M{"_id": oid}
	if providerID != "" {
		query["provider_id"] = providerID
	}

	res, err := r.col.DeleteOne(ctx, query)
	if err != nil {
		return fmt.Errorf("delete meal: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrMealNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the meals collection.
func (r *MealRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "provider_id", Value: 1}}},
		{Keys: bson.D{{Key: "category_id", Value: 1}}},
		{Keys: bson.D{{Key: "dietary_type", Value: 1}}},
		{Keys: bson.D{{Key: "price", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func toMongoMeal(m *domain.Meal) mongoMeal {
	return mongoMeal{
		Title:        m.Title,
		Description:  m.Description,
		Price:        m.Price,
		Image:        m.Image,
		DietaryType:  string(m.DietaryType),
		IsAvailable:  m.IsAvailable,
		ProviderID:   m.ProviderID,
		ProviderName: m.ProviderName,
		CategoryID:   m.CategoryID,
		CategoryName: m.CategoryName,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toDomainMeal(mm mongoMeal) *domain.Meal {
	return &domain.Meal{
		ID:           mm.ID.Hex(),
		Title:        mm.Title,
		Description:  mm.Description,
		Price:        mm.Price,
		Image:        mm.Image,
		DietaryType:  domain.DietaryType(mm.DietaryType),
		IsAvailable:  mm.IsAvailable,
		ProviderID:   mm.ProviderID,
		ProviderName: mm.ProviderName,
		CategoryID:   mm.CategoryID,
		CategoryName: mm.CategoryName,
		CreatedAt:    mm.CreatedAt,
		UpdatedAt:    mm.UpdatedAt,
	}
}
