package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tareqferdous/foodhub-api/internal/core/domain"
	"github.com/tareqferdous/foodhub-api/internal/core/ports"
)

// OrderEventRepository implements ports.OrderEventRepository using MongoDB.
type OrderEventRepository struct {
	db *mongo.Database
}

// NewOrderEventRepository creates a new OrderEventRepository.
func NewOrderEventRepository(db *mongo.Database) ports.OrderEventRepository {
	return &OrderEventRepository{db: db}
}

// UpdateOrderStatus atomically sets the order status and appends a history entry.
func (r *OrderEventRepository) UpdateOrderStatus(
	ctx context.Context,
	orderID string,
	status domain.OrderStatus,
	ts time.Time,
	source, notes string,
) error {
	historyEntry := bson.M{
		"status":    string(status),
		"timestamp": ts.UTC(),
		"source":    source,
	}
	if notes != "" {
		historyEntry["notes"] = notes
	}

	filter := bson.M{"_id": orderID}
	update := bson.M{
		"$set":  bson.M{"status": string(status)},
		"$push": bson.M{"status_history": historyEntry},
	}

	_, err := r.db.Collection(collectionOrders).UpdateOne(ctx, filter, update)
	return err
}

// InsertEvent persists an event to the order_events audit collection.
func (r *OrderEventRepository) InsertEvent(ctx context.Context, event *domain.OrderEvent) error {
	doc := bson.M{
		"order_id":     event.OrderID,
		"status":       string(event.Status),
		"timestamp":    event.Timestamp.UTC(),
		"source":       event.Source,
		"processed_at": time.Now().UTC(),
	}
	if event.Notes != "" {
		doc["notes"] = event.Notes
	}

	_, err := r.db.Collection("order_events").InsertOne(ctx, doc)
	return err
}
