package mongo

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// listOptions builds the skip/limit/sort options shared by the list queries.
// page is 1-based.
func listOptions(page, limit int, sort bson.D) *options.FindOptions {
	if page < 1 {
		page = 1
	}
	opts := options.Find().SetSort(sort)
	if limit > 0 {
		opts = opts.SetSkip(int64((page - 1) * limit)).SetLimit(int64(limit))
	}
	return opts
}

func uniqueIndex() *options.IndexOptions {
	return options.Index().SetUnique(true)
}
