package mongotools

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nikmy/rangepicker/pkg/errors"
)

func FilterByID(id string) bson.M {
	return bson.M{"_id": id}
}

// Field matches documents whose field equals *value, or any document when value is nil.
func Field[T any](field string, value *T) bson.M {
	if value == nil {
		return bson.M{}
	}
	return bson.M{field: *value}
}

// FilterFunc drains c, keeping items accepted by filterFunc (all when nil).
func FilterFunc[T any](ctx context.Context, c *mongo.Cursor, filterFunc func(T) bool) ([]T, error) {
	defer c.Close(ctx)

	filtered := make([]T, 0)
	for c.Next(ctx) {
		var item T
		err := c.Decode(&item)
		if err != nil {
			return nil, errors.WrapFail(err, "decode item")
		}

		if filterFunc == nil || filterFunc(item) {
			filtered = append(filtered, item)
		}
	}

	return filtered, c.Err()
}
