package ranges

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nikmy/rangepicker/pkg/errors"
	"github.com/nikmy/rangepicker/pkg/mongotools"
)

func newMongoRepo(ctx context.Context, cfg MongoConfig) (*mongoRepo, error) {
	opts := options.Client().
		ApplyURI(cfg.URL).
		SetTimeout(cfg.Timeout).
		SetMinPoolSize(cfg.Pool.MinSize).
		SetMaxPoolSize(cfg.Pool.MaxSize)

	if cfg.Auth.Username != "" {
		opts.SetAuth(options.Credential{
			Username: cfg.Auth.Username,
			Password: cfg.Auth.Password,
		})
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, errors.WrapFail(err, "connect to mongo db")
	}

	coll := client.Database(cfg.Database).Collection(cfg.Collection)
	return &mongoRepo{client: client, coll: coll}, nil
}

type mongoRepo struct {
	client *mongo.Client
	coll   *mongo.Collection
}

func (m *mongoRepo) Save(ctx context.Context, r Range) (string, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}

	r.ID = primitive.NewObjectID().Hex()

	_, err := m.coll.InsertOne(ctx, r)
	if err != nil {
		return "", errors.WrapFail(err, "insert range")
	}

	return r.ID, nil
}

func (m *mongoRepo) ListByUser(ctx context.Context, user int64) ([]Range, error) {
	c, err := m.coll.Find(
		ctx,
		mongotools.Field(FieldUser, &user),
		options.Find().SetSort(bson.D{{Key: FieldStart, Value: 1}}),
	)
	if err != nil {
		return nil, errors.WrapFail(err, "find ranges")
	}

	found, err := mongotools.FilterFunc[Range](ctx, c, nil)
	return found, errors.WrapFail(err, "read ranges")
}

func (m *mongoRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := m.coll.DeleteOne(ctx, mongotools.FilterByID(id))
	if err != nil {
		return false, errors.WrapFail(err, "delete range")
	}

	return res.DeletedCount > 0, nil
}

func (m *mongoRepo) Close(ctx context.Context) error {
	if m.client == nil {
		return nil
	}
	return errors.WrapFail(m.client.Disconnect(ctx), "disconnect from mongo db")
}
