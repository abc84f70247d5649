package dataset

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/toolradar/pkg/errors"
	"github.com/matzehuels/toolradar/pkg/radar"
)

// StoreConfig configures the shared dataset store.
type StoreConfig struct {
	// URI is the MongoDB connection string (e.g., "mongodb://localhost:27017").
	URI string

	// Database is the database name. Defaults to "toolradar".
	Database string

	// Collection is the collection name. Defaults to "datasets".
	Collection string
}

// Store is a MongoDB-backed dataset store. Teams publish named datasets and
// fetch them elsewhere; only the raw tool records travel, never computed
// positions (placement is always recomputed).
type Store struct {
	client *mongo.Client
	col    *mongo.Collection
}

// storedDataset is the persisted document shape. The dataset name doubles
// as the document ID so publishing is a natural upsert.
type storedDataset struct {
	Name      string       `bson:"_id"`
	Title     string       `bson:"title"`
	Tools     []radar.Tool `bson:"tools"`
	UpdatedAt time.Time    `bson:"updated_at"`
}

// DatasetInfo summarizes a stored dataset for listings.
type DatasetInfo struct {
	Name      string    `bson:"_id" json:"name"`
	Title     string    `bson:"title" json:"title"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// NewStore connects to MongoDB and verifies the connection with a ping.
func NewStore(ctx context.Context, cfg StoreConfig) (*Store, error) {
	if cfg.URI == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "store URI cannot be empty")
	}
	if cfg.Database == "" {
		cfg.Database = "toolradar"
	}
	if cfg.Collection == "" {
		cfg.Collection = "datasets"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "connect to %s", cfg.URI)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeStore, err, "ping %s", cfg.URI)
	}

	return &Store{
		client: client,
		col:    client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// Close disconnects from MongoDB.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Publish stores the dataset under name, replacing any previous version.
// The dataset is validated before writing.
func (s *Store) Publish(ctx context.Context, name string, d *Dataset) error {
	if err := errors.ValidateDatasetName(name); err != nil {
		return err
	}
	if err := d.Validate(); err != nil {
		return err
	}

	doc := storedDataset{
		Name:      name,
		Title:     d.Title,
		Tools:     d.Tools,
		UpdatedAt: time.Now().UTC(),
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := s.col.ReplaceOne(ctx, bson.M{"_id": name}, doc, opts); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "publish dataset %q", name)
	}
	return nil
}

// FetchStored retrieves a published dataset by name.
func (s *Store) FetchStored(ctx context.Context, name string) (*Dataset, error) {
	if err := errors.ValidateDatasetName(name); err != nil {
		return nil, err
	}

	var doc storedDataset
	err := s.col.FindOne(ctx, bson.M{"_id": name}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, errors.New(errors.ErrCodeDatasetNotFound, "dataset %q not published", name)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "fetch dataset %q", name)
	}

	return &Dataset{Title: doc.Title, Tools: doc.Tools}, nil
}

// List returns summaries of all published datasets, most recently updated
// first.
func (s *Store) List(ctx context.Context) ([]DatasetInfo, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "updated_at", Value: -1}}).
		SetProjection(bson.M{"title": 1, "updated_at": 1})

	cur, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "list datasets")
	}
	defer cur.Close(ctx)

	var infos []DatasetInfo
	if err := cur.All(ctx, &infos); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "decode dataset listing")
	}
	return infos, nil
}
