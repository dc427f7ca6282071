// Package mongo implements ports.TodoStore on a MongoDB collection. Documents
// keep the upstream todos layout, where completion is stored as "status".
package mongo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/domain"
	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/domain/todo"
	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/platform/config"
	"github.com/UMM-CSci-3601-F24/lab-4-mongodb-john-and-keenan/internal/ports"
)

var _ ports.TodoStore = (*Store)(nil)

const defaultTimeout = 5 * time.Second

// MsgInvalidObjectID is the field message for an ID that is not 24 hex digits.
const MsgInvalidObjectID = "must be a 24-character hex ObjectID"

// document is the stored shape of a todo.
type document struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Title    string             `bson:"title"`
	Owner    string             `bson:"owner"`
	Category string             `bson:"category"`
	Body     string             `bson:"body"`
	Status   bool               `bson:"status"`
}

func toDocument(t *todo.Todo) document {
	return document{
		Title:    t.Title,
		Owner:    t.Owner,
		Category: t.Category,
		Body:     t.Body,
		Status:   t.Completed,
	}
}

// toDomain does not validate. Documents written by other clients of the
// collection may lack a title and are still listed.
func (d *document) toDomain() todo.Todo {
	return todo.Todo{
		ID:        d.ID.Hex(),
		Title:     d.Title,
		Owner:     d.Owner,
		Category:  d.Category,
		Body:      d.Body,
		Completed: d.Status,
	}
}

// Store is a MongoDB-backed todo store.
type Store struct {
	client  *mongo.Client
	coll    *mongo.Collection
	timeout time.Duration
	logger  *slog.Logger
}

// Open connects to cfg.URI and pings the primary.
func Open(ctx context.Context, cfg config.MongoConfig, logger *slog.Logger) (*Store, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connecting to mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, fmt.Errorf("pinging mongo: %w", err)
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Store{
		client:  client,
		coll:    client.Database(cfg.Database).Collection(cfg.Collection),
		timeout: timeout,
		logger:  logger,
	}, nil
}

// Close disconnects the client.
func (s *Store) Close(ctx context.Context) error {
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnecting mongo: %w", err)
	}
	return nil
}

// ListTodos returns every document in _id order, which is insertion order
// for driver-generated ObjectIDs.
func (s *Store) ListTodos(ctx context.Context) ([]todo.Todo, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cur, err := s.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("finding todos: %w: %w", domain.ErrUnavailable, err)
	}

	var docs []document
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding todos: %w", err)
	}

	todos := make([]todo.Todo, len(docs))
	for i := range docs {
		todos[i] = docs[i].toDomain()
	}
	return todos, nil
}

// GetTodo returns the todo with the given hex ObjectID. An ID that is not a
// valid ObjectID is rejected with a *domain.ValidationError on "id" before
// the database is asked.
func (s *Store) GetTodo(ctx context.Context, id string) (*todo.Todo, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		var verr domain.ValidationError
		verr.Add("id", MsgInvalidObjectID)
		return nil, fmt.Errorf("todo %q: %w", id, verr.Err())
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var doc document
	err = s.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("todo %q: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("finding todo %q: %w: %w", id, domain.ErrUnavailable, err)
	}

	t := doc.toDomain()
	return &t, nil
}

// CreateTodo inserts t and returns it with its new ObjectID.
func (s *Store) CreateTodo(ctx context.Context, t *todo.Todo) (*todo.Todo, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	doc := toDocument(t)
	doc.ID = primitive.NewObjectID()

	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		s.logger.ErrorContext(ctx, "failed to insert todo",
			slog.String("operation", "mongo.CreateTodo"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("inserting todo: %w: %w", domain.ErrUnavailable, err)
	}

	created := doc.toDomain()
	return &created, nil
}

// Name identifies the store in readiness results.
func (s *Store) Name() string {
	return "mongo"
}

// HealthCheck pings the primary.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongo: %w", err)
	}
	return nil
}
