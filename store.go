package showcase

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when a requested article does not exist.
var ErrNotFound = errors.New("article not found")

// ArticleStore provides CRUD operations over the two article collections.
// Every list is ordered by date descending. Implementations must treat
// unknown collection names and malformed ids as errors, not panics.
type ArticleStore interface {
	List(ctx context.Context, coll Collection) ([]Article, error)
	Latest(ctx context.Context, coll Collection, n int) ([]Article, error)
	GetByID(ctx context.Context, coll Collection, id string) (Article, error)
	Create(ctx context.Context, coll Collection, a Article) (string, error)
	Update(ctx context.Context, coll Collection, id string, a Article) error
	Delete(ctx context.Context, coll Collection, id string) error
}

// Store is the MongoDB-backed ArticleStore.
type Store struct {
	db *mongo.Database
}

// Connect dials MongoDB, verifies the connection, and returns a Store over
// the named database.
func Connect(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return &Store{db: client.Database(dbName)}, nil
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.db.Client().Disconnect(ctx)
}

// Database exposes the underlying database for collaborators that manage
// their own collections (the auth service).
func (s *Store) Database() *mongo.Database {
	return s.db
}

// EnsureIndexes creates the date sort index on both article collections.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	for _, coll := range []Collection{CollectionBlog, CollectionProjects} {
		_, err := s.db.Collection(string(coll)).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: "date", Value: -1}},
		})
		if err != nil {
			return fmt.Errorf("create index on %s: %w", coll, err)
		}
	}
	return nil
}

// articleDoc pairs an Article with its store-assigned id for (de)serialization.
type articleDoc struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Article `bson:",inline"`
}

func (s *Store) collection(coll Collection) (*mongo.Collection, error) {
	if !coll.Valid() {
		return nil, fmt.Errorf("unknown collection %q", coll)
	}
	return s.db.Collection(string(coll)), nil
}

// List returns every article in the collection, newest first.
func (s *Store) List(ctx context.Context, coll Collection) ([]Article, error) {
	return s.find(ctx, coll, 0)
}

// Latest returns up to n newest articles in the collection.
func (s *Store) Latest(ctx context.Context, coll Collection, n int) ([]Article, error) {
	if n <= 0 {
		return nil, nil
	}
	return s.find(ctx, coll, int64(n))
}

func (s *Store) find(ctx context.Context, coll Collection, limit int64) ([]Article, error) {
	c, err := s.collection(coll)
	if err != nil {
		return nil, err
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", coll, err)
	}
	defer cursor.Close(ctx)

	var docs []articleDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", coll, err)
	}
	articles := make([]Article, 0, len(docs))
	for _, d := range docs {
		a := d.Article
		a.ID = d.ID.Hex()
		articles = append(articles, a)
	}
	return articles, nil
}

// GetByID returns a single article, or ErrNotFound.
func (s *Store) GetByID(ctx context.Context, coll Collection, id string) (Article, error) {
	c, err := s.collection(coll)
	if err != nil {
		return Article{}, err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return Article{}, fmt.Errorf("invalid article id %q: %w", id, ErrNotFound)
	}
	var doc articleDoc
	err = c.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Article{}, ErrNotFound
	}
	if err != nil {
		return Article{}, fmt.Errorf("get %s/%s: %w", coll, id, err)
	}
	a := doc.Article
	a.ID = doc.ID.Hex()
	return a, nil
}

// Create inserts a new article and returns its store-assigned id. Repeated
// calls with identical content create independent records.
func (s *Store) Create(ctx context.Context, coll Collection, a Article) (string, error) {
	c, err := s.collection(coll)
	if err != nil {
		return "", err
	}
	res, err := c.InsertOne(ctx, articleDoc{Article: a})
	if err != nil {
		return "", fmt.Errorf("create in %s: %w", coll, err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("create in %s: unexpected id type %T", coll, res.InsertedID)
	}
	return oid.Hex(), nil
}

// Update replaces every field of the article identified by id. There are no
// partial-patch semantics; absent form fields overwrite with their zero value.
func (s *Store) Update(ctx context.Context, coll Collection, id string, a Article) error {
	c, err := s.collection(coll)
	if err != nil {
		return err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid article id %q: %w", id, ErrNotFound)
	}
	res, err := c.ReplaceOne(ctx, bson.M{"_id": oid}, articleDoc{ID: oid, Article: a})
	if err != nil {
		return fmt.Errorf("update %s/%s: %w", coll, id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete permanently removes an article. There is no soft delete and no undo.
func (s *Store) Delete(ctx context.Context, coll Collection, id string) error {
	c, err := s.collection(coll)
	if err != nil {
		return err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid article id %q: %w", id, ErrNotFound)
	}
	res, err := c.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", coll, id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
