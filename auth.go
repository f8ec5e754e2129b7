package showcase

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for any failed sign-in, regardless of
// whether the account exists, so responses don't leak which emails are valid.
var ErrInvalidCredentials = errors.New("invalid email or password")

// User is an account in the users collection. Authorization is decided by
// comparing the signed-in email against the configured admin identity, never
// by anything client-visible.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"passwordHash"`
}

// AuthVerifier checks an email/password sign-in and returns the matching
// user. Failed sign-ins return ErrInvalidCredentials.
type AuthVerifier interface {
	Verify(ctx context.Context, email, password string) (User, error)
}

// AuthService is the MongoDB-backed AuthVerifier over the users collection.
type AuthService struct {
	users *mongo.Collection
}

// NewAuthService creates an AuthService over the given database.
func NewAuthService(db *mongo.Database) *AuthService {
	return &AuthService{users: db.Collection("users")}
}

// EnsureIndexes creates the unique email index on the users collection.
func (s *AuthService) EnsureIndexes(ctx context.Context) error {
	_, err := s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create users index: %w", err)
	}
	return nil
}

// EnsureAdmin seeds the admin account on first start. An existing account
// is left untouched so a changed env password never silently rotates
// credentials.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password string) error {
	err := s.users.FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		return nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("look up admin user: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	if _, err := s.users.InsertOne(ctx, User{Email: email, PasswordHash: string(hash)}); err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}
	return nil
}

// Verify checks an email/password pair and returns the matching user.
// Every failure path returns ErrInvalidCredentials.
func (s *AuthService) Verify(ctx context.Context, email, password string) (User, error) {
	var user User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// Burn a compare anyway so existing and missing accounts take
		// comparable time.
		_ = bcrypt.CompareHashAndPassword([]byte("$2a$10$0000000000000000000000000000000000000000000000000000"), []byte(password))
		return User{}, ErrInvalidCredentials
	}
	if err != nil {
		return User{}, fmt.Errorf("look up user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return User{}, ErrInvalidCredentials
	}
	return user, nil
}

// IsAuthorized reports whether the signed-in identity is the single
// authorized admin. An empty identity (signed-out) is never authorized.
func IsAuthorized(identity, adminEmail string) bool {
	return identity != "" && identity == adminEmail
}
