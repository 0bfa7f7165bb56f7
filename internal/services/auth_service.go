package services

import (
	"context"
	"errors"
	"time"

	"github.com/arnavk03/staffdir/internal/apperror"
	"github.com/arnavk03/staffdir/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles user registration and login.
type AuthService struct {
	users  *mongo.Collection
	tokens *TokenService
}

func NewAuthService(users *mongo.Collection, tokens *TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// HashPassword hashes a password using bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// VerifyPassword compares a plain password with a hashed password.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Register creates a new user with a hashed password. The lookup is only a
// fast-path friendly error; the unique index on username is the real guard,
// so a duplicate-key error from the insert is reported the same way.
func (s *AuthService) Register(ctx context.Context, username, password string) error {
	err := s.users.FindOne(ctx, bson.M{"username": username}).Err()
	if err == nil {
		return apperror.New(apperror.Duplicate, "Username already taken")
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return apperror.Wrap(apperror.Internal, "Server error during registration", err)
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return apperror.Wrap(apperror.Internal, "Server error during registration", err)
	}

	user := models.User{
		ID:        primitive.NewObjectID(),
		Username:  username,
		Password:  hashed,
		CreatedAt: time.Now(),
	}
	if _, err := s.users.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperror.New(apperror.Duplicate, "Username already taken")
		}
		return apperror.Wrap(apperror.Internal, "Server error during registration", err)
	}
	return nil
}

// Login authenticates a user and returns a bearer token plus minimal identity
// info. Unknown username and wrong password are deliberately
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", models.User{}, apperror.New(apperror.InvalidCredentials, "Invalid username or password")
		}
		return "", models.User{}, apperror.Wrap(apperror.Internal, "Server error during login", err)
	}

	if !VerifyPassword(password, user.Password) {
		return "", models.User{}, apperror.New(apperror.InvalidCredentials, "Invalid username or password")
	}

	token, err := s.tokens.Issue(user.ID.Hex(), user.Username)
	if err != nil {
		return "", models.User{}, apperror.Wrap(apperror.Internal, "Server error during login", err)
	}

	user.Password = ""
	return token, user, nil
}
