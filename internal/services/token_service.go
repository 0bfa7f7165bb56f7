package services

import (
	"errors"
	"time"

	"github.com/arnavk03/staffdir/internal/apperror"
	"github.com/golang-jwt/jwt/v5"
)

const tokenTTL = time.Hour

// Identity is the decoded result of a verified token.
type Identity struct {
	UserID   string
	Username string
}

// TokenService issues and verifies HS256 bearer tokens. The signing secret is
// loaded once at startup; expiration is the only invalidation mechanism.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue generates a signed token for the given user, expiring in one hour.
func (s *TokenService) Issue(userID, username string) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  userID,
		"username": username,
		"exp":      time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses and validates a token string and returns the identity it
// binds. Expired tokens are reported distinctly from malformed or badly
// signed ones.
func (s *TokenService) Verify(tokenString string) (Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{}, apperror.Wrap(apperror.ExpiredToken, "Token expired", err)
		}
		return Identity{}, apperror.Wrap(apperror.InvalidToken, "Invalid token", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Identity{}, apperror.New(apperror.InvalidToken, "Invalid token claims")
	}

	userID, uidOK := claims["user_id"].(string)
	username, nameOK := claims["username"].(string)
	if !uidOK || !nameOK {
		return Identity{}, apperror.New(apperror.InvalidToken, "Invalid token payload")
	}

	return Identity{UserID: userID, Username: username}, nil
}
