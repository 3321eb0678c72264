// Package identity resolves session tokens to gallery identities.
package identity

import (
	"context"
	"errors"
	"fmt"

	"artgallery-app/internal/domain/authz"
	"artgallery-app/internal/domain/users"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// UserSource looks up the current user record. The resolver reads the role
// from here on every call: roles are admin-mutable, so a decision must
// never trust a role baked into an old token or a cached lookup.
type UserSource interface {
	FindByID(ctx context.Context, id uint) (*users.User, error)
}

// Resolver resolves HMAC-signed bearer tokens. Invalid or expired tokens
// resolve to Anonymous; only a failing user source is an error.
type Resolver struct {
	secret []byte
	users  UserSource
}

func NewResolver(secret []byte, source UserSource) *Resolver {
	return &Resolver{secret: secret, users: source}
}

func (r *Resolver) Resolve(ctx context.Context, tokenString string) (authz.Identity, error) {
	if tokenString == "" {
		return authz.Anonymous(), nil
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return r.secret, nil
	})
	if err != nil || !token.Valid {
		return authz.Anonymous(), nil
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return authz.Anonymous(), nil
	}
	userIDFloat, ok := claims["user_id"].(float64)
	if !ok || userIDFloat <= 0 {
		return authz.Anonymous(), nil
	}

	user, err := r.users.FindByID(ctx, uint(userIDFloat))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// account deleted since the token was issued
		return authz.Anonymous(), nil
	}
	if err != nil {
		return authz.Anonymous(), err
	}

	return authz.Identity{
		ID:   user.ID,
		Name: user.Name,
		Role: authz.Role(user.Role),
	}, nil
}

// GormUsers is the database-backed UserSource.
type GormUsers struct {
	db *gorm.DB
}

func NewGormUsers(db *gorm.DB) *GormUsers {
	return &GormUsers{db: db}
}

func (g *GormUsers) FindByID(ctx context.Context, id uint) (*users.User, error) {
	var user users.User
	if err := g.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
