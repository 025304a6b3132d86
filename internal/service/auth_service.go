package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/abdo0vuln/e-commerce/internal/auth"
	"github.com/abdo0vuln/e-commerce/internal/domain"
	"github.com/abdo0vuln/e-commerce/internal/repository"
)

var (
	ErrEmailTaken = errors.New("user already exists")
	// ErrInvalidCredentials covers both unknown email and wrong
	// password so the response never reveals which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthService struct {
	users  repository.UserRepository
	tokens *auth.Tokens
}

func NewAuthService(users repository.UserRepository, tokens *auth.Tokens) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Name:     name,
		Email:    email,
		Password: string(hash),
		Role:     domain.RoleCustomer,
		Wishlist: []string{},
	}

	if _, err := s.users.Create(ctx, user); err != nil {
		// The unique index backstops the pre-check under concurrent registration.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		log.Printf("repo create user error: %v", err)
		return nil, err
	}

	return user, nil
}

// Login returns the user and a signed 7-day token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(auth.Identity{
		UserID: user.ID.Hex(),
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	return user, token, nil
}
