package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/bonos-estetica/voucher-service/internal/auth"
	"github.com/bonos-estetica/voucher-service/internal/domain"
	"github.com/bonos-estetica/voucher-service/internal/repository"
	apperrors "github.com/bonos-estetica/voucher-service/pkg/util"
)

// UserService manages staff accounts. New and changed passwords always get
// the salted PBKDF2 form, so legacy SHA-256 rows migrate as they rotate.
type UserService struct {
	users repository.UserRepository
}

// NewUserService constructs the service.
func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// UserInput describes user creation payload.
type UserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// UserUpdateInput describes user update payload. NewPassword is optional.
type UserUpdateInput struct {
	ID          int64
	Email       string
	Role        string
	NewPassword string
	Active      bool
}

// List returns every user.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// Get returns one user by id.
func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound(fmt.Sprintf("Usuario con ID %d no encontrado", id))
		}
		return nil, err
	}
	return user, nil
}

// Create registers a new staff account with a freshly salted hash.
func (s *UserService) Create(ctx context.Context, input UserInput) (*domain.User, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return nil, apperrors.NewValidationError("nombre, correo y contraseña son obligatorios")
	}

	role, err := domain.ParseRole(input.Role)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.ensureEmailFree(ctx, input.Email, 0); err != nil {
		return nil, err
	}

	hash, salt, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		PasswordSalt: &salt,
		Role:         role,
		Active:       true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Update mutates an existing account; a non-empty NewPassword rehashes the
// credential into the PBKDF2 form.
func (s *UserService) Update(ctx context.Context, input UserUpdateInput) error {
	user, err := s.Get(ctx, input.ID)
	if err != nil {
		return err
	}

	role, err := domain.ParseRole(input.Role)
	if err != nil {
		return apperrors.NewValidationError(err.Error())
	}

	if user.Email != input.Email {
		if err := s.ensureEmailFree(ctx, input.Email, input.ID); err != nil {
			return err
		}
	}

	user.Email = input.Email
	user.Role = role
	user.Active = input.Active

	if input.NewPassword != "" {
		hash, salt, err := auth.HashPassword(input.NewPassword)
		if err != nil {
			return err
		}
		user.PasswordHash = hash
		user.PasswordSalt = &salt
	}

	return s.users.Update(ctx, user)
}

// Deactivate soft-deletes a user.
func (s *UserService) Deactivate(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.users.SetActive(ctx, id, false)
}

// Activate reverses a soft delete.
func (s *UserService) Activate(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.users.SetActive(ctx, id, true)
}

func (s *UserService) ensureEmailFree(ctx context.Context, email string, selfID int64) error {
	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return apperrors.NewValidationError(fmt.Sprintf("Ya existe un usuario con el correo %s", email))
	}
	return nil
}
