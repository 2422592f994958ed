package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/bonos-estetica/voucher-service/internal/domain"
	"github.com/bonos-estetica/voucher-service/internal/repository"
	apperrors "github.com/bonos-estetica/voucher-service/pkg/util"
)

// ClientService holds the client validation sequences: uniqueness of email
// and phone is checked at this layer before each write.
type ClientService struct {
	clients repository.ClientRepository
}

// NewClientService constructs the service.
func NewClientService(clients repository.ClientRepository) *ClientService {
	return &ClientService{clients: clients}
}

// ClientInput describes client creation payload.
type ClientInput struct {
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	RegisteredAt time.Time
}

// ClientUpdateInput describes client update payload.
type ClientUpdateInput struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	RegisteredAt time.Time
	Active       bool
}

// List returns every client.
func (s *ClientService) List(ctx context.Context) ([]domain.Client, error) {
	return s.clients.List(ctx)
}

// Get returns one client by id.
func (s *ClientService) Get(ctx context.Context, id int64) (*domain.Client, error) {
	client, err := s.clients.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound(fmt.Sprintf("Cliente con ID %d no encontrado", id))
		}
		return nil, err
	}
	return client, nil
}

// Create registers a new client after checking email and phone uniqueness.
func (s *ClientService) Create(ctx context.Context, input ClientInput) (*domain.Client, error) {
	if strings.TrimSpace(input.FirstName) == "" || strings.TrimSpace(input.Email) == "" {
		return nil, apperrors.NewValidationError("nombre y correo son obligatorios")
	}

	if err := s.ensureEmailFree(ctx, input.Email, 0); err != nil {
		return nil, err
	}
	if err := s.ensurePhoneFree(ctx, input.Phone, 0); err != nil {
		return nil, err
	}

	registeredAt := input.RegisteredAt
	if registeredAt.IsZero() {
		registeredAt = time.Now()
	}

	client := &domain.Client{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		Phone:        input.Phone,
		RegisteredAt: registeredAt,
		Active:       true,
	}
	if err := s.clients.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// Update mutates an existing client, re-checking uniqueness when email or
// phone changes.
func (s *ClientService) Update(ctx context.Context, input ClientUpdateInput) error {
	client, err := s.Get(ctx, input.ID)
	if err != nil {
		return err
	}

	if client.Email != input.Email {
		if err := s.ensureEmailFree(ctx, input.Email, input.ID); err != nil {
			return err
		}
	}
	if client.Phone != input.Phone {
		if err := s.ensurePhoneFree(ctx, input.Phone, input.ID); err != nil {
			return err
		}
	}

	client.FirstName = input.FirstName
	client.LastName = input.LastName
	client.Email = input.Email
	client.Phone = input.Phone
	client.RegisteredAt = input.RegisteredAt
	client.Active = input.Active

	return s.clients.Update(ctx, client)
}

// Deactivate soft-deletes a client.
func (s *ClientService) Deactivate(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.clients.SetActive(ctx, id, false)
}

// Activate reverses a soft delete.
func (s *ClientService) Activate(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.clients.SetActive(ctx, id, true)
}

func (s *ClientService) ensureEmailFree(ctx context.Context, email string, selfID int64) error {
	existing, err := s.clients.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return apperrors.NewValidationError(fmt.Sprintf("Ya existe un cliente con el correo %s", email))
	}
	return nil
}

func (s *ClientService) ensurePhoneFree(ctx context.Context, phone string, selfID int64) error {
	existing, err := s.clients.GetByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return apperrors.NewValidationError(fmt.Sprintf("Ya existe un cliente con el teléfono %s", phone))
	}
	return nil
}
