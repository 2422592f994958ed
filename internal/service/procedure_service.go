package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/bonos-estetica/voucher-service/internal/domain"
	"github.com/bonos-estetica/voucher-service/internal/repository"
	apperrors "github.com/bonos-estetica/voucher-service/pkg/util"
)

// ProcedureService holds the procedure validation sequences.
type ProcedureService struct {
	procedures repository.ProcedureRepository
}

// NewProcedureService constructs the service.
func NewProcedureService(procedures repository.ProcedureRepository) *ProcedureService {
	return &ProcedureService{procedures: procedures}
}

// ProcedureInput describes procedure creation payload.
type ProcedureInput struct {
	Name            string
	Description     string
	Price           float64
	DurationMinutes int
}

// ProcedureUpdateInput describes procedure update payload.
type ProcedureUpdateInput struct {
	ID              int64
	Name            string
	Description     string
	Price           float64
	DurationMinutes int
	Active          bool
}

// List returns every procedure.
func (s *ProcedureService) List(ctx context.Context) ([]domain.Procedure, error) {
	return s.procedures.List(ctx)
}

// Get returns one procedure by id.
func (s *ProcedureService) Get(ctx context.Context, id int64) (*domain.Procedure, error) {
	procedure, err := s.procedures.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound(fmt.Sprintf("Procedimiento con ID %d no encontrado", id))
		}
		return nil, err
	}
	return procedure, nil
}

// Create registers a new procedure after checking name uniqueness.
func (s *ProcedureService) Create(ctx context.Context, input ProcedureInput) (*domain.Procedure, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.NewValidationError("el nombre del procedimiento es obligatorio")
	}
	if input.Price < 0 {
		return nil, apperrors.NewValidationError("el precio no puede ser negativo")
	}

	if err := s.ensureNameFree(ctx, input.Name, 0); err != nil {
		return nil, err
	}

	procedure := &domain.Procedure{
		Name:            input.Name,
		Description:     input.Description,
		Price:           input.Price,
		DurationMinutes: input.DurationMinutes,
		Active:          true,
	}
	if err := s.procedures.Create(ctx, procedure); err != nil {
		return nil, err
	}
	return procedure, nil
}

// Update mutates an existing procedure, re-checking name uniqueness when
// the name changes.
func (s *ProcedureService) Update(ctx context.Context, input ProcedureUpdateInput) error {
	procedure, err := s.Get(ctx, input.ID)
	if err != nil {
		return err
	}
	if input.Price < 0 {
		return apperrors.NewValidationError("el precio no puede ser negativo")
	}

	if procedure.Name != input.Name {
		if err := s.ensureNameFree(ctx, input.Name, input.ID); err != nil {
			return err
		}
	}

	procedure.Name = input.Name
	procedure.Description = input.Description
	procedure.Price = input.Price
	procedure.DurationMinutes = input.DurationMinutes
	procedure.Active = input.Active

	return s.procedures.Update(ctx, procedure)
}

// Deactivate soft-deletes a procedure.
func (s *ProcedureService) Deactivate(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.procedures.SetActive(ctx, id, false)
}

// Activate reverses a soft delete.
func (s *ProcedureService) Activate(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.procedures.SetActive(ctx, id, true)
}

func (s *ProcedureService) ensureNameFree(ctx context.Context, name string, selfID int64) error {
	existing, err := s.procedures.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return apperrors.NewValidationError(fmt.Sprintf("Ya existe un procedimiento con el nombre %s", name))
	}
	return nil
}
