package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/bonos-estetica/voucher-service/internal/domain"
)

type memProcedureRepo struct {
	procedures map[int64]*domain.Procedure
	nextID     int64
}

func newMemProcedureRepo() *memProcedureRepo {
	return &memProcedureRepo{procedures: make(map[int64]*domain.Procedure), nextID: 1}
}

func (m *memProcedureRepo) List(ctx context.Context) ([]domain.Procedure, error) {
	out := make([]domain.Procedure, 0, len(m.procedures))
	for _, p := range m.procedures {
		out = append(out, *p)
	}
	return out, nil
}

func (m *memProcedureRepo) GetByID(ctx context.Context, id int64) (*domain.Procedure, error) {
	p, ok := m.procedures[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *p
	return &copied, nil
}

func (m *memProcedureRepo) GetByName(ctx context.Context, name string) (*domain.Procedure, error) {
	for _, p := range m.procedures {
		if p.Name == name {
			copied := *p
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *memProcedureRepo) Create(ctx context.Context, procedure *domain.Procedure) error {
	procedure.ID = m.nextID
	m.nextID++
	copied := *procedure
	m.procedures[procedure.ID] = &copied
	return nil
}

func (m *memProcedureRepo) Update(ctx context.Context, procedure *domain.Procedure) error {
	if _, ok := m.procedures[procedure.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *procedure
	m.procedures[procedure.ID] = &copied
	return nil
}

func (m *memProcedureRepo) SetActive(ctx context.Context, id int64, active bool) error {
	p, ok := m.procedures[id]
	if !ok {
		return pgx.ErrNoRows
	}
	p.Active = active
	return nil
}

func TestProcedureCreateValidation(t *testing.T) {
	svc := NewProcedureService(newMemProcedureRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, ProcedureInput{Name: "   ", Price: 50})
	assertValidationError(t, err, "obligatorio")

	_, err = svc.Create(ctx, ProcedureInput{Name: "Limpieza", Price: -1})
	assertValidationError(t, err, "negativo")
}

func TestProcedureCreateRejectsDuplicateName(t *testing.T) {
	svc := NewProcedureService(newMemProcedureRepo())
	ctx := context.Background()

	if _, err := svc.Create(ctx, ProcedureInput{Name: "Limpieza Facial", Price: 100, DurationMinutes: 45}); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	_, err := svc.Create(ctx, ProcedureInput{Name: "Limpieza Facial", Price: 90})
	assertValidationError(t, err, "nombre Limpieza Facial")
}

func TestProcedureUpdateKeepsOwnName(t *testing.T) {
	repo := newMemProcedureRepo()
	svc := NewProcedureService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, ProcedureInput{Name: "Masaje", Price: 80, DurationMinutes: 60})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	err = svc.Update(ctx, ProcedureUpdateInput{
		ID:              created.ID,
		Name:            "Masaje",
		Price:           85,
		DurationMinutes: 60,
		Active:          true,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, _ := repo.GetByID(ctx, created.ID)
	if got.Price != 85 {
		t.Errorf("precio = %v, want 85", got.Price)
	}
}
