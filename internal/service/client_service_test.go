package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/bonos-estetica/voucher-service/internal/domain"
)

// memClientRepo is a full in-memory ClientRepository for exercising the
// uniqueness checks.
type memClientRepo struct {
	clients map[int64]*domain.Client
	nextID  int64
}

func newMemClientRepo() *memClientRepo {
	return &memClientRepo{clients: make(map[int64]*domain.Client), nextID: 1}
}

func (m *memClientRepo) List(ctx context.Context) ([]domain.Client, error) {
	out := make([]domain.Client, 0, len(m.clients))
	for _, c := range m.clients {
		out = append(out, *c)
	}
	return out, nil
}

func (m *memClientRepo) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	c, ok := m.clients[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *c
	return &copied, nil
}

func (m *memClientRepo) GetByEmail(ctx context.Context, email string) (*domain.Client, error) {
	for _, c := range m.clients {
		if c.Email == email {
			copied := *c
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *memClientRepo) GetByPhone(ctx context.Context, phone string) (*domain.Client, error) {
	for _, c := range m.clients {
		if c.Phone == phone {
			copied := *c
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *memClientRepo) Create(ctx context.Context, client *domain.Client) error {
	client.ID = m.nextID
	m.nextID++
	copied := *client
	m.clients[client.ID] = &copied
	return nil
}

func (m *memClientRepo) Update(ctx context.Context, client *domain.Client) error {
	if _, ok := m.clients[client.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *client
	m.clients[client.ID] = &copied
	return nil
}

func (m *memClientRepo) SetActive(ctx context.Context, id int64, active bool) error {
	c, ok := m.clients[id]
	if !ok {
		return pgx.ErrNoRows
	}
	c.Active = active
	return nil
}

func TestClientCreateAndDuplicates(t *testing.T) {
	repo := newMemClientRepo()
	svc := NewClientService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, ClientInput{
		FirstName: "María",
		LastName:  "Pérez",
		Email:     "maria@example.com",
		Phone:     "555-0101",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("id not assigned")
	}
	if !created.Active {
		t.Error("new client should be active")
	}
	if created.RegisteredAt.IsZero() {
		t.Error("registration date not defaulted")
	}

	_, err = svc.Create(ctx, ClientInput{
		FirstName: "Otra",
		Email:     "maria@example.com",
		Phone:     "555-0202",
	})
	assertValidationError(t, err, "correo maria@example.com")

	_, err = svc.Create(ctx, ClientInput{
		FirstName: "Otra",
		Email:     "otra@example.com",
		Phone:     "555-0101",
	})
	assertValidationError(t, err, "teléfono 555-0101")
}

func TestClientCreateRequiresNameAndEmail(t *testing.T) {
	svc := NewClientService(newMemClientRepo())

	_, err := svc.Create(context.Background(), ClientInput{FirstName: "  ", Email: ""})
	assertValidationError(t, err, "obligatorios")
}

func TestClientUpdateKeepsOwnEmail(t *testing.T) {
	repo := newMemClientRepo()
	svc := NewClientService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, ClientInput{
		FirstName: "María",
		Email:     "maria@example.com",
		Phone:     "555-0101",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Updating without changing email or phone must not trip the
	// uniqueness checks against the client's own row.
	err = svc.Update(ctx, ClientUpdateInput{
		ID:           created.ID,
		FirstName:    "María José",
		Email:        "maria@example.com",
		Phone:        "555-0101",
		RegisteredAt: time.Now(),
		Active:       true,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, _ := repo.GetByID(ctx, created.ID)
	if got.FirstName != "María José" {
		t.Errorf("nombre = %q, want %q", got.FirstName, "María José")
	}
}

func TestClientDeactivateAndActivate(t *testing.T) {
	repo := newMemClientRepo()
	svc := NewClientService(repo)
	ctx := context.Background()

	created, _ := svc.Create(ctx, ClientInput{
		FirstName: "María",
		Email:     "maria@example.com",
		Phone:     "555-0101",
	})

	if err := svc.Deactivate(ctx, created.ID); err != nil {
		t.Fatalf("Deactivate: %v", err)
	}
	got, _ := repo.GetByID(ctx, created.ID)
	if got.Active {
		t.Fatal("client still active after deactivate")
	}

	if err := svc.Activate(ctx, created.ID); err != nil {
		t.Fatalf("Activate: %v", err)
	}
	got, _ = repo.GetByID(ctx, created.ID)
	if !got.Active {
		t.Fatal("client inactive after activate")
	}
}
