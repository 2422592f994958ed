package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/bonos-estetica/voucher-service/internal/auth"
	"github.com/bonos-estetica/voucher-service/internal/domain"
)

type memUserRepo struct {
	users  map[int64]*domain.User
	nextID int64
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[int64]*domain.User), nextID: 1}
}

func (m *memUserRepo) List(ctx context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

func (m *memUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *u
	return &copied, nil
}

func (m *memUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *memUserRepo) Create(ctx context.Context, user *domain.User) error {
	user.ID = m.nextID
	m.nextID++
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *memUserRepo) Update(ctx context.Context, user *domain.User) error {
	if _, ok := m.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *memUserRepo) SetActive(ctx context.Context, id int64, active bool) error {
	u, ok := m.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	u.Active = active
	return nil
}

func TestUserCreateHashesPassword(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewUserService(repo)

	created, err := svc.Create(context.Background(), UserInput{
		Name:     "Ana",
		Email:    "ana@salon.test",
		Password: "clave-inicial",
		Role:     "Recepcion",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if created.PasswordHash == "clave-inicial" {
		t.Fatal("password stored in clear")
	}
	if created.PasswordSalt == nil || *created.PasswordSalt == "" {
		t.Fatal("new account missing salt")
	}
	if !auth.VerifyPassword("clave-inicial", created.PasswordHash, created.PasswordSalt) {
		t.Fatal("stored credential does not verify")
	}
}

func TestUserCreateRejectsUnknownRole(t *testing.T) {
	svc := NewUserService(newMemUserRepo())

	_, err := svc.Create(context.Background(), UserInput{
		Name:     "Ana",
		Email:    "ana@salon.test",
		Password: "clave",
		Role:     "Gerente",
	})
	assertValidationError(t, err, "rol desconocido")
}

func TestUserCreateRejectsDuplicateEmail(t *testing.T) {
	svc := NewUserService(newMemUserRepo())
	ctx := context.Background()

	if _, err := svc.Create(ctx, UserInput{Name: "Ana", Email: "ana@salon.test", Password: "clave", Role: "Admin"}); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	_, err := svc.Create(ctx, UserInput{Name: "Otra", Email: "ana@salon.test", Password: "clave", Role: "Admin"})
	assertValidationError(t, err, "correo ana@salon.test")
}

func TestUserUpdateMigratesLegacyHash(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	// Seed a legacy account: unsalted SHA-256 digest, nil salt.
	repo.users[10] = &domain.User{
		ID:           10,
		Name:         "Veterana",
		Email:        "vet@salon.test",
		PasswordHash: legacySha256("clave-vieja"),
		PasswordSalt: nil,
		Role:         domain.RoleRecepcion,
		Active:       true,
	}

	err := svc.Update(ctx, UserUpdateInput{
		ID:          10,
		Email:       "vet@salon.test",
		Role:        "Recepcion",
		NewPassword: "clave-nueva",
		Active:      true,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	stored, _ := repo.GetByID(ctx, 10)
	if stored.PasswordSalt == nil {
		t.Fatal("rotated credential still unsalted")
	}
	if !auth.VerifyPassword("clave-nueva", stored.PasswordHash, stored.PasswordSalt) {
		t.Fatal("new password does not verify")
	}
	if auth.VerifyPassword("clave-vieja", stored.PasswordHash, stored.PasswordSalt) {
		t.Fatal("old password still verifies after rotation")
	}
}

func TestUserUpdateWithoutPasswordKeepsCredential(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, UserInput{Name: "Ana", Email: "ana@salon.test", Password: "clave", Role: "Admin"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	err = svc.Update(ctx, UserUpdateInput{
		ID:     created.ID,
		Email:  "ana@salon.test",
		Role:   "Recepcion",
		Active: true,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	stored, _ := repo.GetByID(ctx, created.ID)
	if stored.Role != domain.RoleRecepcion {
		t.Errorf("rol = %q, want %q", stored.Role, domain.RoleRecepcion)
	}
	if !auth.VerifyPassword("clave", stored.PasswordHash, stored.PasswordSalt) {
		t.Fatal("credential changed by a password-less update")
	}
}
