package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/bonos-estetica/voucher-service/internal/auth"
	"github.com/bonos-estetica/voucher-service/internal/config"
	"github.com/bonos-estetica/voucher-service/internal/domain"
	"github.com/bonos-estetica/voucher-service/internal/repository"
	apperrors "github.com/bonos-estetica/voucher-service/pkg/util"
)

type fakeUserRepo struct {
	repository.UserRepository
	byEmail map[string]*domain.User
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return u, nil
}

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:             "clave-de-firma-para-tests",
		JWTIssuer:             "voucher-service",
		JWTAudience:           "voucher-api",
		AccessTokenTTLMinutes: 60,
	}
}

func legacySha256(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func assertUnauthorized(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	if status := apperrors.ToDomainError(err).HTTPStatus; status != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 (%v)", status, err)
	}
}

func TestLoginWithLegacyHash(t *testing.T) {
	users := &fakeUserRepo{byEmail: map[string]*domain.User{
		"admin@salon.test": {
			ID:           1,
			Name:         "Admin",
			Email:        "admin@salon.test",
			PasswordHash: legacySha256("admin123"),
			PasswordSalt: nil,
			Role:         domain.RoleAdmin,
			Active:       true,
		},
	}}
	svc := NewAuthService(testAuthConfig(), users)

	token, expiresAt, err := svc.Login(context.Background(), "admin@salon.test", "admin123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" || expiresAt.IsZero() {
		t.Fatal("empty token or zero expiry")
	}

	claims, err := svc.TokenManager().ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.Role != domain.RoleAdmin {
		t.Errorf("rol claim = %q, want %q", claims.Role, domain.RoleAdmin)
	}
	userID, err := claims.UserID()
	if err != nil || userID != 1 {
		t.Errorf("subject = %d (%v), want 1", userID, err)
	}
}

func TestLoginWithSaltedHash(t *testing.T) {
	hash, salt, err := auth.HashPassword("recepcion456")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	users := &fakeUserRepo{byEmail: map[string]*domain.User{
		"recepcion@salon.test": {
			ID:           2,
			Name:         "Recepción",
			Email:        "recepcion@salon.test",
			PasswordHash: hash,
			PasswordSalt: &salt,
			Role:         domain.RoleRecepcion,
			Active:       true,
		},
	}}
	svc := NewAuthService(testAuthConfig(), users)

	token, _, err := svc.Login(context.Background(), "recepcion@salon.test", "recepcion456")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	claims, err := svc.TokenManager().ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.Role != domain.RoleRecepcion {
		t.Errorf("rol claim = %q, want %q", claims.Role, domain.RoleRecepcion)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	users := &fakeUserRepo{byEmail: map[string]*domain.User{
		"admin@salon.test": {
			ID:           1,
			Email:        "admin@salon.test",
			PasswordHash: legacySha256("admin123"),
			Role:         domain.RoleAdmin,
			Active:       true,
		},
	}}
	svc := NewAuthService(testAuthConfig(), users)

	_, _, err := svc.Login(context.Background(), "admin@salon.test", "clave-equivocada")
	assertUnauthorized(t, err)
}

func TestLoginRejectsUnknownUser(t *testing.T) {
	svc := NewAuthService(testAuthConfig(), &fakeUserRepo{byEmail: map[string]*domain.User{}})

	_, _, err := svc.Login(context.Background(), "nadie@salon.test", "cualquiera")
	assertUnauthorized(t, err)
}

func TestLoginRejectsInactiveUser(t *testing.T) {
	users := &fakeUserRepo{byEmail: map[string]*domain.User{
		"baja@salon.test": {
			ID:           3,
			Email:        "baja@salon.test",
			PasswordHash: legacySha256("clave"),
			Role:         domain.RoleRecepcion,
			Active:       false,
		},
	}}
	svc := NewAuthService(testAuthConfig(), users)

	_, _, err := svc.Login(context.Background(), "baja@salon.test", "clave")
	assertUnauthorized(t, err)
}
