package service

import (
	"context"
	"testing"
	"time"

	"github.com/Prathamesh404NotFound/Billing-System/internal/domain/enum"
	"github.com/Prathamesh404NotFound/Billing-System/internal/infrastructure/repository/memory"
	"github.com/Prathamesh404NotFound/Billing-System/pkg/utils"
)

func newAuthFixture(t *testing.T) *AuthService {
	t.Helper()
	users := memory.NewUserStore()
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	return NewAuthService(users, jwtManager)
}

func TestLoginRoundTrip(t *testing.T) {
	svc := newAuthFixture(t)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, "Asha", "asha", "secret-password", enum.RoleCashier)
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if created.Password == "secret-password" {
		t.Fatal("password must be stored hashed")
	}

	user, tokens, err := svc.Login(ctx, "asha", "secret-password")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.ID != created.ID {
		t.Fatal("login returned the wrong user")
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Fatal("expected both tokens")
	}

	refreshedUser, refreshed, err := svc.Refresh(ctx, tokens.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if refreshedUser.ID != created.ID || refreshed.AccessToken == "" {
		t.Fatal("refresh should issue tokens for the same user")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newAuthFixture(t)
	ctx := context.Background()

	if _, err := svc.CreateUser(ctx, "Asha", "asha", "secret-password", enum.RoleCashier); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	if _, _, err := svc.Login(ctx, "asha", "wrong"); err == nil {
		t.Fatal("wrong password must be rejected")
	}
	if _, _, err := svc.Login(ctx, "nobody", "secret-password"); err == nil {
		t.Fatal("unknown username must be rejected")
	}
}

func TestCreateUserValidation(t *testing.T) {
	svc := newAuthFixture(t)
	ctx := context.Background()

	if _, err := svc.CreateUser(ctx, "Asha", "asha", "short", enum.RoleCashier); err == nil {
		t.Fatal("short password must be rejected")
	}
	if _, err := svc.CreateUser(ctx, "Asha", "asha", "secret-password", enum.Role("manager")); err == nil {
		t.Fatal("unknown role must be rejected")
	}

	if _, err := svc.CreateUser(ctx, "Asha", "asha", "secret-password", enum.RoleAdmin); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if _, err := svc.CreateUser(ctx, "Other", "asha", "secret-password", enum.RoleCashier); err == nil {
		t.Fatal("duplicate username must be rejected")
	}
}
