package repository

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/avelichko/mini-erp-cafe/internal/models"
	"github.com/avelichko/mini-erp-cafe/pkg/database"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.NewSQLiteDB("")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.RunMigrations(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func TestCreateUser(t *testing.T) {
	repo := NewRepository(setupDB(t))

	user := &models.User{Username: "cashier"}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID == 0 {
		t.Error("expected user id to be assigned")
	}
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	repo := NewRepository(setupDB(t))

	if err := repo.Create(context.Background(), &models.User{Username: "cashier"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The unique index is the only guard; the duplicate must come back
	// as ErrUsernameTaken, not a raw driver error.
	err := repo.Create(context.Background(), &models.User{Username: "cashier"})
	if err != ErrUsernameTaken {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestGetUserByIDNotFound(t *testing.T) {
	repo := NewRepository(setupDB(t))

	if _, err := repo.GetByID(context.Background(), 404); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListUsersOrderedByID(t *testing.T) {
	repo := NewRepository(setupDB(t))

	for _, name := range []string{"cashier", "barista-anna"} {
		if err := repo.Create(context.Background(), &models.User{Username: name}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	users, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].Username != "cashier" || users[1].Username != "barista-anna" {
		t.Errorf("unexpected order: %+v", users)
	}
}
