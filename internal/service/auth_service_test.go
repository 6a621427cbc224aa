package service

import (
	"context"
	"errors"
	"testing"

	"github.com/cosmatattoo/backend/internal/model"
	"github.com/cosmatattoo/backend/internal/repository"
	"github.com/cosmatattoo/backend/pkg/auth"
)

// ---------------------------------------------------------------------------
// Mock UserRepository
// ---------------------------------------------------------------------------

type mockUserRepo struct {
	findByIDFunc    func(ctx context.Context, id string) (*model.User, error)
	findByEmailFunc func(ctx context.Context, email string) (*model.User, error)
	findAdminFunc   func(ctx context.Context) (*model.User, error)
	createFunc      func(ctx context.Context, user *model.User) error
}

func (m *mockUserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.findByEmailFunc != nil {
		return m.findByEmailFunc(ctx, email)
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepo) FindAdmin(ctx context.Context) (*model.User, error) {
	if m.findAdminFunc != nil {
		return m.findAdminFunc(ctx)
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	user.ID = "generated-id"
	return nil
}

// ---------------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------------

func TestAuthService_Register_Success(t *testing.T) {
	var created *model.User
	repo := &mockUserRepo{
		createFunc: func(ctx context.Context, user *model.User) error {
			created = user
			user.ID = "u1"
			return nil
		},
	}
	svc := NewAuthService(repo)

	user, err := svc.Register(context.Background(), RegisterInput{
		Email:    "new@example.com",
		Password: "hunter2",
		Name:     "New User",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if created == nil {
		t.Fatal("expected Create to be called")
	}
	if user.Role != model.RoleUser {
		t.Errorf("expected role USER, got %q", user.Role)
	}
	if user.PasswordHash == "hunter2" || user.PasswordHash == "" {
		t.Error("password must be stored hashed")
	}
	if !auth.CheckPassword(user.PasswordHash, "hunter2") {
		t.Error("stored hash does not verify the original password")
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := &mockUserRepo{
		findByEmailFunc: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{ID: "u1", Email: email}, nil
		},
		createFunc: func(ctx context.Context, user *model.User) error {
			t.Error("Create must not be called when the email is taken")
			return nil
		},
	}
	svc := NewAuthService(repo)

	_, err := svc.Register(context.Background(), RegisterInput{Email: "dup@example.com", Password: "x"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

// TestAuthService_Register_DuplicateRace covers two registrations racing past
// the lookup: the unique index fires and the insert error maps to ErrEmailTaken.
func TestAuthService_Register_DuplicateRace(t *testing.T) {
	repo := &mockUserRepo{
		createFunc: func(ctx context.Context, user *model.User) error {
			return repository.ErrDuplicate
		},
	}
	svc := NewAuthService(repo)

	_, err := svc.Register(context.Background(), RegisterInput{Email: "race@example.com", Password: "x"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken on unique violation, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Authenticate
// ---------------------------------------------------------------------------

func TestAuthService_Authenticate_Success(t *testing.T) {
	hash, _ := auth.HashPassword("correct")
	repo := &mockUserRepo{
		findByEmailFunc: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{ID: "u1", Email: email, PasswordHash: hash, Role: model.RoleAdmin}, nil
		},
	}
	svc := NewAuthService(repo)

	user, err := svc.Authenticate(context.Background(), "admin@example.com", "correct")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if user.Role != model.RoleAdmin {
		t.Errorf("expected ADMIN role, got %q", user.Role)
	}
}

func TestAuthService_Authenticate_WrongPassword(t *testing.T) {
	hash, _ := auth.HashPassword("correct")
	repo := &mockUserRepo{
		findByEmailFunc: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{ID: "u1", Email: email, PasswordHash: hash}, nil
		},
	}
	svc := NewAuthService(repo)

	if _, err := svc.Authenticate(context.Background(), "a@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

// TestAuthService_Authenticate_UnknownEmail verifies the unknown-email and
// wrong-password failures are the same error, leaking nothing to the caller.
func TestAuthService_Authenticate_UnknownEmail(t *testing.T) {
	svc := NewAuthService(&mockUserRepo{})

	if _, err := svc.Authenticate(context.Background(), "ghost@example.com", "x"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// EnsureAdmin
// ---------------------------------------------------------------------------

func TestAuthService_EnsureAdmin_CreatesWhenMissing(t *testing.T) {
	var created *model.User
	repo := &mockUserRepo{
		createFunc: func(ctx context.Context, user *model.User) error {
			created = user
			user.ID = "admin-1"
			return nil
		},
	}
	svc := NewAuthService(repo)

	admin, wasCreated, err := svc.EnsureAdmin(context.Background(), "admin@example.com", "pw", "Admin")
	if err != nil {
		t.Fatalf("EnsureAdmin: %v", err)
	}
	if !wasCreated {
		t.Error("expected created=true")
	}
	if created == nil || created.Role != model.RoleAdmin {
		t.Errorf("expected an ADMIN to be created, got %+v", created)
	}
	if admin.ID != "admin-1" {
		t.Errorf("expected returned admin, got %+v", admin)
	}
}

func TestAuthService_EnsureAdmin_Idempotent(t *testing.T) {
	existing := &model.User{ID: "admin-1", Email: "admin@example.com", Role: model.RoleAdmin}
	repo := &mockUserRepo{
		findAdminFunc: func(ctx context.Context) (*model.User, error) { return existing, nil },
		createFunc: func(ctx context.Context, user *model.User) error {
			t.Error("Create must not be called when an admin already exists")
			return nil
		},
	}
	svc := NewAuthService(repo)

	admin, wasCreated, err := svc.EnsureAdmin(context.Background(), "other@example.com", "pw", "Other")
	if err != nil {
		t.Fatalf("EnsureAdmin: %v", err)
	}
	if wasCreated {
		t.Error("expected created=false for existing admin")
	}
	if admin.ID != existing.ID {
		t.Errorf("expected the existing admin back, got %+v", admin)
	}
}
