package user

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	users map[string]*User
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: make(map[string]*User)}
}

func (f *fakeRepo) GetByEmail(_ context.Context, email string) (*User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeRepo) Create(_ context.Context, u *User) error {
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeRepo) UpdateLastLogin(_ context.Context, id string, t time.Time) error {
	u, ok := f.users[id]
	if !ok {
		return ErrNotFound
	}
	u.LastLoginAt = &t
	return nil
}

func (f *fakeRepo) List(_ context.Context, _ Filter) ([]*User, int, error) {
	var out []*User
	for _, u := range f.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, len(out), nil
}

func (f *fakeRepo) Update(_ context.Context, u *User) error {
	if _, ok := f.users[u.ID]; !ok {
		return ErrNotFound
	}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return ErrNotFound
	}
	delete(f.users, id)
	return nil
}

// plainHasher avoids bcrypt cost in unit tests.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (plainHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return ErrInvalidCredentials
	}
	return nil
}

func TestServiceCreate(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepo(), plainHasher{})

	t.Run("normalizes email and defaults to staff role", func(t *testing.T) {
		u, err := svc.Create(ctx, CreateRequest{Email: "  Front.Desk@Example.COM ", Password: "longenough"})
		require.NoError(t, err)
		assert.Equal(t, "front.desk@example.com", u.Email)
		assert.Equal(t, RoleStaff, u.Role)
		assert.True(t, u.IsActive)
	})

	t.Run("rejects a reused email", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateRequest{Email: "front.desk@example.com", Password: "longenough"})
		assert.ErrorIs(t, err, ErrEmailAlreadyUsed)
	})

	t.Run("rejects a short password", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateRequest{Email: "other@example.com", Password: "short"})
		assert.Error(t, err)
	})

	t.Run("rejects an unknown role", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateRequest{Email: "other@example.com", Password: "longenough", Role: "owner"})
		assert.ErrorIs(t, err, ErrInvalidRole)
	})
}

func TestServiceLogin(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := NewService(repo, plainHasher{})

	created, err := svc.Create(ctx, CreateRequest{Email: "staff@example.com", Password: "longenough"})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		u, err := svc.Login(ctx, "Staff@Example.com", "longenough")
		require.NoError(t, err)
		assert.Equal(t, created.ID, u.ID)
		assert.NotNil(t, u.LastLoginAt)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "staff@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody@example.com", "longenough")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("deactivated account", func(t *testing.T) {
		inactive := false
		_, err := svc.Update(ctx, created.ID, UpdateRequest{IsActive: &inactive})
		require.NoError(t, err)

		_, err = svc.Login(ctx, "staff@example.com", "longenough")
		assert.ErrorIs(t, err, ErrInactiveUser)
	})
}
