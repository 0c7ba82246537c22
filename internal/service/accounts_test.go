package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"shift-scheduler/internal/database"
	"shift-scheduler/internal/model"
	"shift-scheduler/internal/store"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSignup(t *testing.T) {
	ctx := context.Background()

	t.Run("missing fields", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		for _, in := range []SignupInput{
			{Email: "a@b.c", Password: "p"},
			{Name: "A", Password: "p"},
			{Name: "A", Email: "a@b.c"},
			{Name: "   ", Email: "a@b.c", Password: "p"},
		} {
			_, err := Signup(ctx, nil, in)
			require.ErrorIs(t, err, ErrMissingFields)
		}
	})

	t.Run("password longer than 72 bytes", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		emailExists = func(context.Context, database.DB, string) (bool, error) {
			t.Fatal("store must not be consulted")
			return false, nil
		}
		_, err := Signup(ctx, nil, SignupInput{Name: "A", Email: "a@b.c", Password: strings.Repeat("x", 73)})
		require.ErrorIs(t, err, ErrPasswordTooLong)

		// 25 個三位元組字元也超過上限
		_, err = Signup(ctx, nil, SignupInput{Name: "A", Email: "a@b.c", Password: strings.Repeat("密", 25)})
		require.ErrorIs(t, err, ErrPasswordTooLong)
	})

	t.Run("password of exactly 72 bytes", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		emailExists = func(context.Context, database.DB, string) (bool, error) { return false, nil }
		createUser = func(_ context.Context, _ database.DB, u *model.User) (*model.User, error) { return u, nil }
		pw := strings.Repeat("x", 72)
		u, err := Signup(ctx, nil, SignupInput{Name: "A", Email: "a@b.c", Password: pw})
		require.NoError(t, err)
		require.NoError(t, ComparePassword(u.PasswordHash, pw))
	})

	t.Run("bcrypt length error mapped", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		emailExists = func(context.Context, database.DB, string) (bool, error) { return false, nil }
		hashPassword = func(string) (string, error) { return "", bcrypt.ErrPasswordTooLong }
		_, err := Signup(ctx, nil, SignupInput{Name: "A", Email: "a@b.c", Password: "p"})
		require.ErrorIs(t, err, ErrPasswordTooLong)
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		emailExists = func(_ context.Context, _ database.DB, email string) (bool, error) {
			require.Equal(t, "a@b.c", email)
			return true, nil
		}
		_, err := Signup(ctx, nil, SignupInput{Name: "A", Email: " A@B.c ", Password: "p"})
		require.ErrorIs(t, err, ErrDuplicateEmail)
	})

	t.Run("duplicate on insert race", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		emailExists = func(context.Context, database.DB, string) (bool, error) { return false, nil }
		hashPassword = func(string) (string, error) { return "h", nil }
		createUser = func(context.Context, database.DB, *model.User) (*model.User, error) {
			return nil, errors.Join(store.ErrDuplicate, errors.New("23505"))
		}
		_, err := Signup(ctx, nil, SignupInput{Name: "A", Email: "a@b.c", Password: "p"})
		require.ErrorIs(t, err, ErrDuplicateEmail)
	})

	t.Run("store errors surface", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		emailExists = func(context.Context, database.DB, string) (bool, error) { return false, errors.New("down") }
		_, err := Signup(ctx, nil, SignupInput{Name: "A", Email: "a@b.c", Password: "p"})
		require.EqualError(t, err, "down")

		emailExists = func(context.Context, database.DB, string) (bool, error) { return false, nil }
		hashPassword = func(string) (string, error) { return "", errors.New("hash") }
		_, err = Signup(ctx, nil, SignupInput{Name: "A", Email: "a@b.c", Password: "p"})
		require.EqualError(t, err, "hash")
	})

	t.Run("role forced to user with defaults", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		emailExists = func(context.Context, database.DB, string) (bool, error) { return false, nil }
		var stored model.User
		createUser = func(_ context.Context, _ database.DB, u *model.User) (*model.User, error) {
			stored = *u
			u.ID = 3
			return u, nil
		}
		u, err := Signup(ctx, nil, SignupInput{Name: " Bob ", Email: "Bob@Example.com", Password: "pw"})
		require.NoError(t, err)
		require.Equal(t, 3, u.ID)
		require.Equal(t, "Bob", stored.Name)
		require.Equal(t, "bob@example.com", stored.Email)
		require.Equal(t, model.RoleUser, stored.Role)
		require.Equal(t, "EMP-NEW", stored.EmployeeCode)
		require.Equal(t, "General", stored.Department)
		require.NotEqual(t, "pw", stored.PasswordHash)
		require.NoError(t, ComparePassword(stored.PasswordHash, "pw"))
	})

	t.Run("employee code kept", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		emailExists = func(context.Context, database.DB, string) (bool, error) { return false, nil }
		hashPassword = func(string) (string, error) { return "h", nil }
		createUser = func(_ context.Context, _ database.DB, u *model.User) (*model.User, error) { return u, nil }
		u, err := Signup(ctx, nil, SignupInput{Name: "A", Email: "a@b.c", Password: "p", EmployeeCode: "EMP-9"})
		require.NoError(t, err)
		require.Equal(t, "EMP-9", u.EmployeeCode)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	issuedAt := time.Now()
	issuer := fixedIssuer("s", issuedAt)
	hash, err := HashPassword("right")
	require.NoError(t, err)
	alice := &model.User{ID: 5, Name: "Alice", Email: "alice@example.com", PasswordHash: hash, Role: model.RoleAdmin}

	t.Run("success round trips through the guard", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		getUserByEmail = func(_ context.Context, _ database.DB, email string) (*model.User, error) {
			require.Equal(t, "alice@example.com", email)
			return alice, nil
		}
		res, err := Login(ctx, nil, issuer, nil, "Alice@Example.com", "right")
		require.NoError(t, err)
		require.Equal(t, model.Principal{ID: 5, Role: model.RoleAdmin, Name: "Alice"}, res.Principal)
		require.Equal(t, issuedAt.Add(AccessTokenTTL), res.ExpiresAt)

		p, err := issuer.Verify(res.Token)
		require.NoError(t, err)
		require.Equal(t, res.Principal, *p)
	})

	t.Run("unknown email and wrong password look the same", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
			return nil, store.ErrNotFound
		}
		_, missingErr := Login(ctx, nil, issuer, nil, "ghost@example.com", "x")

		getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) { return alice, nil }
		_, wrongErr := Login(ctx, nil, issuer, nil, "alice@example.com", "wrong")

		require.ErrorIs(t, missingErr, ErrInvalidCredentials)
		require.Equal(t, missingErr, wrongErr)
	})

	t.Run("store error is not masked", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
			return nil, errors.New("conn refused")
		}
		_, err := Login(ctx, nil, issuer, nil, "a@b.c", "x")
		require.EqualError(t, err, "conn refused")
	})

	t.Run("throttle blocks after repeated failures", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		c, counts, _ := memCache()
		th := NewLoginThrottle(c, 2, time.Minute)
		getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) { return alice, nil }

		for i := 0; i < 2; i++ {
			_, err := Login(ctx, nil, issuer, th, "alice@example.com", "wrong")
			require.ErrorIs(t, err, ErrInvalidCredentials)
		}
		_, err := Login(ctx, nil, issuer, th, "alice@example.com", "right")
		require.ErrorIs(t, err, ErrTooManyAttempts)
		require.Equal(t, 2, counts["login:fail:alice@example.com"])
	})

	t.Run("success resets throttle", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		c, counts, _ := memCache()
		th := NewLoginThrottle(c, 3, time.Minute)
		getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) { return alice, nil }

		_, err := Login(ctx, nil, issuer, th, "alice@example.com", "wrong")
		require.ErrorIs(t, err, ErrInvalidCredentials)
		require.Equal(t, 1, counts["login:fail:alice@example.com"])

		_, err = Login(ctx, nil, issuer, th, "alice@example.com", "right")
		require.NoError(t, err)
		_, present := counts["login:fail:alice@example.com"]
		require.False(t, present)
	})
}

func TestEnsureAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("requires credentials", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		_, err := EnsureAdmin(ctx, nil, "Root", "", "pw")
		require.ErrorIs(t, err, ErrMissingFields)
	})

	t.Run("inserts admin", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		hashPassword = func(string) (string, error) { return "h", nil }
		var got model.User
		ensureUser = func(_ context.Context, _ database.DB, u *model.User) (bool, error) {
			got = *u
			return true, nil
		}
		created, err := EnsureAdmin(ctx, nil, "", "Root@Example.com", "pw")
		require.NoError(t, err)
		require.True(t, created)
		require.Equal(t, model.RoleAdmin, got.Role)
		require.Equal(t, "root@example.com", got.Email)
		require.Equal(t, "Administrator", got.Name)
		require.Equal(t, "h", got.PasswordHash)
	})
}
