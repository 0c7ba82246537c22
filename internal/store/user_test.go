package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"shift-scheduler/internal/database"
	"shift-scheduler/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestGetUserByEmail(t *testing.T) {
	now := time.Now().UTC()

	t.Run("found", func(t *testing.T) {
		var gotArgs []any
		db := &database.FakeDB{QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
			require.Contains(t, sql, "WHERE email = $1")
			gotArgs = args
			return scanRow{vals: []any{7, "Alice", "alice@example.com", "hash", model.RoleAdmin, "EMP-7", "Ops", now}}
		}}
		u, err := GetUserByEmail(context.Background(), db, "alice@example.com")
		require.NoError(t, err)
		require.Equal(t, []any{"alice@example.com"}, gotArgs)
		require.Equal(t, &model.User{
			ID: 7, Name: "Alice", Email: "alice@example.com", PasswordHash: "hash",
			Role: model.RoleAdmin, EmployeeCode: "EMP-7", Department: "Ops", CreatedAt: now,
		}, u)
	})

	t.Run("not found", func(t *testing.T) {
		db := &database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			return scanRow{err: pgx.ErrNoRows}
		}}
		_, err := GetUserByEmail(context.Background(), db, "ghost@example.com")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("db error", func(t *testing.T) {
		db := &database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			return scanRow{err: errors.New("conn reset")}
		}}
		_, err := GetUserByEmail(context.Background(), db, "a@b.c")
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestEmailExists(t *testing.T) {
	db := &database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
		return scanRow{vals: []any{true}}
	}}
	ok, err := EmailExists(context.Background(), db, "a@b.c")
	require.NoError(t, err)
	require.True(t, ok)

	db.QueryRowFn = func(context.Context, string, ...any) pgx.Row { return scanRow{err: errors.New("x")} }
	_, err = EmailExists(context.Background(), db, "a@b.c")
	require.Error(t, err)
}

func TestCreateUser(t *testing.T) {
	now := time.Now().UTC()

	t.Run("success", func(t *testing.T) {
		var gotArgs []any
		db := &database.FakeDB{QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
			require.Contains(t, sql, "RETURNING id, created_at")
			gotArgs = args
			return scanRow{vals: []any{11, now}}
		}}
		u, err := CreateUser(context.Background(), db, &model.User{
			Name: "Bob", Email: "bob@example.com", PasswordHash: "h",
			Role: model.RoleUser, EmployeeCode: "EMP-NEW", Department: "General",
		})
		require.NoError(t, err)
		require.Equal(t, 11, u.ID)
		require.Equal(t, now, u.CreatedAt)
		require.Equal(t, []any{"Bob", "bob@example.com", "h", model.RoleUser, "EMP-NEW", "General"}, gotArgs)
	})

	t.Run("duplicate email", func(t *testing.T) {
		db := &database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			return scanRow{err: &pgconn.PgError{Code: "23505"}}
		}}
		_, err := CreateUser(context.Background(), db, &model.User{})
		require.ErrorIs(t, err, ErrDuplicate)
	})
}

func TestEnsureUser(t *testing.T) {
	db := &database.FakeDB{ExecFn: func(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
		require.Contains(t, sql, "ON CONFLICT (email) DO NOTHING")
		return pgconn.NewCommandTag("INSERT 0 1"), nil
	}}
	created, err := EnsureUser(context.Background(), db, &model.User{Email: "root@example.com"})
	require.NoError(t, err)
	require.True(t, created)

	db.ExecFn = func(context.Context, string, ...any) (pgconn.CommandTag, error) {
		return pgconn.NewCommandTag("INSERT 0 0"), nil
	}
	created, err = EnsureUser(context.Background(), db, &model.User{Email: "root@example.com"})
	require.NoError(t, err)
	require.False(t, created)

	db.ExecFn = func(context.Context, string, ...any) (pgconn.CommandTag, error) {
		return pgconn.CommandTag{}, errors.New("down")
	}
	_, err = EnsureUser(context.Background(), db, &model.User{})
	require.Error(t, err)
}

func TestListEmployees(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		rows := &scanRows{data: [][]any{
			{2, "Bob", "EMP-2"},
			{3, "Carol", "EMP-NEW"},
		}}
		db := &database.FakeDB{QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
			require.Contains(t, sql, "WHERE role = $1")
			require.Equal(t, []any{model.RoleUser}, args)
			return rows, nil
		}}
		got, err := ListEmployees(context.Background(), db)
		require.NoError(t, err)
		require.Equal(t, []model.Employee{
			{ID: 2, Name: "Bob", EmployeeCode: "EMP-2"},
			{ID: 3, Name: "Carol", EmployeeCode: "EMP-NEW"},
		}, got)
		require.True(t, rows.closed)
	})

	t.Run("empty is not nil", func(t *testing.T) {
		db := &database.FakeDB{QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
			return &scanRows{}, nil
		}}
		got, err := ListEmployees(context.Background(), db)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Empty(t, got)
	})

	t.Run("errors", func(t *testing.T) {
		db := &database.FakeDB{QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
			return nil, errors.New("q")
		}}
		_, err := ListEmployees(context.Background(), db)
		require.Error(t, err)

		db.QueryFn = func(context.Context, string, ...any) (pgx.Rows, error) {
			return &scanRows{data: [][]any{{1, "x", "y"}}, scanErr: errors.New("scan")}, nil
		}
		_, err = ListEmployees(context.Background(), db)
		require.Error(t, err)

		db.QueryFn = func(context.Context, string, ...any) (pgx.Rows, error) {
			return &scanRows{err: errors.New("iter")}, nil
		}
		_, err = ListEmployees(context.Background(), db)
		require.Error(t, err)
	})
}
