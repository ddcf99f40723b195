package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsersCreate(t *testing.T) {
	t.Run("unique violation maps to ErrDuplicateEmail", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("INSERT INTO users").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

		user := &User{Name: "Jane Moviegoer", Email: "jane@example.com"}
		require.NoError(t, user.Password.Set("123456"))

		s := &UsersStore{db: db}
		err = s.Create(context.Background(), user)
		assert.ErrorIs(t, err, ErrDuplicateEmail)
	})

	t.Run("fills in the generated fields", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		now := time.Now()
		mock.ExpectQuery("INSERT INTO users").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(1, now, now))

		user := &User{Name: "Jane Moviegoer", Email: "jane@example.com"}
		require.NoError(t, user.Password.Set("123456"))

		s := &UsersStore{db: db}
		require.NoError(t, s.Create(context.Background(), user))
		assert.EqualValues(t, 1, user.ID)
	})
}

func TestUsersGetByEmail(t *testing.T) {
	t.Run("missing row is ErrNotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("FROM users").WillReturnError(sql.ErrNoRows)

		s := &UsersStore{db: db}
		_, err = s.GetByEmail(context.Background(), "nobody@example.com")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("loaded hash still verifies the password", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		seeded := &User{}
		require.NoError(t, seeded.Password.Set("123456"))

		now := time.Now()
		rows := sqlmock.NewRows([]string{"id", "name", "email", "password", "created_at", "updated_at"}).
			AddRow(1, "Jane Moviegoer", "jane@example.com", seeded.Password.hash, now, now)
		mock.ExpectQuery("FROM users").WillReturnRows(rows)

		s := &UsersStore{db: db}
		user, err := s.GetByEmail(context.Background(), "jane@example.com")
		require.NoError(t, err)

		assert.NoError(t, user.Password.Compare("123456"))
		assert.Error(t, user.Password.Compare("654321"))
	})
}

func TestPasswordSetAndCompare(t *testing.T) {
	var p password
	require.NoError(t, p.Set("123456"))

	assert.NoError(t, p.Compare("123456"))
	assert.Error(t, p.Compare("123457"))
}
