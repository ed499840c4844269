package database

import (
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Supriya-gouda/ZenBus-sub001/internal/models"
)

var userColumns = []string{
	"id", "name", "email", "password_hash", "role", "created_at", "updated_at",
}

func TestCreateUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO users`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		user := &models.User{
			Name:         "Asha Rao",
			Email:        "asha@example.com",
			PasswordHash: "$2a$12$hash",
		}

		err := repo.Create(user)
		require.NoError(t, err)
		assert.NotEmpty(t, user.ID)
		assert.Equal(t, models.RoleUser, user.Role)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO users`).
			WillReturnError(fmt.Errorf("Error 1062: Duplicate entry 'asha@example.com' for key 'users.email'"))

		err := repo.Create(&models.User{
			Name:         "Asha Rao",
			Email:        "asha@example.com",
			PasswordHash: "$2a$12$hash",
		})
		assert.ErrorIs(t, err, models.ErrEmailTaken)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database Error", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO users`).
			WillReturnError(fmt.Errorf("database error"))

		err := repo.Create(&models.User{
			Name:         "Asha Rao",
			Email:        "asha@example.com",
			PasswordHash: "$2a$12$hash",
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create user")

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetUserByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	t.Run("Success", func(t *testing.T) {
		now := time.Now()

		mock.ExpectQuery(`SELECT (.+) FROM users WHERE email`).
			WithArgs("asha@example.com").
			WillReturnRows(sqlmock.NewRows(userColumns).AddRow(
				"user-1", "Asha Rao", "asha@example.com", "$2a$12$hash", "user", now, now,
			))

		user, err := repo.GetByEmail("asha@example.com")
		require.NoError(t, err)
		assert.Equal(t, "user-1", user.ID)
		assert.Equal(t, "Asha Rao", user.Name)
		assert.False(t, user.IsAdmin())

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM users WHERE email`).
			WithArgs("nobody@example.com").
			WillReturnRows(sqlmock.NewRows(userColumns))

		user, err := repo.GetByEmail("nobody@example.com")
		assert.ErrorIs(t, err, models.ErrUserNotFound)
		assert.Nil(t, user)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
