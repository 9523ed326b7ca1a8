package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/restaurant/backend/internal/domain/shared"
)

func newMockUserRepository(t *testing.T) (*GormUserRepository, sqlmock.Sqlmock, *sql.DB) {
	gormDB, mock, mockDB := newMockDB(t)
	return NewGormUserRepository(gormDB), mock, mockDB
}

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "created_at", "updated_at", "user_code", "username", "first_name", "last_name", "email"})
}

func TestGormUserRepository_FindByUserCode(t *testing.T) {
	t.Run("finds existing user", func(t *testing.T) {
		repo, mock, mockDB := newMockUserRepository(t)
		defer mockDB.Close()

		userCode := uuid.New()
		rows := userRows().
			AddRow(int64(1), time.Now(), time.Now(), userCode, "mario.rossi", "Mario", "Rossi", "mario@example.com")

		mock.ExpectQuery(`SELECT \* FROM "persons" WHERE user_code = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(userCode, 1).
			WillReturnRows(rows)

		user, err := repo.FindByUserCode(context.Background(), userCode)

		assert.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, userCode, user.UserCode)
		assert.Equal(t, "mario.rossi", user.Username)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for unknown user code", func(t *testing.T) {
		repo, mock, mockDB := newMockUserRepository(t)
		defer mockDB.Close()

		userCode := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "persons" WHERE user_code = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(userCode, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		user, err := repo.FindByUserCode(context.Background(), userCode)

		assert.Nil(t, user)
		assert.Equal(t, shared.ErrNotFound, err)
	})
}

func TestGormUserRepository_FindAllByUserCode(t *testing.T) {
	t.Run("returns matching users", func(t *testing.T) {
		repo, mock, mockDB := newMockUserRepository(t)
		defer mockDB.Close()

		userCode := uuid.New()
		rows := userRows().
			AddRow(int64(1), time.Now(), time.Now(), userCode, "mario.rossi", "", "", "")

		mock.ExpectQuery(`SELECT \* FROM "persons" WHERE user_code = \$1 ORDER BY id ASC`).
			WithArgs(userCode).
			WillReturnRows(rows)

		users, err := repo.FindAllByUserCode(context.Background(), userCode)

		assert.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, userCode, users[0].UserCode)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns empty slice for unknown user code", func(t *testing.T) {
		repo, mock, mockDB := newMockUserRepository(t)
		defer mockDB.Close()

		userCode := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "persons" WHERE user_code = \$1 ORDER BY id ASC`).
			WithArgs(userCode).
			WillReturnRows(userRows())

		users, err := repo.FindAllByUserCode(context.Background(), userCode)

		assert.NoError(t, err)
		assert.Empty(t, users)
	})
}

func TestGormUserRepository_ExistsByUsername(t *testing.T) {
	repo, mock, mockDB := newMockUserRepository(t)
	defer mockDB.Close()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "persons" WHERE LOWER\(username\) = \$1`).
		WithArgs("mario.rossi").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.ExistsByUsername(context.Background(), "Mario.Rossi")

	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
