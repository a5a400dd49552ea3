package adminrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/DPogorelov/enrollment/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mock, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mock.Close)

	return New(mock), mock
}

func adminColumns() []string {
	return []string{"id", "login", "password_hash", "created_at"}
}

func TestFindByLogin(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery("FROM admins").
		WithArgs("admin").
		WillReturnRows(pgxmock.NewRows(adminColumns()).
			AddRow(1, "admin", "$2a$10$hash", time.Now()))

	admin, err := repo.FindByLogin(context.Background(), "admin")
	assert.NoError(t, err)
	assert.Equal(t, 1, admin.ID)
	assert.Equal(t, "admin", admin.Login)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByLogin_NotFound(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery("FROM admins").
		WithArgs("nobody").
		WillReturnRows(pgxmock.NewRows(adminColumns()))

	admin, err := repo.FindByLogin(context.Background(), "nobody")
	assert.NoError(t, err)
	assert.Nil(t, admin)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery("INSERT INTO admins").
		WithArgs("admin", "$2a$10$hash").
		WillReturnRows(pgxmock.NewRows(adminColumns()).
			AddRow(1, "admin", "$2a$10$hash", time.Now()))

	admin, err := repo.Create(context.Background(), &domain.Admin{Login: "admin", PasswordHash: "$2a$10$hash"})
	assert.NoError(t, err)
	assert.Equal(t, 1, admin.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_Error(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery("INSERT INTO admins").
		WithArgs("admin", "$2a$10$hash").
		WillReturnError(errors.New("some error"))

	admin, err := repo.Create(context.Background(), &domain.Admin{Login: "admin", PasswordHash: "$2a$10$hash"})
	assert.Error(t, err)
	assert.Nil(t, admin)
	assert.NoError(t, mock.ExpectationsWereMet())
}
