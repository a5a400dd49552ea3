package adminrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/DPogorelov/enrollment/internal/domain"
	"github.com/DPogorelov/enrollment/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindByLogin(ctx context.Context, login string) (*domain.Admin, error) {
	query := `
        SELECT id, login, password_hash, created_at
        FROM admins
        WHERE login = $1
    `
	row := r.db.QueryRow(ctx, query, login)
	var admin domain.Admin
	err := row.Scan(&admin.ID, &admin.Login, &admin.PasswordHash, &admin.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find admin", zap.Error(err))
		return nil, err
	}
	return &admin, nil
}

func (r *Repository) Create(ctx context.Context, admin *domain.Admin) (*domain.Admin, error) {
	query := `
        INSERT INTO admins (login, password_hash)
        VALUES ($1, $2)
        RETURNING id, login, password_hash, created_at
    `
	row := r.db.QueryRow(ctx, query, admin.Login, admin.PasswordHash)
	var created domain.Admin
	err := row.Scan(&created.ID, &created.Login, &created.PasswordHash, &created.CreatedAt)
	if err != nil {
		zap.L().Error("can't create admin", zap.Error(err))
		return nil, err
	}
	return &created, nil
}
