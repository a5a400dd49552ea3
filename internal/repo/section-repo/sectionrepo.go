package sectionrepo

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

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Section, error) {
	query := `
        SELECT id, label, max_capacity, enrolled_count, status, created_at
        FROM sections
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var section domain.Section
	err := row.Scan(&section.ID, &section.Label, &section.MaxCapacity, &section.EnrolledCount, &section.Status, &section.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find section", zap.Error(err))
		return nil, err
	}
	return &section, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Section, error) {
	query := `
        SELECT id, label, max_capacity, enrolled_count, status, created_at
        FROM sections
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get sections", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var sections []domain.Section
	for rows.Next() {
		var section domain.Section
		err := rows.Scan(&section.ID, &section.Label, &section.MaxCapacity, &section.EnrolledCount, &section.Status, &section.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan section row", zap.Error(err))
			return nil, err
		}
		sections = append(sections, section)
	}
	return sections, nil
}

// LockForUpdate reads the section under FOR UPDATE so that seat accounting
// and waitlist rewrites on the same section serialize. Must be called inside
// a transaction.
func (r *Repository) LockForUpdate(ctx context.Context, id int) (*domain.Section, error) {
	query := `
        SELECT id, label, max_capacity, enrolled_count, status, created_at
        FROM sections
        WHERE id = $1
        FOR UPDATE
    `
	row := r.db.QueryRow(ctx, query, id)
	var section domain.Section
	err := row.Scan(&section.ID, &section.Label, &section.MaxCapacity, &section.EnrolledCount, &section.Status, &section.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't lock section", zap.Error(err))
		return nil, err
	}
	return &section, nil
}

func (r *Repository) AdjustEnrolled(ctx context.Context, id int, delta int) error {
	query := `
        UPDATE sections
        SET enrolled_count = enrolled_count + $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, delta, id)
	if err != nil {
		zap.L().Error("can't adjust enrolled count", zap.Error(err))
		return err
	}
	return nil
}
