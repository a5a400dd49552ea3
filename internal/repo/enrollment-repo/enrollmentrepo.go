package enrollmentrepo

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

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Enrollment, error) {
	query := `
        SELECT id, section_id, payment_status, waitlist_position, payment_session_ref, created_at
        FROM enrollments
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var enrollment domain.Enrollment
	err := row.Scan(&enrollment.ID, &enrollment.SectionID, &enrollment.PaymentStatus, &enrollment.WaitlistPosition, &enrollment.PaymentSessionRef, &enrollment.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find enrollment", zap.Error(err))
		return nil, err
	}
	return &enrollment, nil
}

func (r *Repository) FindBySessionRef(ctx context.Context, sessionRef string) (*domain.Enrollment, error) {
	query := `
        SELECT id, section_id, payment_status, waitlist_position, payment_session_ref, created_at
        FROM enrollments
        WHERE payment_session_ref = $1
    `
	row := r.db.QueryRow(ctx, query, sessionRef)
	var enrollment domain.Enrollment
	err := row.Scan(&enrollment.ID, &enrollment.SectionID, &enrollment.PaymentStatus, &enrollment.WaitlistPosition, &enrollment.PaymentSessionRef, &enrollment.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find enrollment by session ref", zap.Error(err))
		return nil, err
	}
	return &enrollment, nil
}

func (r *Repository) Create(ctx context.Context, enrollment *domain.Enrollment) (*domain.Enrollment, error) {
	query := `
        INSERT INTO enrollments (section_id, payment_status, waitlist_position, payment_session_ref)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at
    `
	row := r.db.QueryRow(ctx, query, enrollment.SectionID, enrollment.PaymentStatus, enrollment.WaitlistPosition, enrollment.PaymentSessionRef)
	err := row.Scan(&enrollment.ID, &enrollment.CreatedAt)
	if err != nil {
		zap.L().Error("can't create enrollment", zap.Error(err))
		return nil, err
	}
	return enrollment, nil
}

// FindWaitlisted returns the section's waitlist in its effective order;
// createdAt breaks ties between equal or missing positions.
func (r *Repository) FindWaitlisted(ctx context.Context, sectionID int) ([]domain.Enrollment, error) {
	query := `
        SELECT id, section_id, payment_status, waitlist_position, payment_session_ref, created_at
        FROM enrollments
        WHERE section_id = $1 AND payment_status = 'WAITLISTED'
        ORDER BY waitlist_position ASC, created_at ASC
    `
	rows, err := r.db.Query(ctx, query, sectionID)
	if err != nil {
		zap.L().Error("can't get waitlisted enrollments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var enrollments []domain.Enrollment
	for rows.Next() {
		var enrollment domain.Enrollment
		err := rows.Scan(&enrollment.ID, &enrollment.SectionID, &enrollment.PaymentStatus, &enrollment.WaitlistPosition, &enrollment.PaymentSessionRef, &enrollment.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan enrollment row", zap.Error(err))
			return nil, err
		}
		enrollments = append(enrollments, enrollment)
	}
	return enrollments, nil
}

func (r *Repository) MaxWaitlistPosition(ctx context.Context, sectionID int) (int, error) {
	query := `
        SELECT COALESCE(MAX(waitlist_position), 0)
        FROM enrollments
        WHERE section_id = $1 AND payment_status = 'WAITLISTED'
    `
	row := r.db.QueryRow(ctx, query, sectionID)
	var max int
	if err := row.Scan(&max); err != nil {
		zap.L().Error("can't get max waitlist position", zap.Error(err))
		return 0, err
	}
	return max, nil
}

// RewritePositions assigns position i+1 to ids[i] in a single statement so
// that a concurrent reader never observes a half-renumbered waitlist.
func (r *Repository) RewritePositions(ctx context.Context, ids []int) error {
	if len(ids) == 0 {
		return nil
	}
	query := `
        UPDATE enrollments AS e
        SET waitlist_position = ord.pos
        FROM (SELECT id, ordinality AS pos FROM unnest($1::int[]) WITH ORDINALITY AS t(id)) AS ord
        WHERE e.id = ord.id
    `
	_, err := r.db.Exec(ctx, query, ids)
	if err != nil {
		zap.L().Error("can't rewrite waitlist positions", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int, status string) error {
	query := `
        UPDATE enrollments
        SET payment_status = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		zap.L().Error("can't update enrollment status", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	query := `
        DELETE FROM enrollments
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't delete enrollment", zap.Error(err))
		return err
	}
	return nil
}
