package waitlistservice

import (
	"context"
	"errors"

	"github.com/DPogorelov/enrollment/internal/domain"
	"github.com/DPogorelov/enrollment/internal/pg"
	"github.com/DPogorelov/enrollment/internal/service/enrollmentservice"
	"go.uber.org/zap"
)

type Repo interface {
	FindByID(ctx context.Context, id int) (*domain.Enrollment, error)
	FindWaitlisted(ctx context.Context, sectionID int) ([]domain.Enrollment, error)
	RewritePositions(ctx context.Context, ids []int) error
	Delete(ctx context.Context, id int) error
}

type SectionRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Section, error)
	LockForUpdate(ctx context.Context, id int) (*domain.Section, error)
	AdjustEnrolled(ctx context.Context, id int, delta int) error
}

type Service struct {
	repo      Repo
	sections  SectionRepo
	txManager pg.TXManager
}

func New(repo Repo, sections SectionRepo, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		sections:  sections,
		txManager: txManager,
	}
}

var (
	ErrSectionNotFound    = errors.New("section not found")
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrNotWaitlisted      = errors.New("enrollment is not waitlisted")
	ErrEmptyOrder         = errors.New("ordered ids must not be empty")
	ErrOrderMismatch      = errors.New("ordered ids must list every waitlisted enrollment exactly once")
)

// RefundWarning is returned when an admin removes an enrollment whose deposit
// already went through. Issuing the refund is a human decision.
const RefundWarning = "enrollment was already paid, a refund may be owed"

func (s *Service) List(ctx context.Context, sectionID int) ([]domain.Enrollment, error) {
	section, err := s.sections.FindByID(ctx, sectionID)
	if err != nil {
		return nil, err
	}
	if section == nil {
		return nil, ErrSectionNotFound
	}
	return s.repo.FindWaitlisted(ctx, sectionID)
}

// RemoveFromWaitlist deletes a waitlisted enrollment and renumbers the rest
// of its section's waitlist back to 1..N. The section row is locked first so
// that concurrent Remove and Reorder calls on the same section serialize.
func (s *Service) RemoveFromWaitlist(ctx context.Context, enrollmentID int) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		enrollment, err := s.repo.FindByID(ctx, enrollmentID)
		if err != nil {
			return err
		}
		if enrollment == nil {
			return ErrEnrollmentNotFound
		}
		if enrollment.PaymentStatus != enrollmentservice.WaitlistedStatus {
			return ErrNotWaitlisted
		}

		if _, err := s.sections.LockForUpdate(ctx, enrollment.SectionID); err != nil {
			return err
		}
		if err := s.repo.Delete(ctx, enrollment.ID); err != nil {
			return err
		}

		zap.L().Info("removed from waitlist",
			zap.Int("enrollment_id", enrollment.ID),
			zap.Int("section_id", enrollment.SectionID),
		)
		return s.renumber(ctx, enrollment.SectionID)
	})
}

// RemoveEnrollment deletes any enrollment regardless of payment status. An
// admitted enrollment releases its seat; a paid one additionally reports a
// refund warning; a waitlisted one triggers renumbering.
func (s *Service) RemoveEnrollment(ctx context.Context, enrollmentID int) (string, error) {
	var warning string
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		enrollment, err := s.repo.FindByID(ctx, enrollmentID)
		if err != nil {
			return err
		}
		if enrollment == nil {
			return ErrEnrollmentNotFound
		}

		if _, err := s.sections.LockForUpdate(ctx, enrollment.SectionID); err != nil {
			return err
		}
		if err := s.repo.Delete(ctx, enrollment.ID); err != nil {
			return err
		}

		switch enrollment.PaymentStatus {
		case enrollmentservice.WaitlistedStatus:
			return s.renumber(ctx, enrollment.SectionID)
		case enrollmentservice.PaidStatus:
			warning = RefundWarning
			return s.sections.AdjustEnrolled(ctx, enrollment.SectionID, -1)
		default:
			return s.sections.AdjustEnrolled(ctx, enrollment.SectionID, -1)
		}
	})
	if err != nil {
		return "", err
	}
	return warning, nil
}

// Reorder overwrites the section's waitlist positions so orderedIDs[i] gets
// position i+1. The list must be a complete permutation of the section's
// waitlisted enrollments; a partial list would leave stale positions behind.
func (s *Service) Reorder(ctx context.Context, sectionID int, orderedIDs []int) error {
	if len(orderedIDs) == 0 {
		return ErrEmptyOrder
	}

	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		section, err := s.sections.LockForUpdate(ctx, sectionID)
		if err != nil {
			return err
		}
		if section == nil {
			return ErrSectionNotFound
		}

		current, err := s.repo.FindWaitlisted(ctx, sectionID)
		if err != nil {
			return err
		}
		if len(current) != len(orderedIDs) {
			return ErrOrderMismatch
		}

		waitlisted := make(map[int]struct{}, len(current))
		for _, e := range current {
			waitlisted[e.ID] = struct{}{}
		}
		for _, id := range orderedIDs {
			if _, ok := waitlisted[id]; !ok {
				return ErrOrderMismatch
			}
			delete(waitlisted, id)
		}

		zap.L().Info("reordering waitlist", zap.Int("section_id", sectionID), zap.Int("count", len(orderedIDs)))
		return s.repo.RewritePositions(ctx, orderedIDs)
	})
}

func (s *Service) renumber(ctx context.Context, sectionID int) error {
	remaining, err := s.repo.FindWaitlisted(ctx, sectionID)
	if err != nil {
		return err
	}
	ids := make([]int, 0, len(remaining))
	for _, e := range remaining {
		ids = append(ids, e.ID)
	}
	return s.repo.RewritePositions(ctx, ids)
}
