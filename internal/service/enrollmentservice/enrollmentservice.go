package enrollmentservice

import (
	"context"
	"errors"

	"github.com/DPogorelov/enrollment/internal/domain"
	"github.com/DPogorelov/enrollment/internal/pg"
	"go.uber.org/zap"
)

type EnrollmentRepo interface {
	FindBySessionRef(ctx context.Context, sessionRef string) (*domain.Enrollment, error)
	Create(ctx context.Context, enrollment *domain.Enrollment) (*domain.Enrollment, error)
	MaxWaitlistPosition(ctx context.Context, sectionID int) (int, error)
	UpdateStatus(ctx context.Context, id int, status string) error
}

type SectionRepo interface {
	FindAll(ctx context.Context) ([]domain.Section, error)
	LockForUpdate(ctx context.Context, id int) (*domain.Section, error)
	AdjustEnrolled(ctx context.Context, id int, delta int) error
}

type Service struct {
	enrollments EnrollmentRepo
	sections    SectionRepo
	txManager   pg.TXManager
}

func New(enrollments EnrollmentRepo, sections SectionRepo, txManager pg.TXManager) *Service {
	return &Service{
		enrollments: enrollments,
		sections:    sections,
		txManager:   txManager,
	}
}

const (
	// PendingStatus: seat held, payment session opened but not confirmed.
	PendingStatus string = "PENDING"
	// PaidStatus: deposit confirmed by the payment gateway.
	PaidStatus string = "PAID"
	// WaitlistedStatus: section was full at signup time.
	WaitlistedStatus string = "WAITLISTED"
)

const (
	SectionOpen   string = "OPEN"
	SectionClosed string = "CLOSED"
)

var (
	ErrSectionNotFound    = errors.New("section not found")
	ErrSectionClosed      = errors.New("section is closed for signups")
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrNotPending         = errors.New("enrollment is not awaiting payment confirmation")
)

// Signup creates an enrollment for the section, admitting it while a seat is
// free and appending it to the waitlist otherwise. Seat check, creation and
// counter increment share one transaction so two concurrent signups cannot
// both take the last seat. A repeated signup with the same payment session
// reference returns the already-created enrollment.
func (s *Service) Signup(ctx context.Context, sectionID int, sessionRef string) (*domain.Enrollment, error) {
	existing, err := s.enrollments.FindBySessionRef(ctx, sessionRef)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		zap.L().Info("signup already processed for session", zap.String("session_ref", sessionRef))
		return existing, nil
	}

	enrollment := &domain.Enrollment{
		SectionID:         sectionID,
		PaymentSessionRef: sessionRef,
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		section, err := s.sections.LockForUpdate(ctx, sectionID)
		if err != nil {
			return err
		}
		if section == nil {
			return ErrSectionNotFound
		}
		if section.Status == SectionClosed {
			return ErrSectionClosed
		}

		if section.EnrolledCount < section.MaxCapacity {
			enrollment.PaymentStatus = PendingStatus
			if _, err := s.enrollments.Create(ctx, enrollment); err != nil {
				return err
			}
			return s.sections.AdjustEnrolled(ctx, sectionID, 1)
		}

		max, err := s.enrollments.MaxWaitlistPosition(ctx, sectionID)
		if err != nil {
			return err
		}
		position := max + 1
		enrollment.PaymentStatus = WaitlistedStatus
		enrollment.WaitlistPosition = &position
		_, err = s.enrollments.Create(ctx, enrollment)
		return err
	})
	if err != nil {
		// A concurrent signup with the same session ref loses the race on the
		// unique constraint; resolve it to the winner's row.
		if existing, findErr := s.enrollments.FindBySessionRef(ctx, sessionRef); findErr == nil && existing != nil {
			return existing, nil
		}
		zap.L().Error("can't process signup", zap.Error(err))
		return nil, err
	}

	if enrollment.PaymentStatus == WaitlistedStatus {
		zap.L().Info("enrollment waitlisted",
			zap.Int("section_id", sectionID),
			zap.Int("position", *enrollment.WaitlistPosition),
		)
	} else {
		zap.L().Info("enrollment admitted", zap.Int("section_id", sectionID))
	}
	return enrollment, nil
}

// ConfirmPayment moves a pending enrollment to paid once the gateway reports
// the deposit. Confirming an already-paid enrollment is a no-op.
func (s *Service) ConfirmPayment(ctx context.Context, sessionRef string) (*domain.Enrollment, error) {
	enrollment, err := s.enrollments.FindBySessionRef(ctx, sessionRef)
	if err != nil {
		return nil, err
	}
	if enrollment == nil {
		return nil, ErrEnrollmentNotFound
	}

	switch enrollment.PaymentStatus {
	case PaidStatus:
		return enrollment, nil
	case PendingStatus:
		if err := s.enrollments.UpdateStatus(ctx, enrollment.ID, PaidStatus); err != nil {
			return nil, err
		}
		enrollment.PaymentStatus = PaidStatus
		zap.L().Info("payment confirmed", zap.Int("enrollment_id", enrollment.ID))
		return enrollment, nil
	default:
		return nil, ErrNotPending
	}
}

func (s *Service) GetSections(ctx context.Context) ([]domain.Section, error) {
	sections, err := s.sections.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to get sections", zap.Error(err))
		return nil, err
	}
	return sections, nil
}
