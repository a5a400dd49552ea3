package billing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DPogorelov/enrollment/internal/config"
	"github.com/DPogorelov/enrollment/internal/gateway"
	"github.com/DPogorelov/enrollment/pkg/validate"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

// maxScan bounds a run against unbounded growth of the processor-side
// draft list.
const maxScan = 10000

type Gateway interface {
	ListDraftInvoices(ctx context.Context, pageToken string) ([]gateway.Invoice, string, error)
	Finalize(ctx context.Context, invoiceID string) error
	Pay(ctx context.Context, invoiceID string) error
}

// Report summarizes one scheduler run. FailedIDs is the actionable remainder:
// those obligations are never retried automatically and need a human to look
// at the processor side.
type Report struct {
	Found     int      `json:"found"`
	Finalized int      `json:"finalized"`
	Failed    int      `json:"failed"`
	FailedIDs []string `json:"failed_ids"`
}

var ErrRunInProgress = errors.New("balance run already in progress")

type Service struct {
	gw       Gateway
	courseID string
	interval time.Duration
	running  *semaphore.Weighted
	now      func() time.Time
}

func New(cfg *config.Config, gw Gateway) *Service {
	return &Service{
		gw:       gw,
		courseID: cfg.CourseID,
		interval: cfg.SchedulerInterval,
		running:  semaphore.NewWeighted(1),
		now:      time.Now,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Balance scheduler started", zap.Duration("interval", s.interval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping balance scheduler")
			return
		case <-ticker.C:
			if _, err := s.Run(ctx); err != nil && !errors.Is(err, ErrRunInProgress) {
				zap.L().Error("Balance run failed", zap.Error(err))
			}
		}
	}
}

// Run performs one reconciliation pass: list draft obligations page by page,
// pick the due balance obligations for this course, and finalize then pay
// each one. Obligations are processed strictly sequentially and a failure on
// one never aborts the rest; failed IDs are reported, not retried.
func (s *Service) Run(ctx context.Context) (*Report, error) {
	if !s.running.TryAcquire(1) {
		return nil, ErrRunInProgress
	}
	defer s.running.Release(1)

	today := s.now().UTC().Format(time.DateOnly)
	report := &Report{FailedIDs: []string{}}

	pageToken := ""
	scanned := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		items, next, err := s.gw.ListDraftInvoices(ctx, pageToken)
		if err != nil {
			return nil, fmt.Errorf("can't list draft obligations: %w", err)
		}

		for _, invoice := range items {
			scanned++
			if !s.isDue(invoice, today) {
				continue
			}
			report.Found++

			if err := s.settle(ctx, invoice.ID); err != nil {
				zap.L().Warn("Obligation failed, continuing run",
					zap.String("invoice_id", invoice.ID),
					zap.String("customer_id", invoice.CustomerID),
					zap.Error(err),
				)
				report.Failed++
				report.FailedIDs = append(report.FailedIDs, invoice.ID)
				continue
			}
			report.Finalized++
		}

		if next == "" || scanned >= maxScan {
			break
		}
		pageToken = next
	}

	zap.L().Info("Balance run finished",
		zap.Int("found", report.Found),
		zap.Int("finalized", report.Finalized),
		zap.Int("failed", report.Failed),
		zap.Strings("failed_ids", report.FailedIDs),
	)
	return report, nil
}

func (s *Service) isDue(invoice gateway.Invoice, today string) bool {
	if invoice.Metadata[gateway.MetaType] != gateway.KindBalance {
		return false
	}
	if invoice.Metadata[gateway.MetaCourseID] != s.courseID {
		return false
	}
	scheduled := invoice.Metadata[gateway.MetaScheduledDate]
	if !validate.IsISODate(scheduled) {
		zap.L().Warn("Obligation has no valid scheduled date, skipping",
			zap.String("invoice_id", invoice.ID),
			zap.String("scheduled_date", scheduled),
		)
		return false
	}
	return validate.IsOnOrBefore(scheduled, today)
}

// settle drives one obligation DRAFT -> FINALIZED -> PAID as a single logical
// step. A processor rejection of either call, including a double-finalize
// from an earlier partial run, is a per-item failure.
func (s *Service) settle(ctx context.Context, invoiceID string) error {
	if err := s.gw.Finalize(ctx, invoiceID); err != nil {
		return fmt.Errorf("finalize: %w", err)
	}
	if err := s.gw.Pay(ctx, invoiceID); err != nil {
		return fmt.Errorf("pay: %w", err)
	}
	return nil
}
