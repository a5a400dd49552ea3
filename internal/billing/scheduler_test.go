package billing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DPogorelov/enrollment/internal/config"
	"github.com/DPogorelov/enrollment/internal/gateway"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockGateway) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := NewMockGateway(ctrl)
	cfg := &config.Config{CourseID: "cohort-1", SchedulerInterval: time.Second}
	service := New(cfg, gw)
	service.now = func() time.Time {
		return time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	}
	return service, gw
}

func balanceInvoice(id, course, scheduledDate string) gateway.Invoice {
	return gateway.Invoice{
		ID:         id,
		CustomerID: "cus_" + id,
		Status:     gateway.StatusDraft,
		Metadata: map[string]string{
			gateway.MetaType:          gateway.KindBalance,
			gateway.MetaCourseID:      course,
			gateway.MetaScheduledDate: scheduledDate,
		},
	}
}

func TestService_Start(t *testing.T) {
	service, _ := NewMock(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go service.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
}

func TestRun_DateFilter(t *testing.T) {
	service, gw := NewMock(t)

	yesterday := balanceInvoice("in_1", "cohort-1", "2025-03-13")
	today := balanceInvoice("in_2", "cohort-1", "2025-03-14")
	tomorrow := balanceInvoice("in_3", "cohort-1", "2025-03-15")

	gw.EXPECT().ListDraftInvoices(gomock.Any(), "").
		Return([]gateway.Invoice{yesterday, today, tomorrow}, "", nil)
	gw.EXPECT().Finalize(gomock.Any(), "in_1").Return(nil)
	gw.EXPECT().Pay(gomock.Any(), "in_1").Return(nil)
	gw.EXPECT().Finalize(gomock.Any(), "in_2").Return(nil)
	gw.EXPECT().Pay(gomock.Any(), "in_2").Return(nil)

	report, err := service.Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 2, report.Found)
	assert.Equal(t, 2, report.Finalized)
	assert.Equal(t, 0, report.Failed)
	assert.Empty(t, report.FailedIDs)
}

func TestRun_FailureIsolation(t *testing.T) {
	service, gw := NewMock(t)

	first := balanceInvoice("in_1", "cohort-1", "2025-03-13")
	second := balanceInvoice("in_2", "cohort-1", "2025-03-13")

	gw.EXPECT().ListDraftInvoices(gomock.Any(), "").
		Return([]gateway.Invoice{first, second}, "", nil)
	gw.EXPECT().Finalize(gomock.Any(), "in_1").Return(errors.New("already finalized"))
	gw.EXPECT().Finalize(gomock.Any(), "in_2").Return(nil)
	gw.EXPECT().Pay(gomock.Any(), "in_2").Return(nil)

	report, err := service.Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 2, report.Found)
	assert.Equal(t, 1, report.Finalized)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, []string{"in_1"}, report.FailedIDs)
}

func TestRun_PayFailureIsCounted(t *testing.T) {
	service, gw := NewMock(t)

	invoice := balanceInvoice("in_1", "cohort-1", "2025-03-14")

	gw.EXPECT().ListDraftInvoices(gomock.Any(), "").
		Return([]gateway.Invoice{invoice}, "", nil)
	gw.EXPECT().Finalize(gomock.Any(), "in_1").Return(nil)
	gw.EXPECT().Pay(gomock.Any(), "in_1").Return(errors.New("card declined"))

	report, err := service.Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, report.Found)
	assert.Equal(t, 0, report.Finalized)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, []string{"in_1"}, report.FailedIDs)
}

func TestRun_SkipsUnrelatedObligations(t *testing.T) {
	service, gw := NewMock(t)

	deposit := balanceInvoice("in_1", "cohort-1", "2025-03-13")
	deposit.Metadata[gateway.MetaType] = gateway.KindDeposit
	otherCourse := balanceInvoice("in_2", "another-course", "2025-03-13")
	badDate := balanceInvoice("in_3", "cohort-1", "not-a-date")
	noMetadata := gateway.Invoice{ID: "in_4", Status: gateway.StatusDraft}

	gw.EXPECT().ListDraftInvoices(gomock.Any(), "").
		Return([]gateway.Invoice{deposit, otherCourse, badDate, noMetadata}, "", nil)

	report, err := service.Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 0, report.Found)
	assert.Equal(t, 0, report.Finalized)
	assert.Equal(t, 0, report.Failed)
}

func TestRun_Pagination(t *testing.T) {
	service, gw := NewMock(t)

	pageOne := balanceInvoice("in_1", "cohort-1", "2025-03-13")
	pageTwo := balanceInvoice("in_2", "cohort-1", "2025-03-13")

	gw.EXPECT().ListDraftInvoices(gomock.Any(), "").
		Return([]gateway.Invoice{pageOne}, "token-2", nil)
	gw.EXPECT().Finalize(gomock.Any(), "in_1").Return(nil)
	gw.EXPECT().Pay(gomock.Any(), "in_1").Return(nil)
	gw.EXPECT().ListDraftInvoices(gomock.Any(), "token-2").
		Return([]gateway.Invoice{pageTwo}, "", nil)
	gw.EXPECT().Finalize(gomock.Any(), "in_2").Return(nil)
	gw.EXPECT().Pay(gomock.Any(), "in_2").Return(nil)

	report, err := service.Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 2, report.Found)
	assert.Equal(t, 2, report.Finalized)
}

func TestRun_ListErrorAbortsRun(t *testing.T) {
	service, gw := NewMock(t)

	gw.EXPECT().ListDraftInvoices(gomock.Any(), "").
		Return(nil, "", errors.New("gateway unavailable"))

	report, err := service.Run(context.Background())
	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestRun_RejectsConcurrentRun(t *testing.T) {
	service, _ := NewMock(t)

	assert.True(t, service.running.TryAcquire(1))
	defer service.running.Release(1)

	report, err := service.Run(context.Background())
	assert.ErrorIs(t, err, ErrRunInProgress)
	assert.Nil(t, report)
}

func TestRun_CanceledContext(t *testing.T) {
	service, _ := NewMock(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := service.Run(ctx)
	assert.Error(t, err)
	assert.Nil(t, report)
}
