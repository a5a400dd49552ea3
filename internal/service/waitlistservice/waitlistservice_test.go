package waitlistservice

import (
	"context"
	"errors"
	"testing"

	"github.com/DPogorelov/enrollment/internal/domain"
	"github.com/DPogorelov/enrollment/internal/pg"
	"github.com/DPogorelov/enrollment/internal/service/enrollmentservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockSectionRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	sections := NewMockSectionRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(repo, sections, txManager)
	return service, repo, sections, txManager
}

func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func waitlisted(id, sectionID, position int) domain.Enrollment {
	return domain.Enrollment{
		ID:               id,
		SectionID:        sectionID,
		PaymentStatus:    enrollmentservice.WaitlistedStatus,
		WaitlistPosition: &position,
	}
}

func TestList(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(repo *MockRepo, sections *MockSectionRepo)
		expectedLen   int
		expectedError error
	}{
		{
			name: "returns waitlist in position order",
			prepareMock: func(repo *MockRepo, sections *MockSectionRepo) {
				sections.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Section{ID: 1}, nil)
				repo.EXPECT().FindWaitlisted(gomock.Any(), 1).
					Return([]domain.Enrollment{waitlisted(3, 1, 1), waitlisted(5, 1, 2)}, nil)
			},
			expectedLen: 2,
		},
		{
			name: "unknown section",
			prepareMock: func(repo *MockRepo, sections *MockSectionRepo) {
				sections.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrSectionNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, sections, _ := NewMock(t)
			tt.prepareMock(repo, sections)

			result, err := service.List(context.Background(), 1)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, result, tt.expectedLen)
		})
	}
}

func TestRemoveFromWaitlist(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(repo *MockRepo, sections *MockSectionRepo, txManager *pg.MockTXManager)
		expectedError error
	}{
		{
			name: "removal renumbers the remaining waitlist",
			prepareMock: func(repo *MockRepo, sections *MockSectionRepo, txManager *pg.MockTXManager) {
				passthroughTx(txManager)
				repo.EXPECT().FindByID(gomock.Any(), 3).Return(ptr(waitlisted(3, 1, 1)), nil)
				sections.EXPECT().LockForUpdate(gomock.Any(), 1).Return(&domain.Section{ID: 1}, nil)
				repo.EXPECT().Delete(gomock.Any(), 3).Return(nil)
				repo.EXPECT().FindWaitlisted(gomock.Any(), 1).
					Return([]domain.Enrollment{waitlisted(5, 1, 2)}, nil)
				repo.EXPECT().RewritePositions(gomock.Any(), []int{5}).Return(nil)
			},
		},
		{
			name: "unknown enrollment",
			prepareMock: func(repo *MockRepo, sections *MockSectionRepo, txManager *pg.MockTXManager) {
				passthroughTx(txManager)
				repo.EXPECT().FindByID(gomock.Any(), 3).Return(nil, nil)
			},
			expectedError: ErrEnrollmentNotFound,
		},
		{
			name: "paid enrollment is rejected untouched",
			prepareMock: func(repo *MockRepo, sections *MockSectionRepo, txManager *pg.MockTXManager) {
				passthroughTx(txManager)
				repo.EXPECT().FindByID(gomock.Any(), 3).
					Return(&domain.Enrollment{ID: 3, SectionID: 1, PaymentStatus: enrollmentservice.PaidStatus}, nil)
			},
			expectedError: ErrNotWaitlisted,
		},
		{
			name: "pending enrollment is rejected untouched",
			prepareMock: func(repo *MockRepo, sections *MockSectionRepo, txManager *pg.MockTXManager) {
				passthroughTx(txManager)
				repo.EXPECT().FindByID(gomock.Any(), 3).
					Return(&domain.Enrollment{ID: 3, SectionID: 1, PaymentStatus: enrollmentservice.PendingStatus}, nil)
			},
			expectedError: ErrNotWaitlisted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, sections, txManager := NewMock(t)
			tt.prepareMock(repo, sections, txManager)

			err := service.RemoveFromWaitlist(context.Background(), 3)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRemoveEnrollment(t *testing.T) {
	tests := []struct {
		name            string
		prepareMock     func(repo *MockRepo, sections *MockSectionRepo, txManager *pg.MockTXManager)
		expectedWarning string
		expectedError   error
	}{
		{
			name: "paid removal releases the seat and warns about a refund",
			prepareMock: func(repo *MockRepo, sections *MockSectionRepo, txManager *pg.MockTXManager) {
				passthroughTx(txManager)
				repo.EXPECT().FindByID(gomock.Any(), 3).
					Return(&domain.Enrollment{ID: 3, SectionID: 1, PaymentStatus: enrollmentservice.PaidStatus}, nil)
				sections.EXPECT().LockForUpdate(gomock.Any(), 1).Return(&domain.Section{ID: 1}, nil)
				repo.EXPECT().Delete(gomock.Any(), 3).Return(nil)
				sections.EXPECT().AdjustEnrolled(gomock.Any(), 1, -1).Return(nil)
			},
			expectedWarning: RefundWarning,
		},
		{
			name: "pending removal releases the seat without warning",
			prepareMock: func(repo *MockRepo, sections *MockSectionRepo, txManager *pg.MockTXManager) {
				passthroughTx(txManager)
				repo.EXPECT().FindByID(gomock.Any(), 3).
					Return(&domain.Enrollment{ID: 3, SectionID: 1, PaymentStatus: enrollmentservice.PendingStatus}, nil)
				sections.EXPECT().LockForUpdate(gomock.Any(), 1).Return(&domain.Section{ID: 1}, nil)
				repo.EXPECT().Delete(gomock.Any(), 3).Return(nil)
				sections.EXPECT().AdjustEnrolled(gomock.Any(), 1, -1).Return(nil)
			},
		},
		{
			name: "waitlisted removal renumbers instead of touching the seat count",
			prepareMock: func(repo *MockRepo, sections *MockSectionRepo, txManager *pg.MockTXManager) {
				passthroughTx(txManager)
				repo.EXPECT().FindByID(gomock.Any(), 3).Return(ptr(waitlisted(3, 1, 1)), nil)
				sections.EXPECT().LockForUpdate(gomock.Any(), 1).Return(&domain.Section{ID: 1}, nil)
				repo.EXPECT().Delete(gomock.Any(), 3).Return(nil)
				repo.EXPECT().FindWaitlisted(gomock.Any(), 1).
					Return([]domain.Enrollment{waitlisted(5, 1, 2), waitlisted(7, 1, 3)}, nil)
				repo.EXPECT().RewritePositions(gomock.Any(), []int{5, 7}).Return(nil)
			},
		},
		{
			name: "unknown enrollment",
			prepareMock: func(repo *MockRepo, sections *MockSectionRepo, txManager *pg.MockTXManager) {
				passthroughTx(txManager)
				repo.EXPECT().FindByID(gomock.Any(), 3).Return(nil, nil)
			},
			expectedError: ErrEnrollmentNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, sections, txManager := NewMock(t)
			tt.prepareMock(repo, sections, txManager)

			warning, err := service.RemoveEnrollment(context.Background(), 3)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedWarning, warning)
		})
	}
}

func TestReorder(t *testing.T) {
	current := []domain.Enrollment{waitlisted(1, 1, 1), waitlisted(2, 1, 2), waitlisted(3, 1, 3)}

	tests := []struct {
		name          string
		orderedIDs    []int
		prepareMock   func(repo *MockRepo, sections *MockSectionRepo, txManager *pg.MockTXManager)
		expectedError error
	}{
		{
			name:       "complete permutation rewrites positions",
			orderedIDs: []int{3, 1, 2},
			prepareMock: func(repo *MockRepo, sections *MockSectionRepo, txManager *pg.MockTXManager) {
				passthroughTx(txManager)
				sections.EXPECT().LockForUpdate(gomock.Any(), 1).Return(&domain.Section{ID: 1}, nil)
				repo.EXPECT().FindWaitlisted(gomock.Any(), 1).Return(current, nil)
				repo.EXPECT().RewritePositions(gomock.Any(), []int{3, 1, 2}).Return(nil)
			},
		},
		{
			name:          "empty order",
			orderedIDs:    nil,
			prepareMock:   func(repo *MockRepo, sections *MockSectionRepo, txManager *pg.MockTXManager) {},
			expectedError: ErrEmptyOrder,
		},
		{
			name:       "unknown section",
			orderedIDs: []int{1},
			prepareMock: func(repo *MockRepo, sections *MockSectionRepo, txManager *pg.MockTXManager) {
				passthroughTx(txManager)
				sections.EXPECT().LockForUpdate(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrSectionNotFound,
		},
		{
			name:       "partial list is rejected",
			orderedIDs: []int{3, 1},
			prepareMock: func(repo *MockRepo, sections *MockSectionRepo, txManager *pg.MockTXManager) {
				passthroughTx(txManager)
				sections.EXPECT().LockForUpdate(gomock.Any(), 1).Return(&domain.Section{ID: 1}, nil)
				repo.EXPECT().FindWaitlisted(gomock.Any(), 1).Return(current, nil)
			},
			expectedError: ErrOrderMismatch,
		},
		{
			name:       "duplicate id is rejected",
			orderedIDs: []int{3, 1, 1},
			prepareMock: func(repo *MockRepo, sections *MockSectionRepo, txManager *pg.MockTXManager) {
				passthroughTx(txManager)
				sections.EXPECT().LockForUpdate(gomock.Any(), 1).Return(&domain.Section{ID: 1}, nil)
				repo.EXPECT().FindWaitlisted(gomock.Any(), 1).Return(current, nil)
			},
			expectedError: ErrOrderMismatch,
		},
		{
			name:       "foreign id is rejected",
			orderedIDs: []int{3, 1, 99},
			prepareMock: func(repo *MockRepo, sections *MockSectionRepo, txManager *pg.MockTXManager) {
				passthroughTx(txManager)
				sections.EXPECT().LockForUpdate(gomock.Any(), 1).Return(&domain.Section{ID: 1}, nil)
				repo.EXPECT().FindWaitlisted(gomock.Any(), 1).Return(current, nil)
			},
			expectedError: ErrOrderMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, sections, txManager := NewMock(t)
			tt.prepareMock(repo, sections, txManager)

			err := service.Reorder(context.Background(), 1, tt.orderedIDs)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReorder_TxErrorIsPropagated(t *testing.T) {
	service, _, _, txManager := NewMock(t)

	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).Return(errors.New("some error"))

	err := service.Reorder(context.Background(), 1, []int{1})
	assert.Error(t, err)
}

func ptr(e domain.Enrollment) *domain.Enrollment { return &e }
