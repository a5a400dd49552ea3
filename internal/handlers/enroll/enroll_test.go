package enroll

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DPogorelov/enrollment/internal/domain"
	"github.com/DPogorelov/enrollment/internal/dto"
	"github.com/DPogorelov/enrollment/internal/service/enrollmentservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*EnrollHandler, *MockService) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func TestSignup(t *testing.T) {
	position := 1

	tests := []struct {
		name           string
		body           string
		prepareMock    func(service *MockService)
		expectedStatus int
		checkBody      func(t *testing.T, body []byte)
	}{
		{
			name: "admitted signup",
			body: `{"section_id": 1, "payment_session_ref": "cs_1"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Signup(gomock.Any(), 1, "cs_1").
					Return(&domain.Enrollment{ID: 10, SectionID: 1, PaymentStatus: enrollmentservice.PendingStatus}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				var resp dto.SignupResponseDTO
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, 10, resp.EnrollmentID)
				assert.Equal(t, enrollmentservice.PendingStatus, resp.PaymentStatus)
				assert.Nil(t, resp.WaitlistPosition)
			},
		},
		{
			name: "waitlisted signup returns its position",
			body: `{"section_id": 1, "payment_session_ref": "cs_1"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Signup(gomock.Any(), 1, "cs_1").
					Return(&domain.Enrollment{ID: 11, SectionID: 1, PaymentStatus: enrollmentservice.WaitlistedStatus, WaitlistPosition: &position}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				var resp dto.SignupResponseDTO
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, enrollmentservice.WaitlistedStatus, resp.PaymentStatus)
				assert.NotNil(t, resp.WaitlistPosition)
				assert.Equal(t, 1, *resp.WaitlistPosition)
			},
		},
		{
			name:           "malformed body",
			body:           `not json`,
			prepareMock:    func(service *MockService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing session ref",
			body:           `{"section_id": 1}`,
			prepareMock:    func(service *MockService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "non-positive section id",
			body:           `{"section_id": 0, "payment_session_ref": "cs_1"}`,
			prepareMock:    func(service *MockService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown section",
			body: `{"section_id": 99, "payment_session_ref": "cs_1"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Signup(gomock.Any(), 99, "cs_1").
					Return(nil, enrollmentservice.ErrSectionNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "closed section",
			body: `{"section_id": 1, "payment_session_ref": "cs_1"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Signup(gomock.Any(), 1, "cs_1").
					Return(nil, enrollmentservice.ErrSectionClosed)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "internal error",
			body: `{"section_id": 1, "payment_session_ref": "cs_1"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Signup(gomock.Any(), 1, "cs_1").
					Return(nil, errors.New("some error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := httptest.NewRequest(http.MethodPost, "/api/signup", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler.Signup(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.checkBody != nil {
				tt.checkBody(t, rr.Body.Bytes())
			}
		})
	}
}

func TestConfirmPayment(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		prepareMock    func(service *MockService)
		expectedStatus int
	}{
		{
			name: "confirmed",
			body: `{"payment_session_ref": "cs_1"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().ConfirmPayment(gomock.Any(), "cs_1").
					Return(&domain.Enrollment{ID: 10, SectionID: 1, PaymentStatus: enrollmentservice.PaidStatus}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing session ref",
			body:           `{}`,
			prepareMock:    func(service *MockService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown session",
			body: `{"payment_session_ref": "cs_1"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().ConfirmPayment(gomock.Any(), "cs_1").
					Return(nil, enrollmentservice.ErrEnrollmentNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "not awaiting payment",
			body: `{"payment_session_ref": "cs_1"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().ConfirmPayment(gomock.Any(), "cs_1").
					Return(nil, enrollmentservice.ErrNotPending)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := httptest.NewRequest(http.MethodPost, "/api/payments/confirm", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler.ConfirmPayment(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestGetSections(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().GetSections(gomock.Any()).Return([]domain.Section{
		{ID: 1, Label: "A", MaxCapacity: 5, EnrolledCount: 5, Status: enrollmentservice.SectionOpen},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/sections", http.NoBody)
	rr := httptest.NewRecorder()
	handler.GetSections(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp []dto.SectionResponseDTO
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
	assert.Equal(t, 5, resp[0].EnrolledCount)
}

func TestGetSections_Error(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().GetSections(gomock.Any()).Return(nil, errors.New("some error"))

	req := httptest.NewRequest(http.MethodGet, "/api/sections", http.NoBody)
	rr := httptest.NewRecorder()
	handler.GetSections(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
