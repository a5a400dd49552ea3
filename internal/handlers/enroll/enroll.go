package enroll

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/DPogorelov/enrollment/internal/domain"
	"github.com/DPogorelov/enrollment/internal/dto"
	"github.com/DPogorelov/enrollment/internal/service/enrollmentservice"
	"github.com/DPogorelov/enrollment/pkg/utils"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Service interface {
	Signup(ctx context.Context, sectionID int, sessionRef string) (*domain.Enrollment, error)
	ConfirmPayment(ctx context.Context, sessionRef string) (*domain.Enrollment, error)
	GetSections(ctx context.Context) ([]domain.Section, error)
}

type EnrollHandler struct {
	enrollService Service
}

func New(enrollService Service) *EnrollHandler {
	return &EnrollHandler{
		enrollService: enrollService,
	}
}

// Signup godoc
//
//	@Summary		Sign up for a section
//	@Description	Create an enrollment; admitted while seats remain, waitlisted otherwise. Repeating a signup with the same payment session returns the existing enrollment.
//	@Tags			Enrollments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SignupRequestDTO	true	"Signup request body"
//	@Success		200		{object}	dto.SignupResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Section not found"
//	@Failure		409		{object}	utils.Response	"Section closed for signups"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/signup [post]
func (h *EnrollHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	enrollment, err := h.enrollService.Signup(r.Context(), req.SectionID, req.PaymentSessionRef)
	if err != nil {
		switch {
		case errors.Is(err, enrollmentservice.ErrSectionNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, enrollmentservice.ErrSectionClosed):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.SignupResponseDTO{
		EnrollmentID:     enrollment.ID,
		SectionID:        enrollment.SectionID,
		PaymentStatus:    enrollment.PaymentStatus,
		WaitlistPosition: enrollment.WaitlistPosition,
	})
}

// ConfirmPayment godoc
//
//	@Summary		Confirm a deposit payment
//	@Description	Mark a pending enrollment as paid once the payment gateway confirms the session
//	@Tags			Enrollments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ConfirmPaymentRequestDTO	true	"Confirmation request body"
//	@Success		200		{object}	dto.SignupResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Enrollment not found"
//	@Failure		409		{object}	utils.Response	"Enrollment is not awaiting payment"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/payments/confirm [post]
func (h *EnrollHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	var req dto.ConfirmPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	enrollment, err := h.enrollService.ConfirmPayment(r.Context(), req.PaymentSessionRef)
	if err != nil {
		switch {
		case errors.Is(err, enrollmentservice.ErrEnrollmentNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, enrollmentservice.ErrNotPending):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.SignupResponseDTO{
		EnrollmentID:     enrollment.ID,
		SectionID:        enrollment.SectionID,
		PaymentStatus:    enrollment.PaymentStatus,
		WaitlistPosition: enrollment.WaitlistPosition,
	})
}

// GetSections godoc
//
//	@Summary		List sections
//	@Description	Retrieve every section with its capacity and current seat count
//	@Tags			Sections
//	@Produce		json
//	@Success		200	{array}		dto.SectionResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/sections [get]
func (h *EnrollHandler) GetSections(w http.ResponseWriter, r *http.Request) {
	sections, err := h.enrollService.GetSections(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.SectionResponseDTO, 0, len(sections))
	for _, section := range sections {
		response = append(response, dto.SectionResponseDTO{
			ID:            section.ID,
			Label:         section.Label,
			MaxCapacity:   section.MaxCapacity,
			EnrolledCount: section.EnrolledCount,
			Status:        section.Status,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
