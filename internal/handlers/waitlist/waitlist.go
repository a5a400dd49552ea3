package waitlist

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/DPogorelov/enrollment/internal/domain"
	"github.com/DPogorelov/enrollment/internal/dto"
	"github.com/DPogorelov/enrollment/internal/service/waitlistservice"
	"github.com/DPogorelov/enrollment/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Service interface {
	List(ctx context.Context, sectionID int) ([]domain.Enrollment, error)
	RemoveFromWaitlist(ctx context.Context, enrollmentID int) error
	RemoveEnrollment(ctx context.Context, enrollmentID int) (string, error)
	Reorder(ctx context.Context, sectionID int, orderedIDs []int) error
}

type WaitlistHandler struct {
	waitlistService Service
}

func New(waitlistService Service) *WaitlistHandler {
	return &WaitlistHandler{
		waitlistService: waitlistService,
	}
}

// GetWaitlist godoc
//
//	@Summary		List a section's waitlist
//	@Description	Retrieve the waitlisted enrollments of a section in position order
//	@Tags			Waitlist
//	@Produce		json
//	@Param			sectionID	path	int	true	"Section ID"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.WaitlistEntryDTO
//	@Failure		400	{object}	utils.Response	"Invalid section id"
//	@Failure		401	{object}	utils.Response	"Admin not authorized"
//	@Failure		404	{object}	utils.Response	"Section not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/sections/{sectionID}/waitlist [get]
func (h *WaitlistHandler) GetWaitlist(w http.ResponseWriter, r *http.Request) {
	sectionID, err := strconv.Atoi(chi.URLParam(r, "sectionID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid section id")
		return
	}

	entries, err := h.waitlistService.List(r.Context(), sectionID)
	if err != nil {
		if errors.Is(err, waitlistservice.ErrSectionNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.WaitlistEntryDTO, 0, len(entries))
	for _, entry := range entries {
		position := 0
		if entry.WaitlistPosition != nil {
			position = *entry.WaitlistPosition
		}
		response = append(response, dto.WaitlistEntryDTO{
			EnrollmentID: entry.ID,
			Position:     position,
			CreatedAt:    entry.CreatedAt.Format(time.RFC3339),
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Reorder godoc
//
//	@Summary		Reorder a section's waitlist
//	@Description	Overwrite waitlist positions; the body must list every waitlisted enrollment of the section exactly once
//	@Tags			Waitlist
//	@Accept			json
//	@Produce		json
//	@Param			sectionID	path	int					true	"Section ID"
//	@Param			request		body	dto.ReorderRequestDTO	true	"Full ordering for the section"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.RemoveResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid or incomplete ordering"
//	@Failure		401	{object}	utils.Response	"Admin not authorized"
//	@Failure		404	{object}	utils.Response	"Section not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/sections/{sectionID}/waitlist [patch]
func (h *WaitlistHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	sectionID, err := strconv.Atoi(chi.URLParam(r, "sectionID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid section id")
		return
	}

	var req dto.ReorderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Ordered ids must not be empty")
		return
	}

	if err := h.waitlistService.Reorder(r.Context(), sectionID, req.OrderedIDs); err != nil {
		switch {
		case errors.Is(err, waitlistservice.ErrSectionNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, waitlistservice.ErrEmptyOrder), errors.Is(err, waitlistservice.ErrOrderMismatch):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.RemoveResponseDTO{Success: true})
}

// RemoveFromWaitlist godoc
//
//	@Summary		Remove a waitlisted enrollment
//	@Description	Delete a waitlisted enrollment and renumber the remaining waitlist without gaps
//	@Tags			Waitlist
//	@Produce		json
//	@Param			enrollmentID	path	int	true	"Enrollment ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.RemoveResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid enrollment id"
//	@Failure		401	{object}	utils.Response	"Admin not authorized"
//	@Failure		404	{object}	utils.Response	"Enrollment not found"
//	@Failure		409	{object}	utils.Response	"Enrollment is not waitlisted"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/waitlist/{enrollmentID} [delete]
func (h *WaitlistHandler) RemoveFromWaitlist(w http.ResponseWriter, r *http.Request) {
	enrollmentID, err := strconv.Atoi(chi.URLParam(r, "enrollmentID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid enrollment id")
		return
	}

	if err := h.waitlistService.RemoveFromWaitlist(r.Context(), enrollmentID); err != nil {
		switch {
		case errors.Is(err, waitlistservice.ErrEnrollmentNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, waitlistservice.ErrNotWaitlisted):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.RemoveResponseDTO{Success: true})
}

// RemoveEnrollment godoc
//
//	@Summary		Remove any enrollment
//	@Description	Delete an enrollment regardless of payment status; removing a paid enrollment reports a refund warning
//	@Tags			Waitlist
//	@Produce		json
//	@Param			enrollmentID	path	int	true	"Enrollment ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.RemoveResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid enrollment id"
//	@Failure		401	{object}	utils.Response	"Admin not authorized"
//	@Failure		404	{object}	utils.Response	"Enrollment not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/enrollments/{enrollmentID} [delete]
func (h *WaitlistHandler) RemoveEnrollment(w http.ResponseWriter, r *http.Request) {
	enrollmentID, err := strconv.Atoi(chi.URLParam(r, "enrollmentID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid enrollment id")
		return
	}

	warning, err := h.waitlistService.RemoveEnrollment(r.Context(), enrollmentID)
	if err != nil {
		if errors.Is(err, waitlistservice.ErrEnrollmentNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.RemoveResponseDTO{Success: true, Warning: warning})
}
