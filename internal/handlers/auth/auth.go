package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/DPogorelov/enrollment/internal/domain"
	"github.com/DPogorelov/enrollment/internal/dto"
	"github.com/DPogorelov/enrollment/internal/service/authservice"
	"github.com/DPogorelov/enrollment/pkg/utils"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Service interface {
	Authenticate(ctx context.Context, login, password string) (*domain.Admin, error)
	GenerateToken(adminID int) (string, error)
}

type Limiter interface {
	Allow(key string) bool
}

type AuthHandler struct {
	authService Service
	limiter     Limiter
}

func New(authService Service, limiter Limiter) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		limiter:     limiter,
	}
}

// Login godoc
//
//	@Summary		Authenticate admin
//	@Description	Log in with an admin account and get a JWT token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		429		{object}	utils.Response	"Too many login attempts"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if !h.limiter.Allow(r.RemoteAddr) {
		utils.RespondWithError(w, http.StatusTooManyRequests, "Too many login attempts, try again later")
		return
	}

	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	admin, err := h.authService.Authenticate(r.Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidCredentials) {
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	token, err := h.authService.GenerateToken(admin.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Message: "Successfully authenticated",
	})
}
