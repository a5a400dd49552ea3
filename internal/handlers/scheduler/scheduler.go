package scheduler

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/DPogorelov/enrollment/internal/billing"
	"github.com/DPogorelov/enrollment/pkg/utils"
)

type Runner interface {
	Run(ctx context.Context) (*billing.Report, error)
}

type SchedulerHandler struct {
	runner Runner
	secret string
}

func New(runner Runner, secret string) *SchedulerHandler {
	return &SchedulerHandler{
		runner: runner,
		secret: secret,
	}
}

// Run godoc
//
//	@Summary		Run the balance scheduler
//	@Description	Finalize and charge every due balance obligation; invoked by the external cron with a shared secret
//	@Tags			Scheduler
//	@Produce		json
//	@Success		200	{object}	billing.Report
//	@Failure		401	{object}	utils.Response	"Missing or invalid secret"
//	@Failure		409	{object}	utils.Response	"A run is already in progress"
//	@Failure		502	{object}	utils.Response	"Payment gateway unavailable"
//	@Router			/api/admin/scheduler/run [get]
func (h *SchedulerHandler) Run(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	report, err := h.runner.Run(r.Context())
	if err != nil {
		if errors.Is(err, billing.ErrRunInProgress) {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusBadGateway, "Balance run failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, report)
}

// authorized checks the bearer secret in constant time. A missing header and
// a wrong secret are indistinguishable to the caller.
func (h *SchedulerHandler) authorized(r *http.Request) bool {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	return subtle.ConstantTimeCompare([]byte(token), []byte(h.secret)) == 1
}
