package handlers

import (
	"net/http"

	_ "github.com/DPogorelov/enrollment/docs"
	authhandlers "github.com/DPogorelov/enrollment/internal/handlers/auth"
	enrollhandlers "github.com/DPogorelov/enrollment/internal/handlers/enroll"
	schedulerhandlers "github.com/DPogorelov/enrollment/internal/handlers/scheduler"
	waitlisthandlers "github.com/DPogorelov/enrollment/internal/handlers/waitlist"
	"github.com/DPogorelov/enrollment/internal/service"
	"github.com/DPogorelov/enrollment/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
}

type EnrollHandler interface {
	Signup(w http.ResponseWriter, r *http.Request)
	ConfirmPayment(w http.ResponseWriter, r *http.Request)
	GetSections(w http.ResponseWriter, r *http.Request)
}

type WaitlistHandler interface {
	GetWaitlist(w http.ResponseWriter, r *http.Request)
	Reorder(w http.ResponseWriter, r *http.Request)
	RemoveFromWaitlist(w http.ResponseWriter, r *http.Request)
	RemoveEnrollment(w http.ResponseWriter, r *http.Request)
}

type SchedulerHandler interface {
	Run(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler      AuthHandler
	EnrollHandler    EnrollHandler
	WaitlistHandler  WaitlistHandler
	SchedulerHandler SchedulerHandler

	jwtService auth.JWTServiceInterface
}

func New(s *service.Services, runner schedulerhandlers.Runner, schedulerSecret string, limiter authhandlers.Limiter, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AuthHandler:      authhandlers.New(s.AuthService, limiter),
		EnrollHandler:    enrollhandlers.New(s.EnrollService),
		WaitlistHandler:  waitlisthandlers.New(s.WaitlistService),
		SchedulerHandler: schedulerhandlers.New(runner, schedulerSecret),
		jwtService:       jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/signup", h.EnrollHandler.Signup)
		r.Post("/payments/confirm", h.EnrollHandler.ConfirmPayment)
		r.Get("/sections", h.EnrollHandler.GetSections)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", h.AuthHandler.Login)
			r.Get("/scheduler/run", h.SchedulerHandler.Run)

			r.Group(func(r chi.Router) {
				r.Use(auth.Middleware(h.jwtService))
				r.Route("/sections/{sectionID}/waitlist", func(r chi.Router) {
					r.Get("/", h.WaitlistHandler.GetWaitlist)
					r.Patch("/", h.WaitlistHandler.Reorder)
				})
				r.Delete("/waitlist/{enrollmentID}", h.WaitlistHandler.RemoveFromWaitlist)
				r.Delete("/enrollments/{enrollmentID}", h.WaitlistHandler.RemoveEnrollment)
			})
		})
	})

	return r
}
