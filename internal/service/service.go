package service

import (
	enrollhandlers "github.com/DPogorelov/enrollment/internal/handlers/enroll"
	waitlisthandlers "github.com/DPogorelov/enrollment/internal/handlers/waitlist"

	pkgauth "github.com/DPogorelov/enrollment/pkg/auth"

	"github.com/DPogorelov/enrollment/internal/repo"
	authservice "github.com/DPogorelov/enrollment/internal/service/authservice"
	enrollmentservice "github.com/DPogorelov/enrollment/internal/service/enrollmentservice"
	waitlistservice "github.com/DPogorelov/enrollment/internal/service/waitlistservice"
)

type Services struct {
	AuthService     *authservice.Service
	EnrollService   enrollhandlers.Service
	WaitlistService waitlisthandlers.Service
}

func New(repo *repo.Repositories, jwtService pkgauth.JWTServiceInterface) *Services {
	enrollService := enrollmentservice.New(repo.EnrollmentRepo, repo.SectionRepo, repo.TXManager)
	waitlistService := waitlistservice.New(repo.EnrollmentRepo, repo.SectionRepo, repo.TXManager)
	authService := authservice.New(repo.AdminRepo, &pkgauth.HashService{}, jwtService)

	return &Services{
		AuthService:     authService,
		EnrollService:   enrollService,
		WaitlistService: waitlistService,
	}
}
