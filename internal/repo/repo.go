package repo

import (
	"github.com/DPogorelov/enrollment/internal/pg"
	adminrepo "github.com/DPogorelov/enrollment/internal/repo/admin-repo"
	enrollmentrepo "github.com/DPogorelov/enrollment/internal/repo/enrollment-repo"
	sectionrepo "github.com/DPogorelov/enrollment/internal/repo/section-repo"
)

type Repositories struct {
	SectionRepo    *sectionrepo.Repository
	EnrollmentRepo *enrollmentrepo.Repository
	AdminRepo      *adminrepo.Repository
	TXManager      pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		SectionRepo:    sectionrepo.New(conn),
		EnrollmentRepo: enrollmentrepo.New(conn),
		AdminRepo:      adminrepo.New(conn),
		TXManager:      txManager,
	}
}
