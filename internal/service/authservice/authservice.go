package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/DPogorelov/enrollment/internal/domain"
	"github.com/DPogorelov/enrollment/pkg/auth"
	"go.uber.org/zap"
)

const tokenTTL = 24 * time.Hour

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.Admin, error)
	Create(ctx context.Context, admin *domain.Admin) (*domain.Admin, error)
}

type Service struct {
	adminRepo   Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		adminRepo:   repo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

var ErrInvalidCredentials = errors.New("invalid credentials")

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.Admin, error) {
	admin, err := s.adminRepo.FindByLogin(ctx, login)
	if err != nil || admin == nil {
		zap.L().Info("unknown admin login", zap.String("login", login))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(admin.PasswordHash, password); !ok {
		zap.L().Info("wrong admin password", zap.String("login", login))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("admin authenticated", zap.String("login", login))
	return admin, nil
}

func (s *Service) GenerateToken(adminID int) (string, error) {
	return s.jwtService.GenerateJWT(adminID, time.Now().Add(tokenTTL))
}

// EnsureAdmin creates the configured admin account on first start so the
// service never boots without a way to log in.
func (s *Service) EnsureAdmin(ctx context.Context, login, password string) error {
	existing, err := s.adminRepo.FindByLogin(ctx, login)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := s.hashService.HashPassword(password)
	if err != nil {
		return err
	}
	_, err = s.adminRepo.Create(ctx, &domain.Admin{Login: login, PasswordHash: hash})
	if err != nil {
		zap.L().Error("can't create admin account", zap.Error(err))
		return err
	}
	zap.L().Info("admin account created", zap.String("login", login))
	return nil
}
