package authService

import (
	"FinanceTracker/internal/api/auth"
	authRepository "FinanceTracker/internal/api/auth/repository"
	"FinanceTracker/pkg/credential"
	"FinanceTracker/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IAuthService interface {
	Register(ctx context.Context, req auth.RegisterRequest) (auth.UserSummaryResponse, error)
	Login(ctx context.Context, req auth.LoginRequest) (auth.UserSummaryResponse, error)
	GetProfile(ctx context.Context, userID string) (auth.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID string, req auth.UpdateProfileRequest) (auth.ProfileResponse, error)
}

type authService struct {
	log            *logrus.Logger
	authRepository authRepository.Repository
	verifier       credential.Verifier
	utils          utils.IUtils
}

func NewAuthService(log *logrus.Logger, ar authRepository.Repository, verifier credential.Verifier, utils utils.IUtils) IAuthService {
	return &authService{
		log:            log,
		authRepository: ar,
		verifier:       verifier,
		utils:          utils,
	}
}
