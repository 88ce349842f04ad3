package authService

import (
	"errors"
	"time"

	"FinanceTracker/internal/api/auth"
	"FinanceTracker/internal/entity"
	contextPkg "FinanceTracker/pkg/context"
	"FinanceTracker/pkg/credential"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *authService) Register(ctx context.Context, req auth.RegisterRequest) (auth.UserSummaryResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return auth.UserSummaryResponse{}, err
	}

	exists, err := repo.Users.ExistsByUsername(ctx, req.Username)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to check username existence")
		return auth.UserSummaryResponse{}, err
	}

	if exists {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"username":   req.Username,
		}).Warn("Username already taken")
		return auth.UserSummaryResponse{}, auth.ErrUsernameAlreadyExists
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return auth.UserSummaryResponse{}, err
	}

	user := entity.User{
		ID:                ULID,
		Username:          req.Username,
		Password:          req.Password,
		DisplayName:       req.Username,
		PreferredCurrency: entity.DefaultCurrency,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}

	if err := repo.Users.CreateUser(ctx, user); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create user")
		return auth.UserSummaryResponse{}, err
	}

	return makeUserSummary(user), nil
}

func (s *authService) Login(ctx context.Context, req auth.LoginRequest) (auth.UserSummaryResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return auth.UserSummaryResponse{}, err
	}

	user, err := repo.Users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"username":   req.Username,
			}).Warn("Login attempt for unknown username")
			return auth.UserSummaryResponse{}, auth.ErrInvalidCredentials
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get user by username")
		return auth.UserSummaryResponse{}, err
	}

	if err := s.verifier.Verify(user.Password, req.Password); err != nil {
		if errors.Is(err, credential.ErrMismatch) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"username":   req.Username,
			}).Warn("Login attempt with wrong password")
			return auth.UserSummaryResponse{}, auth.ErrInvalidCredentials
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to verify credentials")
		return auth.UserSummaryResponse{}, err
	}

	return makeUserSummary(user), nil
}

func makeUserSummary(user entity.User) auth.UserSummaryResponse {
	goal := decimal.Zero
	if user.MonthlyIncomeGoal.Valid {
		goal = user.MonthlyIncomeGoal.Decimal
	}

	return auth.UserSummaryResponse{
		UserID:            user.ID,
		Username:          user.Username,
		DisplayName:       user.DisplayName,
		PreferredCurrency: user.PreferredCurrency,
		MonthlyIncomeGoal: goal,
	}
}
