package authService

import (
	"strings"
	"time"

	"FinanceTracker/internal/api/auth"
	"FinanceTracker/internal/entity"
	contextPkg "FinanceTracker/pkg/context"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *authService) GetProfile(ctx context.Context, userID string) (auth.ProfileResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return auth.ProfileResponse{}, err
	}

	user, err := repo.Users.GetByID(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to get user by ID")
		return auth.ProfileResponse{}, err
	}

	return makeProfile(user), nil
}

func (s *authService) UpdateProfile(ctx context.Context, userID string, req auth.UpdateProfileRequest) (auth.ProfileResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return auth.ProfileResponse{}, err
	}

	user, err := repo.Users.GetByID(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to get user by ID")
		return auth.ProfileResponse{}, err
	}

	if req.DisplayName != nil && strings.TrimSpace(*req.DisplayName) != "" {
		user.DisplayName = strings.TrimSpace(*req.DisplayName)
	}

	if req.PreferredCurrency != nil && strings.TrimSpace(*req.PreferredCurrency) != "" {
		user.PreferredCurrency = strings.ToUpper(strings.TrimSpace(*req.PreferredCurrency))
	}

	if req.MonthlyIncomeGoal != nil && !req.MonthlyIncomeGoal.IsNegative() {
		user.MonthlyIncomeGoal = decimal.NullDecimal{Decimal: *req.MonthlyIncomeGoal, Valid: true}
	}

	user.UpdatedAt = time.Now()

	if err := repo.Users.UpdateProfile(ctx, user); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to update profile")
		return auth.ProfileResponse{}, err
	}

	return makeProfile(user), nil
}

func makeProfile(user entity.User) auth.ProfileResponse {
	var goal *decimal.NullDecimal
	if user.MonthlyIncomeGoal.Valid {
		goal = &user.MonthlyIncomeGoal
	}

	return auth.ProfileResponse{
		ID:                user.ID,
		Username:          user.Username,
		DisplayName:       user.DisplayName,
		PreferredCurrency: user.PreferredCurrency,
		MonthlyIncomeGoal: goal,
	}
}
