package config

import (
	"fmt"
	"os"

	"FinanceTracker/database/postgres"
	authHandler "FinanceTracker/internal/api/auth/handler"
	authRepository "FinanceTracker/internal/api/auth/repository"
	authService "FinanceTracker/internal/api/auth/service"
	budgetHandler "FinanceTracker/internal/api/budget/handler"
	budgetRepository "FinanceTracker/internal/api/budget/repository"
	budgetService "FinanceTracker/internal/api/budget/service"
	categoryHandler "FinanceTracker/internal/api/category/handler"
	categoryRepository "FinanceTracker/internal/api/category/repository"
	categoryService "FinanceTracker/internal/api/category/service"
	transactionHandler "FinanceTracker/internal/api/transaction/handler"
	transactionRepository "FinanceTracker/internal/api/transaction/repository"
	transactionService "FinanceTracker/internal/api/transaction/service"
	"FinanceTracker/internal/middleware"
	"FinanceTracker/pkg/credential"
	"FinanceTracker/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine     *fiber.App
	db         *sqlx.DB
	log        *logrus.Logger
	middleware middleware.Middleware
	validator  *validator.Validate
	utils      utils.IUtils
	verifier   credential.Verifier
	handlers   []handler

	categoryRepo categoryRepository.Repository
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}

		if err := postgres.RunMigrations(db); err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to run migrations: %v", err)
			}
			return fmt.Errorf("failed to run migrations: %w", err)
		}

		s.db = db
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithCredentialVerifier(verifier credential.Verifier) ServerOption {
	return func(s *Server) error {
		s.verifier = verifier
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Auth Domain
	authRepo := authRepository.New(s.db, s.log)
	authServices := authService.NewAuthService(s.log, authRepo, s.verifier, s.utils)
	authHandlers := authHandler.New(s.log, s.validator, s.middleware, authServices)

	// Category Domain
	categoryRepo := categoryRepository.New(s.db, s.log)
	categoryServices := categoryService.NewCategoryService(s.log, categoryRepo, s.utils)
	categoryHandlers := categoryHandler.New(s.log, s.validator, s.middleware, categoryServices)
	s.categoryRepo = categoryRepo

	// Budget Domain
	budgetRepo := budgetRepository.New(s.db, s.log)
	budgetServices := budgetService.NewBudgetService(s.log, budgetRepo, authRepo, categoryRepo, s.utils)
	budgetHandlers := budgetHandler.New(s.log, s.validator, s.middleware, budgetServices)

	// Transaction Domain
	transactionRepo := transactionRepository.New(s.db, s.log)
	transactionServices := transactionService.NewTransactionService(s.log, transactionRepo, authRepo, categoryRepo, s.utils)
	transactionHandlers := transactionHandler.New(s.log, s.validator, s.middleware, transactionServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, authHandlers, categoryHandlers, budgetHandlers, transactionHandlers)
}

func (s *Server) Run() error {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())

	router := s.engine.Group("/api")

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) Shutdown() error {
	if s.db != nil {
		defer s.db.Close()
	}
	return s.engine.Shutdown()
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
