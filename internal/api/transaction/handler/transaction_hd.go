package transactionHandler

import (
	"errors"
	"time"

	"FinanceTracker/internal/api/transaction"
	contextPkg "FinanceTracker/pkg/context"
	"FinanceTracker/pkg/handlerUtil"
	"FinanceTracker/pkg/log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

const dateLayout = "2006-01-02"

var errInvalidDate = errors.New("invalid date format, use YYYY-MM-DD")

func (h *TransactionHandler) GetTransactions(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get transactions request")

	userID := ctx.Query("userId")
	if userID == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("userId query parameter is required"), ctx.Path())
	}

	var (
		transactions []transaction.TransactionResponse
		err          error
	)

	categoryID := ctx.Query("categoryId")
	startDateRaw := ctx.Query("startDate")
	endDateRaw := ctx.Query("endDate")

	switch {
	case categoryID != "":
		transactions, err = h.transactionService.GetByUserAndCategory(c, userID, categoryID)
	case startDateRaw != "" || endDateRaw != "":
		startDate, parseErr := time.Parse(dateLayout, startDateRaw)
		if parseErr != nil {
			return errHandler.HandleValidationError(ctx, requestID, errInvalidDate, ctx.Path())
		}
		endDate, parseErr := time.Parse(dateLayout, endDateRaw)
		if parseErr != nil {
			return errHandler.HandleValidationError(ctx, requestID, errInvalidDate, ctx.Path())
		}
		transactions, err = h.transactionService.GetByUserAndDateRange(c, userID, startDate, endDate)
	default:
		transactions, err = h.transactionService.GetByUser(c, userID)
	}

	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_transactions")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, transactions)
	}
}

func (h *TransactionHandler) GetSummary(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing transaction summary request")

	userID := ctx.Query("userId")
	if userID == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("userId query parameter is required"), ctx.Path())
	}

	startDate, err := time.Parse(dateLayout, ctx.Query("startDate"))
	if err != nil {
		return errHandler.HandleValidationError(ctx, requestID, errInvalidDate, ctx.Path())
	}

	endDate, err := time.Parse(dateLayout, ctx.Query("endDate"))
	if err != nil {
		return errHandler.HandleValidationError(ctx, requestID, errInvalidDate, ctx.Path())
	}

	var summary transaction.SummaryResponse

	if categoryID := ctx.Query("categoryId"); categoryID != "" {
		summary, err = h.transactionService.SumByCategoryAndDateRange(c, userID, categoryID, startDate, endDate)
	} else {
		summary, err = h.transactionService.SumByDateRange(c, userID, startDate, endDate)
	}

	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_transaction_summary")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, summary)
	}
}

func (h *TransactionHandler) CreateTransaction(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing create transaction request")

	var req transaction.CreateTransactionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return errHandler.HandleValidationError(ctx, requestID, errInvalidDate, ctx.Path())
	}

	created, err := h.transactionService.Create(c, req, date)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_transaction")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, created)
	}
}

func (h *TransactionHandler) UpdateTransaction(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing update transaction request")

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("transaction ID is required"), ctx.Path())
	}

	var req transaction.UpdateTransactionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return errHandler.HandleValidationError(ctx, requestID, errInvalidDate, ctx.Path())
	}

	updated, err := h.transactionService.Update(c, id, req, date)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_transaction")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, updated)
	}
}

func (h *TransactionHandler) DeleteTransaction(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing delete transaction request")

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("transaction ID is required"), ctx.Path())
	}

	userID := ctx.Query("userId")
	if userID == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("userId query parameter is required"), ctx.Path())
	}

	if err := h.transactionService.Delete(c, id, userID); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_transaction")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusNoContent, nil)
	}
}
