package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"

	"github.com/clipquest/clipquest_backend/internal/apperrors"
	"github.com/clipquest/clipquest_backend/internal/core/domain"
	portssvc "github.com/clipquest/clipquest_backend/internal/core/ports/services"
	"github.com/clipquest/clipquest_backend/internal/dto"
	"github.com/clipquest/clipquest_backend/internal/middleware"
)

// walletHandler handles HTTP requests related to wallets and transactions.
type walletHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// RegisterWalletRoutes registers routes related to wallets.
func RegisterWalletRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade, walletLimiter *limiter.Limiter) {
	h := &walletHandler{ledgerService: ledgerService}
	limited := middleware.RateLimit(walletLimiter)

	wallet := rg.Group("/wallet")
	{
		wallet.GET("/balance", h.getBalance)
		wallet.GET("/transactions", h.listTransactions)
		wallet.POST("/topup", limited, h.topUp)
		wallet.POST("/payout", limited, h.requestPayout)
		wallet.PATCH("/payouts/:transactionID", limited, h.settlePayout)
	}
}

// getBalance godoc
// @Summary Get wallet balance
// @Description Returns the authenticated user's wallet balances
// @Tags wallet
// @Produce  json
// @Success 200 {object} dto.WalletResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Wallet not found"
// @Security BearerAuth
// @Router /wallet/balance [get]
func (h *walletHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	wallet, err := h.ledgerService.GetBalance(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Wallet not found"})
		} else {
			logger.Error("Failed to fetch wallet", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wallet"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToWalletResponse(wallet))
}

// listTransactions godoc
// @Summary List transactions
// @Description Returns the authenticated user's transaction history, newest first
// @Tags wallet
// @Produce  json
// @Param   limit query int false "Page size (default 20, max 100)"
// @Param   nextToken query string false "Pagination token from a previous response"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse "Invalid pagination token"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /wallet/transactions [get]
func (h *walletHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	var nextToken *string
	if token := c.Query("nextToken"); token != "" {
		nextToken = &token
	}

	txns, newToken, err := h.ledgerService.ListTransactions(c.Request.Context(), userID, limit, nextToken)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Code == 400 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination token"})
		} else {
			logger.Error("Failed to list transactions", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		NextToken:    newToken,
	})
}

// topUp godoc
// @Summary Top up the spendable balance
// @Description Credits the spendable balance and records a completed TOPUP transaction
// @Tags wallet
// @Accept  json
// @Produce  json
// @Param   topup body dto.TopUpRequest true "Top-up details"
// @Success 201 {object} dto.TransactionMutationResponse
// @Failure 400 {object} ErrorResponse "Invalid input or amount below minimum"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to top up"
// @Security BearerAuth
// @Router /wallet/topup [post]
func (h *walletHandler) topUp(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.TopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for TopUp", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	record, wallet, err := h.ledgerService.TopUp(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidAmount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Wallet not found"})
		} else {
			logger.Error("Failed to top up", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to top up"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.TransactionMutationResponse{
		Transaction: dto.ToTransactionResponse(record),
		Wallet:      dto.ToWalletResponse(wallet),
	})
}

// requestPayout godoc
// @Summary Request a payout
// @Description Debits the payout balance and records a pending PAYOUT transaction
// @Tags wallet
// @Accept  json
// @Produce  json
// @Param   payout body dto.PayoutRequest true "Payout details"
// @Success 201 {object} dto.TransactionMutationResponse
// @Failure 400 {object} ErrorResponse "Invalid input or amount below minimum"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 422 {object} ErrorResponse "Insufficient payout balance"
// @Failure 500 {object} ErrorResponse "Failed to request payout"
// @Security BearerAuth
// @Router /wallet/payout [post]
func (h *walletHandler) requestPayout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.PayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RequestPayout", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	record, wallet, err := h.ledgerService.RequestPayout(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidAmount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrInsufficientFunds) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Insufficient payout balance"})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Wallet not found"})
		} else {
			logger.Error("Failed to request payout", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to request payout"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.TransactionMutationResponse{
		Transaction: dto.ToTransactionResponse(record),
		Wallet:      dto.ToWalletResponse(wallet),
	})
}

// settlePayout godoc
// @Summary Settle a pending payout
// @Description Moves a pending PAYOUT transaction to COMPLETED or FAILED; FAILED restores the funds
// @Tags wallet
// @Accept  json
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Param   settlement body dto.SettlePayoutRequest true "Target status"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Not the owner of this payout"
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Failure 409 {object} ErrorResponse "Transaction is not a pending payout"
// @Security BearerAuth
// @Router /wallet/payouts/{transactionID} [patch]
func (h *walletHandler) settlePayout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	transactionID := c.Param("transactionID")

	var req dto.SettlePayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SettlePayout", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	existing, err := h.ledgerService.GetTransactionByID(c.Request.Context(), transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		} else {
			logger.Error("Failed to fetch transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to settle payout"})
		}
		return
	}
	if existing.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not the owner of this payout"})
		return
	}

	record, err := h.ledgerService.SettlePayout(c.Request.Context(), transactionID, domain.TransactionStatus(req.Status))
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidTransition) {
			c.JSON(http.StatusConflict, gin.H{"error": "Transaction is not a pending payout"})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		} else {
			logger.Error("Failed to settle payout", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to settle payout"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(record))
}
