package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/automationsflow/afbooks/internal/apperrors"
	portssvc "github.com/automationsflow/afbooks/internal/core/ports/services"
	"github.com/automationsflow/afbooks/internal/dto"
	"github.com/automationsflow/afbooks/internal/middleware"
	"github.com/gin-gonic/gin"
)

// withdrawalHandler handles HTTP requests related to partner withdrawals.
type withdrawalHandler struct {
	withdrawalService portssvc.WithdrawalSvcFacade
}

func newWithdrawalHandler(ws portssvc.WithdrawalSvcFacade) *withdrawalHandler {
	return &withdrawalHandler{withdrawalService: ws}
}

// registerWithdrawalRoutes registers routes related to withdrawals.
func registerWithdrawalRoutes(rg *gin.RouterGroup, withdrawalService portssvc.WithdrawalSvcFacade) {
	h := newWithdrawalHandler(withdrawalService)

	withdrawals := rg.Group("/withdrawals")
	{
		withdrawals.POST("", h.createWithdrawal)
		withdrawals.GET("", h.listWithdrawals)
		withdrawals.GET("/:withdrawalID", h.getWithdrawal)
		withdrawals.DELETE("/:withdrawalID", h.deleteWithdrawal)
	}
}

// createWithdrawal godoc
// @Summary Record a partner withdrawal
// @Tags withdrawals
// @Accept json
// @Produce json
// @Param withdrawal body dto.CreateWithdrawalRequest true "Withdrawal details"
// @Success 201 {object} dto.WithdrawalResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create withdrawal"
// @Router /withdrawals [post]
func (h *withdrawalHandler) createWithdrawal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createWithdrawal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	withdrawal, err := h.withdrawalService.CreateWithdrawal(c.Request.Context(), req, actorID(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create withdrawal", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create withdrawal"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToWithdrawalResponse(withdrawal))
}

// listWithdrawals godoc
// @Summary List withdrawals
// @Tags withdrawals
// @Produce json
// @Param year query int false "Fiscal year (defaults to current)"
// @Param partnerID query string false "Filter by partner"
// @Success 200 {array} dto.WithdrawalResponse
// @Failure 500 {object} map[string]string "Failed to list withdrawals"
// @Router /withdrawals [get]
func (h *withdrawalHandler) listWithdrawals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListWithdrawalsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	withdrawals, err := h.withdrawalService.ListWithdrawals(c.Request.Context(), params.Year, params.PartnerID)
	if err != nil {
		logger.Error("Failed to list withdrawals", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list withdrawals"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListWithdrawalResponse(withdrawals))
}

// getWithdrawal godoc
// @Summary Get a withdrawal by ID
// @Tags withdrawals
// @Produce json
// @Param withdrawalID path string true "Withdrawal ID"
// @Success 200 {object} dto.WithdrawalResponse
// @Failure 404 {object} map[string]string "Withdrawal not found"
// @Failure 500 {object} map[string]string "Failed to retrieve withdrawal"
// @Router /withdrawals/{withdrawalID} [get]
func (h *withdrawalHandler) getWithdrawal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	withdrawalID := c.Param("withdrawalID")

	withdrawal, err := h.withdrawalService.GetWithdrawalByID(c.Request.Context(), withdrawalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Withdrawal not found"})
		} else {
			logger.Error("Failed to get withdrawal", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve withdrawal"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToWithdrawalResponse(withdrawal))
}

// deleteWithdrawal godoc
// @Summary Delete a withdrawal
// @Description Soft-deletes a withdrawal; the row stays for audit
// @Tags withdrawals
// @Produce json
// @Param withdrawalID path string true "Withdrawal ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Withdrawal not found"
// @Failure 500 {object} map[string]string "Failed to delete withdrawal"
// @Router /withdrawals/{withdrawalID} [delete]
func (h *withdrawalHandler) deleteWithdrawal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	withdrawalID := c.Param("withdrawalID")

	if err := h.withdrawalService.DeleteWithdrawal(c.Request.Context(), withdrawalID, actorID(c)); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Withdrawal not found"})
		} else {
			logger.Error("Failed to delete withdrawal", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete withdrawal"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
