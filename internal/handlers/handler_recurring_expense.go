package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/automationsflow/afbooks/internal/apperrors"
	portssvc "github.com/automationsflow/afbooks/internal/core/ports/services"
	"github.com/automationsflow/afbooks/internal/dto"
	"github.com/automationsflow/afbooks/internal/middleware"
	"github.com/gin-gonic/gin"
)

// recurringExpenseHandler handles HTTP requests related to recurring templates.
type recurringExpenseHandler struct {
	recurringService portssvc.RecurringExpenseSvcFacade
}

func newRecurringExpenseHandler(rs portssvc.RecurringExpenseSvcFacade) *recurringExpenseHandler {
	return &recurringExpenseHandler{recurringService: rs}
}

// registerRecurringExpenseRoutes registers routes related to recurring expense
// templates.
func registerRecurringExpenseRoutes(rg *gin.RouterGroup, recurringService portssvc.RecurringExpenseSvcFacade) {
	h := newRecurringExpenseHandler(recurringService)

	recurring := rg.Group("/recurring-expenses")
	{
		recurring.POST("", h.createRecurringExpense)
		recurring.GET("", h.listRecurringExpenses)
		recurring.GET("/:recurringExpenseID", h.getRecurringExpense)
		recurring.PUT("/:recurringExpenseID", h.updateRecurringExpense)
		recurring.DELETE("/:recurringExpenseID", h.deleteRecurringExpense)
		recurring.POST("/materialize", h.materialize)
	}
}

// createRecurringExpense godoc
// @Summary Create a recurring expense template
// @Tags recurring-expenses
// @Accept json
// @Produce json
// @Param template body dto.CreateRecurringExpenseRequest true "Template details"
// @Success 201 {object} dto.RecurringExpenseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create template"
// @Router /recurring-expenses [post]
func (h *recurringExpenseHandler) createRecurringExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateRecurringExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createRecurringExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	template, err := h.recurringService.CreateRecurringExpense(c.Request.Context(), req, actorID(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create recurring expense", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create recurring expense"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToRecurringExpenseResponse(template))
}

// listRecurringExpenses godoc
// @Summary List recurring expense templates
// @Tags recurring-expenses
// @Produce json
// @Success 200 {array} dto.RecurringExpenseResponse
// @Failure 500 {object} map[string]string "Failed to list templates"
// @Router /recurring-expenses [get]
func (h *recurringExpenseHandler) listRecurringExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	templates, err := h.recurringService.ListRecurringExpenses(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list recurring expenses", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list recurring expenses"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListRecurringExpenseResponse(templates))
}

// getRecurringExpense godoc
// @Summary Get a recurring expense template by ID
// @Tags recurring-expenses
// @Produce json
// @Param recurringExpenseID path string true "Template ID"
// @Success 200 {object} dto.RecurringExpenseResponse
// @Failure 404 {object} map[string]string "Template not found"
// @Failure 500 {object} map[string]string "Failed to retrieve template"
// @Router /recurring-expenses/{recurringExpenseID} [get]
func (h *recurringExpenseHandler) getRecurringExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	recurringExpenseID := c.Param("recurringExpenseID")

	template, err := h.recurringService.GetRecurringExpenseByID(c.Request.Context(), recurringExpenseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recurring expense not found"})
		} else {
			logger.Error("Failed to get recurring expense", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve recurring expense"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToRecurringExpenseResponse(template))
}

// updateRecurringExpense godoc
// @Summary Update a recurring expense template
// @Tags recurring-expenses
// @Accept json
// @Produce json
// @Param recurringExpenseID path string true "Template ID"
// @Param template body dto.UpdateRecurringExpenseRequest true "Fields to update"
// @Success 200 {object} dto.RecurringExpenseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Template not found"
// @Failure 500 {object} map[string]string "Failed to update template"
// @Router /recurring-expenses/{recurringExpenseID} [put]
func (h *recurringExpenseHandler) updateRecurringExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	recurringExpenseID := c.Param("recurringExpenseID")

	var req dto.UpdateRecurringExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	template, err := h.recurringService.UpdateRecurringExpense(c.Request.Context(), recurringExpenseID, req, actorID(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recurring expense not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update recurring expense", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update recurring expense"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToRecurringExpenseResponse(template))
}

// deleteRecurringExpense godoc
// @Summary Delete a recurring expense template
// @Description Soft-deletes a template; already generated expenses are untouched
// @Tags recurring-expenses
// @Produce json
// @Param recurringExpenseID path string true "Template ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Template not found"
// @Failure 500 {object} map[string]string "Failed to delete template"
// @Router /recurring-expenses/{recurringExpenseID} [delete]
func (h *recurringExpenseHandler) deleteRecurringExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	recurringExpenseID := c.Param("recurringExpenseID")

	if err := h.recurringService.DeleteRecurringExpense(c.Request.Context(), recurringExpenseID, actorID(c)); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recurring expense not found"})
		} else {
			logger.Error("Failed to delete recurring expense", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete recurring expense"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// materialize godoc
// @Summary Generate expenses from due templates
// @Description Creates an expense for every template occurrence due up to now; months already generated are skipped
// @Tags recurring-expenses
// @Produce json
// @Success 200 {object} dto.MaterializeResponse
// @Failure 500 {object} map[string]string "Materialization failed"
// @Router /recurring-expenses/materialize [post]
func (h *recurringExpenseHandler) materialize(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	generated, err := h.recurringService.MaterializeDue(c.Request.Context(), time.Now())
	if err != nil {
		logger.Error("Materialization failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Materialization failed"})
		return
	}

	c.JSON(http.StatusOK, dto.MaterializeResponse{Generated: generated})
}
