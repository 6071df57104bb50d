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

// partnerHandler handles HTTP requests related to partners.
type partnerHandler struct {
	partnerService portssvc.PartnerSvcFacade
}

func newPartnerHandler(ps portssvc.PartnerSvcFacade) *partnerHandler {
	return &partnerHandler{partnerService: ps}
}

// registerPartnerRoutes registers routes related to partners.
func registerPartnerRoutes(rg *gin.RouterGroup, partnerService portssvc.PartnerSvcFacade) {
	h := newPartnerHandler(partnerService)

	partners := rg.Group("/partners")
	{
		partners.POST("", h.createPartner)
		partners.GET("", h.listPartners)
		partners.GET("/:partnerID", h.getPartner)
		partners.PUT("/:partnerID", h.updatePartner)
	}
}

// createPartner godoc
// @Summary Register a partner
// @Description Registers one of the two co-owners; fails once both exist
// @Tags partners
// @Accept json
// @Produce json
// @Param partner body dto.CreatePartnerRequest true "Partner details"
// @Success 201 {object} dto.PartnerResponse
// @Failure 400 {object} map[string]string "Invalid input or partnership full"
// @Failure 500 {object} map[string]string "Failed to create partner"
// @Router /partners [post]
func (h *partnerHandler) createPartner(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createPartner", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	partner, err := h.partnerService.CreatePartner(c.Request.Context(), req, actorID(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create partner", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create partner"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToPartnerResponse(partner))
}

// listPartners godoc
// @Summary List partners
// @Tags partners
// @Produce json
// @Success 200 {array} dto.PartnerResponse
// @Failure 500 {object} map[string]string "Failed to list partners"
// @Router /partners [get]
func (h *partnerHandler) listPartners(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	partners, err := h.partnerService.ListPartners(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list partners", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list partners"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPartnerResponse(partners))
}

// getPartner godoc
// @Summary Get a partner by ID
// @Tags partners
// @Produce json
// @Param partnerID path string true "Partner ID"
// @Success 200 {object} dto.PartnerResponse
// @Failure 404 {object} map[string]string "Partner not found"
// @Failure 500 {object} map[string]string "Failed to retrieve partner"
// @Router /partners/{partnerID} [get]
func (h *partnerHandler) getPartner(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partnerID := c.Param("partnerID")

	partner, err := h.partnerService.GetPartnerByID(c.Request.Context(), partnerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Partner not found"})
		} else {
			logger.Error("Failed to get partner", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve partner"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPartnerResponse(partner))
}

// updatePartner godoc
// @Summary Update a partner
// @Tags partners
// @Accept json
// @Produce json
// @Param partnerID path string true "Partner ID"
// @Param partner body dto.CreatePartnerRequest true "Partner details"
// @Success 200 {object} dto.PartnerResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Partner not found"
// @Failure 500 {object} map[string]string "Failed to update partner"
// @Router /partners/{partnerID} [put]
func (h *partnerHandler) updatePartner(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partnerID := c.Param("partnerID")

	var req dto.CreatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	partner, err := h.partnerService.UpdatePartner(c.Request.Context(), partnerID, req, actorID(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Partner not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update partner", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update partner"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPartnerResponse(partner))
}
