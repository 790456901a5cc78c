package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/daanseva/donation_backend/internal/apperrors"
	portssvc "github.com/daanseva/donation_backend/internal/core/ports/services"
	"github.com/daanseva/donation_backend/internal/core/services"
	"github.com/daanseva/donation_backend/internal/dto"
	"github.com/daanseva/donation_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// fundHandler handles HTTP requests related to fund campaigns.
type fundHandler struct {
	fundService portssvc.FundSvcFacade
}

func newFundHandler(fs portssvc.FundSvcFacade) *fundHandler {
	return &fundHandler{fundService: fs}
}

// registerFundPublicRoutes registers the read-only fund routes.
func registerFundPublicRoutes(rg *gin.RouterGroup, fundService portssvc.FundSvcFacade) {
	h := newFundHandler(fundService)
	rg.GET("/funds", h.listFunds)
	rg.GET("/funds/:id", h.getFund)
}

// registerFundAdminRoutes registers the authenticated fund management routes.
func registerFundAdminRoutes(rg *gin.RouterGroup, fundService portssvc.FundSvcFacade) {
	h := newFundHandler(fundService)

	funds := rg.Group("/funds")
	{
		funds.POST("", h.createFund)
		funds.PUT("/:id", h.updateFund)
		funds.DELETE("/:id", h.deleteFund)
		funds.POST("/:id/activate", h.activateFund)
	}
}

// createFund godoc
// @Summary Create a new fund campaign
// @Description Creates a new fund in PENDING status
// @Tags funds
// @Accept  json
// @Produce  json
// @Param   fund body dto.CreateFundRequest true "Fund details"
// @Success 201 {object} dto.FundResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create fund"
// @Security BearerAuth
// @Router /funds [post]
func (h *fundHandler) createFund(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateFundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateFund", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	fund, err := h.fundService.CreateFund(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, services.ErrInvalidDateRange) || errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create fund", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create fund"})
		}
		return
	}

	logger.Info("Fund created", slog.String("fund_id", fund.FundID))
	c.JSON(http.StatusCreated, dto.ToFundResponse(fund))
}

// listFunds godoc
// @Summary List fund campaigns
// @Description Retrieves funds ordered by start date descending
// @Tags funds
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListFundsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list funds"
// @Router /funds [get]
func (h *fundHandler) listFunds(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListFundsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	funds, err := h.fundService.ListFunds(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list funds", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list funds"})
		return
	}

	c.JSON(http.StatusOK, dto.ListFundsResponse{Funds: dto.ToFundResponses(funds)})
}

// getFund godoc
// @Summary Get a fund by ID
// @Tags funds
// @Produce  json
// @Param   id path string true "Fund ID"
// @Success 200 {object} dto.FundResponse
// @Failure 404 {object} map[string]string "Fund not found"
// @Failure 500 {object} map[string]string "Failed to retrieve fund"
// @Router /funds/{id} [get]
func (h *fundHandler) getFund(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fundID := c.Param("id")

	fund, err := h.fundService.GetFundByID(c.Request.Context(), fundID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Fund not found"})
		} else {
			logger.Error("Failed to get fund", slog.String("error", err.Error()), slog.String("fund_id", fundID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve fund"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToFundResponse(fund))
}

// updateFund godoc
// @Summary Update a fund campaign
// @Description Applies a partial update. The target amount may only change while the fund is PENDING.
// @Tags funds
// @Accept  json
// @Produce  json
// @Param   id path string true "Fund ID"
// @Param   fund body dto.UpdateFundRequest true "Fields to update"
// @Success 200 {object} dto.FundResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Fund not found"
// @Failure 409 {object} map[string]string "Target locked after activation"
// @Failure 500 {object} map[string]string "Failed to update fund"
// @Security BearerAuth
// @Router /funds/{id} [put]
func (h *fundHandler) updateFund(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fundID := c.Param("id")

	var req dto.UpdateFundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateFund", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	fund, err := h.fundService.UpdateFund(c.Request.Context(), fundID, req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Fund not found"})
		} else if errors.Is(err, services.ErrFundNotEditable) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else if errors.Is(err, services.ErrInvalidDateRange) || errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update fund", slog.String("error", err.Error()), slog.String("fund_id", fundID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update fund"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToFundResponse(fund))
}

// deleteFund godoc
// @Summary Delete a fund campaign
// @Description Deletes a fund that has not received any money
// @Tags funds
// @Produce  json
// @Param   id path string true "Fund ID"
// @Success 204 "Fund deleted"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Fund not found"
// @Failure 409 {object} map[string]string "Fund holds recorded money"
// @Failure 500 {object} map[string]string "Failed to delete fund"
// @Security BearerAuth
// @Router /funds/{id} [delete]
func (h *fundHandler) deleteFund(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fundID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.fundService.DeleteFund(c.Request.Context(), fundID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Fund not found"})
		} else if errors.Is(err, services.ErrFundHasBalance) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to delete fund", slog.String("error", err.Error()), slog.String("fund_id", fundID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete fund"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// activateFund godoc
// @Summary Activate a pending fund
// @Description Promotes a PENDING fund to ACTIVE. Only one fund may be active at a time.
// @Tags funds
// @Produce  json
// @Param   id path string true "Fund ID"
// @Success 200 {object} dto.FundResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Fund not found"
// @Failure 409 {object} map[string]string "Another fund is already active or fund is not pending"
// @Failure 500 {object} map[string]string "Failed to activate fund"
// @Security BearerAuth
// @Router /funds/{id}/activate [post]
func (h *fundHandler) activateFund(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fundID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	fund, err := h.fundService.ActivateFund(c.Request.Context(), fundID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Fund not found"})
		} else if errors.Is(err, services.ErrActiveFundExists) || errors.Is(err, apperrors.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to activate fund", slog.String("error", err.Error()), slog.String("fund_id", fundID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to activate fund"})
		}
		return
	}

	logger.Info("Fund activated", slog.String("fund_id", fundID))
	c.JSON(http.StatusOK, dto.ToFundResponse(fund))
}
