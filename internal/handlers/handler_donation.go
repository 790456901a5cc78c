package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/daanseva/donation_backend/internal/apperrors"
	"github.com/daanseva/donation_backend/internal/core/domain"
	portssvc "github.com/daanseva/donation_backend/internal/core/ports/services"
	"github.com/daanseva/donation_backend/internal/core/services"
	"github.com/daanseva/donation_backend/internal/dto"
	"github.com/daanseva/donation_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// donationHandler handles HTTP requests related to donation records.
type donationHandler struct {
	donationService portssvc.DonationSvcFacade
}

func newDonationHandler(ds portssvc.DonationSvcFacade) *donationHandler {
	return &donationHandler{donationService: ds}
}

// registerDonationVerifyRoutes registers the public verification route.
func registerDonationVerifyRoutes(rg *gin.RouterGroup, donationService portssvc.DonationSvcFacade) {
	h := newDonationHandler(donationService)
	rg.POST("/donations/verify", h.verifyDonation)
}

// registerDonationAdminRoutes registers the authenticated donation routes.
func registerDonationAdminRoutes(rg *gin.RouterGroup, donationService portssvc.DonationSvcFacade) {
	h := newDonationHandler(donationService)

	donations := rg.Group("/donations")
	{
		donations.GET("", h.listDonations)
		donations.GET("/:id", h.getDonation)
		donations.POST("/:id/complete", h.completeDonation)
		donations.POST("/:id/fail", h.failDonation)
	}
}

// verifyDonation godoc
// @Summary Record a verified donation
// @Description Records the claimed payment at most once (keyed by transaction reference) and applies the amount to the target fund. Re-submitting the same reference returns the original record without double counting.
// @Tags donations
// @Accept  json
// @Produce  json
// @Param   donation body dto.VerifyDonationRequest true "Donation claim"
// @Success 200 {object} dto.DonationOutcomeResponse "Claim already recorded earlier"
// @Success 201 {object} dto.DonationOutcomeResponse "Claim recorded by this call"
// @Failure 400 {object} map[string]string "Invalid input format or claim"
// @Failure 404 {object} map[string]string "Named fund not found"
// @Failure 503 {object} map[string]string "Storage temporarily unavailable"
// @Router /donations/verify [post]
func (h *donationHandler) verifyDonation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.VerifyDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for VerifyDonation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	outcome, err := h.donationService.RecordAndApply(c.Request.Context(), req.ToClaim())
	if err != nil {
		if errors.Is(err, services.ErrInvalidClaim) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, services.ErrFundNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrUnavailable) {
			logger.Error("Donation verification failed on storage", slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Temporarily unable to record donation, please retry"})
		} else {
			logger.Error("Failed to record donation", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record donation"})
		}
		return
	}

	status := http.StatusCreated
	if !outcome.Recorded {
		status = http.StatusOK
	}
	c.JSON(status, dto.ToDonationOutcomeResponse(outcome))
}

// listDonations godoc
// @Summary List donation records
// @Description Retrieves donations ordered by creation time descending with token pagination, optionally filtered by status
// @Tags donations
// @Produce  json
// @Param   status query string false "Filter by status" Enums(PENDING, COMPLETED, FAILED)
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Pagination token from previous page"
// @Success 200 {object} dto.ListDonationsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list donations"
// @Security BearerAuth
// @Router /donations [get]
func (h *donationHandler) listDonations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListDonationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.donationService.ListDonations(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list donations", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list donations"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getDonation godoc
// @Summary Get a donation by ID
// @Tags donations
// @Produce  json
// @Param   id path string true "Donation ID"
// @Success 200 {object} dto.DonationResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Donation not found"
// @Failure 500 {object} map[string]string "Failed to retrieve donation"
// @Security BearerAuth
// @Router /donations/{id} [get]
func (h *donationHandler) getDonation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	donationID := c.Param("id")

	donation, err := h.donationService.GetDonationByID(c.Request.Context(), donationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Donation not found"})
		} else {
			logger.Error("Failed to get donation", slog.String("error", err.Error()), slog.String("donation_id", donationID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve donation"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToDonationResponse(donation))
}

// completeDonation godoc
// @Summary Mark a pending donation as completed
// @Description Settles a pending donation as completed and applies its amount to its fund. Settling an already-settled donation is a no-op.
// @Tags donations
// @Produce  json
// @Param   id path string true "Donation ID"
// @Success 200 {object} dto.DonationResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Donation not found"
// @Failure 500 {object} map[string]string "Failed to settle donation"
// @Security BearerAuth
// @Router /donations/{id}/complete [post]
func (h *donationHandler) completeDonation(c *gin.Context) {
	h.settleDonation(c, h.donationService.MarkDonationCompleted)
}

// failDonation godoc
// @Summary Mark a pending donation as failed
// @Description Settles a pending donation as failed with no fund effect. Settling an already-settled donation is a no-op.
// @Tags donations
// @Produce  json
// @Param   id path string true "Donation ID"
// @Success 200 {object} dto.DonationResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Donation not found"
// @Failure 500 {object} map[string]string "Failed to settle donation"
// @Security BearerAuth
// @Router /donations/{id}/fail [post]
func (h *donationHandler) failDonation(c *gin.Context) {
	h.settleDonation(c, h.donationService.MarkDonationFailed)
}

type settleFunc func(ctx context.Context, donationID string, userID string) (*domain.Donation, error)

func (h *donationHandler) settleDonation(c *gin.Context, settle settleFunc) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	donationID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	donation, err := settle(c.Request.Context(), donationID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Donation not found"})
		} else {
			logger.Error("Failed to settle donation", slog.String("error", err.Error()), slog.String("donation_id", donationID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to settle donation"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToDonationResponse(donation))
}
