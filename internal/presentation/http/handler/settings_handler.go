package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/pawsuite/salon-api/internal/application/service"
	"github.com/pawsuite/salon-api/internal/domain/enum"
	"github.com/pawsuite/salon-api/internal/presentation/http/dto/response"
)

// SettingsHandler handles salon settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetSettings retrieves the salon settings
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved successfully", settings)
}

// UpdateSettings applies a partial update to the salon settings
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req struct {
		SalonName *string `json:"salon_name"`

		ProcessorFeeRatePct *float64            `json:"processor_fee_rate_pct"`
		ProcessorFeeFixed   *float64            `json:"processor_fee_fixed"`
		FeeBasePolicy       *enum.FeeBasePolicy `json:"fee_base_policy"`
		TipFeeBearer        *enum.TipFeeBearer  `json:"tip_fee_bearer"`

		DefaultCompensationType  *enum.CompensationType `json:"default_compensation_type"`
		DefaultCommissionRatePct *float64               `json:"default_commission_rate_pct"`
		DefaultHourlyRate        *float64               `json:"default_hourly_rate"`

		LapsedThresholdDays   *int     `json:"lapsed_threshold_days"`
		AttributionWindowDays *int     `json:"attribution_window_days"`
		TaxRatePct            *float64 `json:"tax_rate_pct"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), &service.UpdateSettingsInput{
		SalonName:                req.SalonName,
		ProcessorFeeRatePct:      req.ProcessorFeeRatePct,
		ProcessorFeeFixed:        req.ProcessorFeeFixed,
		FeeBasePolicy:            req.FeeBasePolicy,
		TipFeeBearer:             req.TipFeeBearer,
		DefaultCompensationType:  req.DefaultCompensationType,
		DefaultCommissionRatePct: req.DefaultCommissionRatePct,
		DefaultHourlyRate:        req.DefaultHourlyRate,
		LapsedThresholdDays:      req.LapsedThresholdDays,
		AttributionWindowDays:    req.AttributionWindowDays,
		TaxRatePct:               req.TaxRatePct,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings updated successfully", settings)
}
