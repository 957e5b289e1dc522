package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
	"github.com/sm8ta/webike_wear_microservice/internal/core/ports"
)

type BikeHandler struct {
	bikeService ports.BikeService
	logger      ports.LoggerPort
	metrics     ports.MetricsPort
}

type BikeConfigRequest struct {
	ShiftingType    domain.ShiftingType `json:"shifting_type" binding:"required" example:"mechanical"`
	BrakeType       domain.BrakeType    `json:"brake_type" binding:"required" example:"disc"`
	DrivetrainSpeed int                 `json:"drivetrain_speed" binding:"required" example:"11"`
	TireSystem      domain.TireSystem   `json:"tire_system" binding:"required" example:"tubeless"`
}

type SetRetiredRequest struct {
	Retired *bool `json:"retired" binding:"required" example:"true"`
}

func NewBikeHandler(bikeService ports.BikeService, logger ports.LoggerPort, metrics ports.MetricsPort) *BikeHandler {
	return &BikeHandler{
		bikeService: bikeService,
		logger:      logger,
		metrics:     metrics,
	}
}

// ownedBike loads the bike named by id and checks that the caller may see it.
// It writes the error response itself and reports false on any failure.
func ownedBike(c *gin.Context, bikeService ports.BikeService, logger ports.LoggerPort, payload *domain.TokenPayload, bikeID string) (*domain.Bike, bool) {
	bike, err := bikeService.GetBikeByID(c.Request.Context(), bikeID)
	if err != nil {
		logger.Error("Failed to get bike", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		newServiceErrorResponse(c, err, "Failed to get bike")
		return nil, false
	}

	if !canAccess(payload, bike) {
		logger.Warn("Access denied to bike", map[string]interface{}{
			"requester_id": payload.UserID.String(),
			"bike_owner":   bike.UserID.String(),
			"bike_id":      bikeID,
		})
		newErrorResponse(c, http.StatusForbidden, "Access denied")
		return nil, false
	}
	return bike, true
}

// @Summary List my bikes
// @Description Active bikes of the authenticated user, primary first
// @Tags bikes
// @Security BearerAuth
// @Produce json
// @Success 200 {object} GetMyBikesResponse
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 500 {object} errorResponse "Internal error"
// @Router /bikes/my [get]
func (h *BikeHandler) GetMyBikes(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		h.logger.Warn("Unauthorized access attempt to GetMyBikes", map[string]interface{}{
			"ip": c.ClientIP(),
		})
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	bikes, err := h.bikeService.GetBikesByUserID(c.Request.Context(), payload.UserID.String())
	if err != nil {
		h.logger.Error("Failed to get bikes", map[string]interface{}{
			"error":   err.Error(),
			"user_id": payload.UserID,
		})
		newServiceErrorResponse(c, err, "Failed to get bikes")
		return
	}

	resp := GetMyBikesResponse{Bikes: make([]BikeResponse, len(bikes)), Count: len(bikes)}
	for i, b := range bikes {
		resp.Bikes[i] = newBikeResponse(b)
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get bike
// @Tags bikes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Bike ID"
// @Success 200 {object} BikeResponse
// @Failure 400 {object} errorResponse "Invalid bike ID"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 403 {object} errorResponse "Access denied"
// @Failure 404 {object} errorResponse "Bike not found"
// @Router /bikes/{id} [get]
func (h *BikeHandler) GetBike(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	bike, ok := ownedBike(c, h.bikeService, h.logger, payload, c.Param("id"))
	if !ok {
		return
	}

	c.JSON(http.StatusOK, newBikeResponse(bike))
}

// @Summary Get bike with components
// @Description Bike with its active components, wear and the display groups for its configuration
// @Tags bikes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Bike ID"
// @Success 200 {object} BikeWithComponentsResponse
// @Failure 400 {object} errorResponse "Invalid bike ID"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 403 {object} errorResponse "Access denied"
// @Failure 404 {object} errorResponse "Bike not found"
// @Router /bikes/{id}/with-components [get]
func (h *BikeHandler) GetBikeWithComponents(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	bikeID := c.Param("id")

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if _, ok := ownedBike(c, h.bikeService, h.logger, payload, bikeID); !ok {
		return
	}

	detail, err := h.bikeService.GetBikeWithComponents(c.Request.Context(), bikeID)
	if err != nil {
		h.logger.Error("Failed to get bike with components", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		newServiceErrorResponse(c, err, "Failed to get bike")
		return
	}

	c.JSON(http.StatusOK, BikeWithComponentsResponse{
		BikeResponse: newBikeResponse(detail.Bike),
		Components:   newComponentResponses(detail.Bike.Components),
		Groups:       newGroupResponses(detail.Groups),
	})
}

// @Summary Save bike configuration
// @Description Stores the configuration and creates the default components it adds
// @Tags bikes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Bike ID"
// @Param request body BikeConfigRequest true "Configuration"
// @Success 200 {object} successResponse "Configuration saved"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 403 {object} errorResponse "Access denied"
// @Failure 404 {object} errorResponse "Bike not found"
// @Router /bikes/{id}/config [put]
func (h *BikeHandler) SaveConfig(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	bikeID := c.Param("id")

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req BikeConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in save config", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	if _, ok := ownedBike(c, h.bikeService, h.logger, payload, bikeID); !ok {
		return
	}

	bike, err := h.bikeService.SaveConfig(c.Request.Context(), bikeID, &domain.BikeConfig{
		ShiftingType:    req.ShiftingType,
		BrakeType:       req.BrakeType,
		DrivetrainSpeed: req.DrivetrainSpeed,
		TireSystem:      req.TireSystem,
	})
	if err != nil {
		h.logger.Error("Failed to save bike config", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		newServiceErrorResponse(c, err, "Failed to save configuration")
		return
	}

	newSuccessResponse(c, http.StatusOK, "Configuration saved", newBikeResponse(bike))
}

// @Summary Retire or reactivate a bike
// @Tags bikes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Bike ID"
// @Param request body SetRetiredRequest true "Retired flag"
// @Success 200 {object} successResponse "Bike updated"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 403 {object} errorResponse "Access denied"
// @Failure 404 {object} errorResponse "Bike not found"
// @Router /bikes/{id}/retired [put]
func (h *BikeHandler) SetRetired(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	bikeID := c.Param("id")

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req SetRetiredRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	if _, ok := ownedBike(c, h.bikeService, h.logger, payload, bikeID); !ok {
		return
	}

	bike, err := h.bikeService.SetRetired(c.Request.Context(), bikeID, *req.Retired)
	if err != nil {
		h.logger.Error("Failed to update retired flag", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		newServiceErrorResponse(c, err, "Update failed")
		return
	}

	h.logger.Info("Bike retired flag updated", map[string]interface{}{
		"bike_id": bikeID,
		"retired": bike.Retired,
	})

	newSuccessResponse(c, http.StatusOK, "Bike updated", newBikeResponse(bike))
}

// @Summary Dashboard statistics
// @Description Bike count, total distance, components at or past 80% wear and the last sync time
// @Tags stats
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.DashboardStats
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 500 {object} errorResponse "Internal error"
// @Router /dashboard/stats [get]
func (h *BikeHandler) GetDashboardStats(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	stats, err := h.bikeService.DashboardStats(c.Request.Context(), payload.UserID)
	if err != nil {
		h.logger.Error("Failed to get dashboard stats", map[string]interface{}{
			"error":   err.Error(),
			"user_id": payload.UserID,
		})
		newServiceErrorResponse(c, err, "Failed to get stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// @Summary Activity statistics
// @Tags stats
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.ActivityStats
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 500 {object} errorResponse "Internal error"
// @Router /activities/stats [get]
func (h *BikeHandler) GetActivityStats(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	stats, err := h.bikeService.ActivityStats(c.Request.Context(), payload.UserID)
	if err != nil {
		h.logger.Error("Failed to get activity stats", map[string]interface{}{
			"error":   err.Error(),
			"user_id": payload.UserID,
		})
		newServiceErrorResponse(c, err, "Failed to get stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}
