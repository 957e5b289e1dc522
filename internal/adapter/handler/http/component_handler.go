package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
	"github.com/sm8ta/webike_wear_microservice/internal/core/ports"
)

type ComponentHandler struct {
	componentService ports.ComponentService
	bikeService      ports.BikeService
	logger           ports.LoggerPort
	metrics          ports.MetricsPort
}

type CustomComponentRequest struct {
	BikeID        string  `json:"bike_id" binding:"required" example:"123e4567-e89b-12d3-a456-426614174000"`
	Name          string  `json:"name" binding:"required" example:"Dropper post"`
	RecommendedKm float64 `json:"recommended_km" binding:"required" example:"5000"`
	Icon          *string `json:"icon,omitempty" example:"wrench"`
}

type UpdateComponentRequest struct {
	Name                *string `json:"name,omitempty" example:"Chain"`
	Brand               *string `json:"brand,omitempty" example:"Shimano"`
	Model               *string `json:"model,omitempty" example:"CN-M8100"`
	Notes               *string `json:"notes,omitempty"`
	RecommendedDistance *int64  `json:"recommended_distance,omitempty" example:"3000000"`
	CurrentDistance     *int64  `json:"current_distance,omitempty" example:"0"`
}

type ReplaceComponentRequest struct {
	ReplacedAt *time.Time `json:"replaced_at,omitempty" example:"2025-06-01T12:00:00Z"`
	Notes      *string    `json:"notes,omitempty" example:"Worn at 0.75%"`
}

func NewComponentHandler(
	componentService ports.ComponentService,
	bikeService ports.BikeService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *ComponentHandler {
	return &ComponentHandler{
		componentService: componentService,
		bikeService:      bikeService,
		logger:           logger,
		metrics:          metrics,
	}
}

// ownedComponent loads the component and checks that its bike belongs to the caller.
func (h *ComponentHandler) ownedComponent(c *gin.Context, payload *domain.TokenPayload, componentID string) (*domain.Component, bool) {
	component, err := h.componentService.GetComponentByID(c.Request.Context(), componentID)
	if err != nil {
		h.logger.Error("Failed to get component", map[string]interface{}{
			"error":        err.Error(),
			"component_id": componentID,
		})
		newServiceErrorResponse(c, err, "Failed to get component")
		return nil, false
	}

	if _, ok := ownedBike(c, h.bikeService, h.logger, payload, component.BikeID.String()); !ok {
		return nil, false
	}
	return component, true
}

// @Summary Add a custom component
// @Description Adds a user-defined component to a bike. The interval is entered in kilometers.
// @Tags components
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CustomComponentRequest true "Component"
// @Success 201 {object} successResponse "Component created"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 403 {object} errorResponse "Access denied"
// @Failure 404 {object} errorResponse "Bike not found"
// @Router /components [post]
func (h *ComponentHandler) CreateComponent(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		h.logger.Warn("Unauthorized access attempt to CreateComponent", map[string]interface{}{
			"ip": c.ClientIP(),
		})
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CustomComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in create component", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	if _, ok := ownedBike(c, h.bikeService, h.logger, payload, req.BikeID); !ok {
		return
	}

	component, err := h.componentService.AddCustom(c.Request.Context(), req.BikeID, domain.CustomComponentInput{
		Name:          req.Name,
		RecommendedKm: req.RecommendedKm,
		Icon:          req.Icon,
	})
	if err != nil {
		h.logger.Error("Failed to create component", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": req.BikeID,
		})
		newServiceErrorResponse(c, err, "Failed to create component")
		return
	}

	h.logger.Info("Component created successfully", map[string]interface{}{
		"component_id": component.ID,
		"bike_id":      component.BikeID,
	})

	newSuccessResponse(c, http.StatusCreated, "Component created successfully", newComponentResponse(component))
}

// @Summary Get component
// @Tags components
// @Security BearerAuth
// @Produce json
// @Param id path string true "Component ID"
// @Success 200 {object} ComponentResponse
// @Failure 400 {object} errorResponse "Invalid component ID"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 403 {object} errorResponse "Access denied"
// @Failure 404 {object} errorResponse "Component not found"
// @Router /components/{id} [get]
func (h *ComponentHandler) GetComponent(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	componentID := c.Param("id")

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		h.logger.Warn("Unauthorized access attempt to GetComponent", map[string]interface{}{
			"component_id": componentID,
			"ip":           c.ClientIP(),
		})
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	component, ok := h.ownedComponent(c, payload, componentID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, newComponentResponse(component))
}

// @Summary Update component
// @Description Edits the user-editable fields. Distances are in meters.
// @Tags components
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Component ID"
// @Param request body UpdateComponentRequest true "Fields to update"
// @Success 200 {object} successResponse "Component updated"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 403 {object} errorResponse "Access denied"
// @Failure 404 {object} errorResponse "Component not found"
// @Router /components/{id} [put]
func (h *ComponentHandler) UpdateComponent(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	componentID := c.Param("id")

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req UpdateComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in update component", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	if _, ok := h.ownedComponent(c, payload, componentID); !ok {
		return
	}

	updated, err := h.componentService.UpdateComponent(c.Request.Context(), componentID, domain.ComponentUpdate{
		Name:                req.Name,
		Brand:               req.Brand,
		Model:               req.Model,
		Notes:               req.Notes,
		RecommendedDistance: req.RecommendedDistance,
		CurrentDistance:     req.CurrentDistance,
	})
	if err != nil {
		h.logger.Error("Failed to update component", map[string]interface{}{
			"error":        err.Error(),
			"component_id": componentID,
		})
		newServiceErrorResponse(c, err, "Update failed")
		return
	}

	h.logger.Info("Component updated successfully", map[string]interface{}{
		"component_id": componentID,
	})

	newSuccessResponse(c, http.StatusOK, "Component updated successfully", newComponentResponse(updated))
}

// @Summary Delete component
// @Description Deleting an active default component stops sync from recreating it
// @Tags components
// @Security BearerAuth
// @Produce json
// @Param id path string true "Component ID"
// @Success 200 {object} successResponse "Component deleted"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 403 {object} errorResponse "Access denied"
// @Failure 404 {object} errorResponse "Component not found"
// @Router /components/{id} [delete]
func (h *ComponentHandler) DeleteComponent(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	componentID := c.Param("id")

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		h.logger.Warn("Unauthorized access attempt to DeleteComponent", map[string]interface{}{
			"component_id": componentID,
			"ip":           c.ClientIP(),
		})
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if _, ok := h.ownedComponent(c, payload, componentID); !ok {
		return
	}

	if err := h.componentService.DeleteComponent(c.Request.Context(), componentID); err != nil {
		h.logger.Error("Failed to delete component", map[string]interface{}{
			"error":        err.Error(),
			"component_id": componentID,
		})
		newServiceErrorResponse(c, err, "Delete failed")
		return
	}

	h.logger.Info("Component deleted successfully", map[string]interface{}{
		"component_id": componentID,
	})

	newSuccessResponse(c, http.StatusOK, "Component deleted successfully", nil)
}

// @Summary Replace component
// @Description Retires the component and installs a fresh one of the same type at the bike's current distance
// @Tags components
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Component ID"
// @Param request body ReplaceComponentRequest false "Replacement date and notes"
// @Success 201 {object} successResponse "Component replaced"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 403 {object} errorResponse "Access denied"
// @Failure 404 {object} errorResponse "Component not found"
// @Failure 409 {object} errorResponse "Component already replaced"
// @Router /components/{id}/replace [post]
func (h *ComponentHandler) ReplaceComponent(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	componentID := c.Param("id")

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req ReplaceComponentRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Error("Failed JSON parse in replace component", map[string]interface{}{
				"error": err.Error(),
			})
			newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
			return
		}
	}

	if _, ok := h.ownedComponent(c, payload, componentID); !ok {
		return
	}

	// zero means now
	var replacedAt time.Time
	if req.ReplacedAt != nil {
		replacedAt = *req.ReplacedAt
	}

	successor, err := h.componentService.ReplaceComponent(c.Request.Context(), componentID, replacedAt, req.Notes)
	if err != nil {
		h.logger.Error("Failed to replace component", map[string]interface{}{
			"error":        err.Error(),
			"component_id": componentID,
		})
		newServiceErrorResponse(c, err, "Replace failed")
		return
	}

	h.logger.Info("Component replaced", map[string]interface{}{
		"component_id": componentID,
		"successor_id": successor.ID,
	})

	newSuccessResponse(c, http.StatusCreated, "Component replaced successfully", newComponentResponse(successor))
}

// @Summary Component replacement history
// @Description Every instance of one component type on a bike, newest first
// @Tags components
// @Security BearerAuth
// @Produce json
// @Param id path string true "Bike ID"
// @Param type query string true "Component type" example(chain)
// @Success 200 {object} ComponentHistoryResponse
// @Failure 400 {object} errorResponse "Unknown component type"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 403 {object} errorResponse "Access denied"
// @Failure 404 {object} errorResponse "Bike not found"
// @Router /bikes/{id}/components/history [get]
func (h *ComponentHandler) GetHistory(c *gin.Context) {
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

	componentType := domain.ComponentType(c.Query("type"))
	history, err := h.componentService.History(c.Request.Context(), bikeID, componentType)
	if err != nil {
		h.logger.Error("Failed to get component history", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
			"type":    componentType,
		})
		newServiceErrorResponse(c, err, "Failed to get history")
		return
	}

	c.JSON(http.StatusOK, ComponentHistoryResponse{
		Type:       componentType,
		Components: newComponentResponses(history),
		Count:      len(history),
	})
}
