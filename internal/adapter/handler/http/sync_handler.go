package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sm8ta/webike_wear_microservice/internal/core/ports"
)

type SyncHandler struct {
	syncService ports.SyncService
	logger      ports.LoggerPort
	metrics     ports.MetricsPort
}

func NewSyncHandler(syncService ports.SyncService, logger ports.LoggerPort, metrics ports.MetricsPort) *SyncHandler {
	return &SyncHandler{
		syncService: syncService,
		logger:      logger,
		metrics:     metrics,
	}
}

// @Summary Sync with Strava
// @Description Imports new rides, then refreshes bikes and recomputes component distances.
// @Description The response is 200 even on partial failure; check success and errors.
// @Tags sync
// @Security BearerAuth
// @Produce json
// @Param full query bool false "Discard stored rides and import the whole history"
// @Success 200 {object} domain.SyncResult
// @Failure 400 {object} errorResponse "Invalid full flag"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Router /sync [post]
func (h *SyncHandler) Sync(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		h.logger.Warn("Unauthorized access attempt to Sync", map[string]interface{}{
			"ip": c.ClientIP(),
		})
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	fullSync := false
	if raw := c.Query("full"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			newErrorResponse(c, http.StatusBadRequest, "Invalid full flag")
			return
		}
		fullSync = v
	}

	// A sync that already started runs to completion even if the client goes away.
	ctx := context.WithoutCancel(c.Request.Context())
	result := h.syncService.Sync(ctx, payload.UserID, fullSync)

	h.logger.Info("Sync finished", map[string]interface{}{
		"user_id":   payload.UserID,
		"full_sync": fullSync,
		"success":   result.Success,
		"errors":    len(result.Errors),
	})

	c.JSON(http.StatusOK, result)
}

// @Summary Sync status
// @Description Users that never synced get a status without timestamps
// @Tags sync
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.SyncStatus
// @Failure 401 {object} errorResponse "Unauthorized"
// @Router /sync/status [get]
func (h *SyncHandler) GetStatus(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	status, err := h.syncService.GetStatus(c.Request.Context(), payload.UserID)
	if err != nil {
		h.logger.Error("Failed to get sync status", map[string]interface{}{
			"error":   err.Error(),
			"user_id": payload.UserID,
		})
		newServiceErrorResponse(c, err, "Failed to get sync status")
		return
	}

	c.JSON(http.StatusOK, status)
}
