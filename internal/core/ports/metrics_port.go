package ports

import (
	"time"

	"github.com/gin-gonic/gin"
)

type MetricsPort interface {
	RecordMetrics(c *gin.Context, start time.Time)
	// RecordSync counts one sync run of kind ("bikes", "activities") with
	// its outcome ("ok", "partial", "failed").
	RecordSync(kind, outcome string, duration time.Duration)
}
