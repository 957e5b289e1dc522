package domain

import (
	"fmt"
	"math"
)

type WearStatus string

const (
	Healthy  WearStatus = "healthy"
	Warning  WearStatus = "warning"
	Critical WearStatus = "critical"
)

// Percentage thresholds for WearStatus.
const (
	WarningPercentage  = 80
	CriticalPercentage = 100
)

type WearInfo struct {
	Percentage        float64    `json:"percentage"`
	Status            WearStatus `json:"status"`
	RemainingDistance int64      `json:"remaining_distance"`
	IsOverdue         bool       `json:"is_overdue"`
}

// Wear derives the wear state of a component. recommended must be positive;
// callers validate it before a component is stored. Status follows the exact
// ratio; only the reported percentage is rounded.
func Wear(current, recommended int64) WearInfo {
	status := Healthy
	switch {
	case current*100 >= CriticalPercentage*recommended:
		status = Critical
	case current*100 >= WarningPercentage*recommended:
		status = Warning
	}

	return WearInfo{
		Percentage:        math.Round(float64(current)/float64(recommended)*1000) / 10,
		Status:            status,
		RemainingDistance: max(0, recommended-current),
		IsOverdue:         current >= recommended,
	}
}

// NeedsAttention reports whether a component is at or past the warning threshold.
func NeedsAttention(current, recommended int64) bool {
	if recommended <= 0 {
		return false
	}
	return Wear(current, recommended).Status != Healthy
}

// FormatDistance renders meters as kilometers, switching to thousands
// of kilometers from 1000 km on.
func FormatDistance(meters int64) string {
	kms := float64(meters) / 1000
	if kms >= 1000 {
		return fmt.Sprintf("%.1fk km", kms/1000)
	}
	return fmt.Sprintf("%d km", int64(math.Round(kms)))
}
