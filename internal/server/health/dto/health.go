package dto

import "time"

// HealthResponse is the liveness payload. It reports only that the
// process is accepting connections; downstream dependencies are not
// checked.
type HealthResponse struct {
	Status    string    `json:"status" example:"ok"`
	Timestamp time.Time `json:"timestamp" example:"2026-08-29T12:30:45Z"`
}
