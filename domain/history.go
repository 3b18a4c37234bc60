package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// CalculationRecord is one stored calculation of the history.
type CalculationRecord struct {
	ID        uuid.UUID       `json:"id"`
	Kind      string          `json:"kind"`
	Input     json.RawMessage `json:"input"`
	Output    json.RawMessage `json:"output"`
	CreatedAt time.Time       `json:"createdAt"`
}
