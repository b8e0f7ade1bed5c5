package dto

import (
	"encoding/json"
	"time"
)

// ActivityEntryResponse una entrada del registro de auditoría.
// ProductID y ProductName son null si el producto referenciado fue eliminado
// después de la acción (la entrada sobrevive con la referencia en NULL).
type ActivityEntryResponse struct {
	ID          int64           `json:"id"`
	ActorID     int64           `json:"actor_id"`
	ActorEmail  string          `json:"actor_email"`
	ActorName   string          `json:"actor_name"`
	ActorRole   string          `json:"actor_role"`
	Action      string          `json:"action"`
	ProductID   *int64          `json:"product_id"`
	ProductName *string         `json:"product_name"`
	Details     json.RawMessage `json:"details"`
	CreatedAt   time.Time       `json:"created_at"`
}
