package entity

import (
	"encoding/json"
	"time"
)

// Acciones auditables. Toda mutación comprometida tiene exactamente una entrada.
const (
	ActionProductAdd    = "PRODUCT_ADD"
	ActionProductUpdate = "PRODUCT_UPDATE"
	ActionProductDelete = "PRODUCT_DELETE"
	ActionSaleRecord    = "SALE_RECORD"
)

// ActivityLogEntry es un hecho de auditoría append-only. ActorRole es una
// fotografía del rol al momento de la acción. ProductID es nullable: si el
// producto se elimina después, la referencia pasa a NULL (SET NULL), la
// entrada sobrevive.
type ActivityLogEntry struct {
	ID        int64
	ActorID   int64
	ActorRole string
	Action    string
	ProductID *int64
	Details   json.RawMessage
	CreatedAt time.Time

	// Campos denormalizados para el listado de actividad.
	ActorEmail  string
	ActorName   string
	ProductName *string
}

// IsValidAction verifica que la acción pertenezca al conjunto auditado.
func IsValidAction(action string) bool {
	switch action {
	case ActionProductAdd, ActionProductUpdate, ActionProductDelete, ActionSaleRecord:
		return true
	}
	return false
}
