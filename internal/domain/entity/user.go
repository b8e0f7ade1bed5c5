package entity

import "time"

// Roles válidos para User. El rol es inmutable después de crear la cuenta
// (no hay promoción ni degradación).
const (
	RoleOwner   = "OWNER"
	RoleCashier = "CASHIER"
)

// User representa una cuenta del sistema: el dueño de la tienda o un cajero.
// PasswordHash es bcrypt; nunca circula en claro después de persistir.
type User struct {
	ID           int64
	Email        string // único
	PasswordHash string
	Name         string // nombre amigable; por defecto la parte local del email
	Role         string // OWNER, CASHIER
	CreatedAt    time.Time
}

// IsValidRole verifica que el rol sea uno de los dos soportados.
func IsValidRole(role string) bool {
	return role == RoleOwner || role == RoleCashier
}
