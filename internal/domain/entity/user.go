package entity

import "time"

// Papéis válidos para User.
const (
	RoleAdmin = "Admin"
	RoleStaff = "Staff"
)

// ValidRole informa se o papel é um dos reconhecidos.
// Valores desconhecidos são rejeitados na criação, nunca assumidos como Staff.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleStaff
}

// User representa um funcionário que registra movimentações.
// Transações referenciam o usuário por ID (integridade garantida no banco)
// e carregam o nome como snapshot histórico.
type User struct {
	ID        string
	Name      string
	Role      string // Admin, Staff
	CreatedAt time.Time
}
