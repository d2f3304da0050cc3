package dto

import "time"

// CreateUserRequest body para POST /api/users.
// Role desconhecido é rejeitado na validação, nunca assumido como Staff.
type CreateUserRequest struct {
	Name string `json:"name" validate:"required"`
	Role string `json:"role" validate:"required,oneof=Admin Staff"`
}

// UserResponse representação de User para a API.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
