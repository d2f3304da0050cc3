package repository

import "github.com/almoxapp/almoxarifado-api/internal/domain/entity"

// UserRepository define o porto de persistência para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	List() ([]*entity.User, error)
	// Delete remove o funcionário. Devolve domain.ErrConflict quando existem
	// transações vinculadas (restrição de chave estrangeira) e
	// domain.ErrUserNotFound quando o ID não existe.
	Delete(id string) error
}
