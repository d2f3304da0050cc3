package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/almoxapp/almoxarifado-api/internal/application/dto"
	"github.com/almoxapp/almoxarifado-api/internal/domain"
	"github.com/almoxapp/almoxarifado-api/internal/domain/entity"
	"github.com/almoxapp/almoxarifado-api/internal/domain/repository"
)

// UserUseCase casos de uso administrativos para User.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase constrói o caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create cadastra um funcionário. Papéis desconhecidos são recusados.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, &domain.ValidationError{Field: "name", Message: "obrigatório"}
	}
	if !entity.ValidRole(in.Role) {
		return nil, &domain.ValidationError{Field: "role", Message: "deve ser Admin ou Staff"}
	}
	user := &entity.User{
		ID:        uuid.New().String(),
		Name:      name,
		Role:      in.Role,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// List lista todos os funcionários ordenados por nome.
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return items, nil
}

// Delete remove um funcionário. Falha com domain.ErrConflict quando existem
// lançamentos vinculados; o histórico nunca é apagado em cascata.
func (uc *UserUseCase) Delete(id string) error {
	if id == "" {
		return &domain.ValidationError{Field: "id", Message: "obrigatório"}
	}
	return uc.repo.Delete(id)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
