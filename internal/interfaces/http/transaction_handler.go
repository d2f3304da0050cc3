package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/almoxapp/almoxarifado-api/internal/application/dto"
	"github.com/almoxapp/almoxarifado-api/internal/application/ledger"
	"github.com/almoxapp/almoxarifado-api/internal/application/query"
	"github.com/almoxapp/almoxarifado-api/internal/domain"
	"github.com/almoxapp/almoxarifado-api/internal/domain/entity"
	"github.com/almoxapp/almoxarifado-api/pkg/validator"
)

// TransactionHandler trata as requisições HTTP do livro de movimentações.
type TransactionHandler struct {
	ledger *ledger.LedgerUseCase
	list   *query.TransactionListUseCase
}

// NewTransactionHandler constrói o handler.
func NewTransactionHandler(uc *ledger.LedgerUseCase, list *query.TransactionListUseCase) *TransactionHandler {
	return &TransactionHandler{ledger: uc, list: list}
}

// List godoc
// @Summary      Listar movimentações
// @Tags         transactions
// @Produce      json
// @Param        from        query  string  false  "Data inicial (RFC 3339 ou YYYY-MM-DD)"
// @Param        to          query  string  false  "Data final (RFC 3339 ou YYYY-MM-DD)"
// @Param        product_id  query  string  false  "Filtrar por produto"
// @Param        user_id     query  string  false  "Filtrar por funcionário"
// @Param        q           query  string  false  "Busca livre sobre os nomes"
// @Success      200  {array}   dto.TransactionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	var q dto.TransactionListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parâmetros inválidos"})
	}
	out, err := h.list.List(q)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao listar movimentações"})
	}
	return c.JSON(out)
}

// ApplyMovement godoc
// @Summary      Registrar movimentação (IN ou OUT)
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "product_id, user_id, type, quantity"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *TransactionHandler) ApplyMovement(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: errs[0].String()})
	}
	t, err := h.ledger.ApplyMovement(c.Context(), ledger.MovementInput{
		ProductID: in.ProductID,
		UserID:    in.UserID,
		Type:      in.Type,
		Quantity:  in.Quantity,
	})
	if err != nil {
		return h.mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toTransactionResponse(t))
}

// ApplyBatch godoc
// @Summary      Registrar lote de entradas
// @Description  Itens inválidos são ignorados; o lote só falha quando nenhum
//               item sobrevive à filtragem.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBatchRequest  true  "user_id e itens (product_id, quantity)"
// @Success      201   {array}   dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/transactions/batch [post]
func (h *TransactionHandler) ApplyBatch(c *fiber.Ctx) error {
	var in dto.CreateBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: errs[0].String()})
	}
	items := make([]ledger.BatchItem, 0, len(in.Items))
	for _, item := range in.Items {
		items = append(items, ledger.BatchItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	created, err := h.ledger.ApplyBatch(c.Context(), ledger.BatchInput{UserID: in.UserID, Items: items})
	if err != nil {
		return h.mapError(c, err)
	}
	out := make([]dto.TransactionResponse, 0, len(created))
	for _, t := range created {
		out = append(out, toTransactionResponse(t))
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *TransactionHandler) mapError(c *fiber.Ctx, err error) error {
	var insufficient *domain.InsufficientStockError
	if errors.As(err, &insufficient) {
		available := insufficient.Available
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:      "INSUFFICIENT_STOCK",
			Message:   "quantidade em estoque insuficiente",
			Available: &available,
		})
	}
	if errors.Is(err, domain.ErrEmptyBatch) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_BATCH", Message: "envie ao menos um item válido"})
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	if errors.Is(err, domain.ErrProductNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
	}
	if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "funcionário não encontrado"})
	}
	// Falha de storage: a unidade foi atômica, o chamador pode reenviar.
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao registrar movimentação"})
}

func toTransactionResponse(t *entity.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:          t.ID,
		Date:        t.Date,
		ProductID:   t.ProductID,
		ProductName: t.ProductName,
		UserID:      t.UserID,
		UserName:    t.UserName,
		Type:        t.Type,
		Quantity:    t.Quantity,
	}
}
