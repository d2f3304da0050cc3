package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/almoxapp/almoxarifado-api/internal/application/dto"
	"github.com/almoxapp/almoxarifado-api/internal/application/query"
)

// DashboardHandler trata as requisições HTTP do dashboard (somente leitura).
type DashboardHandler struct {
	uc *query.DashboardUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *query.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumo do dashboard e agregados dos gráficos
// @Tags         dashboard
// @Produce      json
// @Param        from  query  string  false  "Data inicial (RFC 3339 ou YYYY-MM-DD)"
// @Param        to    query  string  false  "Data final (RFC 3339 ou YYYY-MM-DD)"
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	var from, to *time.Time
	if s := c.Query("from"); s != "" {
		t, err := parseDateParam(s, false)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from: data inválida"})
		}
		from = &t
	}
	if s := c.Query("to"); s != "" {
		t, err := parseDateParam(s, true)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to: data inválida"})
		}
		to = &t
	}
	out, err := h.uc.GetSummary(c.Context(), from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao montar o resumo"})
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Produtos no nível crítico
// @Tags         dashboard
// @Produce      json
// @Success      200  {array}   dto.ProductResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/low-stock [get]
func (h *DashboardHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.LowStock()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao listar produtos críticos"})
	}
	return c.JSON(out)
}

func parseDateParam(s string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}
