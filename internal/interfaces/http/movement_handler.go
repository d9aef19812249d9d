package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/josevesidio/university-backend-dev-project/internal/application/dto"
	"github.com/josevesidio/university-backend-dev-project/internal/application/inventory"
	"github.com/josevesidio/university-backend-dev-project/internal/domain"
	"github.com/josevesidio/university-backend-dev-project/internal/domain/repository"
	"github.com/josevesidio/university-backend-dev-project/pkg/validation"
)

// MovementHandler registro e consulta de movimentações de estoque.
type MovementHandler struct {
	movements *inventory.MovementUseCase
	queries   *inventory.MovementQueryUseCase
	reports   *inventory.KardexReportUseCase
}

// NewMovementHandler constrói o handler de movimentações.
func NewMovementHandler(
	movements *inventory.MovementUseCase,
	queries *inventory.MovementQueryUseCase,
	reports *inventory.KardexReportUseCase,
) *MovementHandler {
	return &MovementHandler{movements: movements, queries: queries, reports: reports}
}

// Create godoc
// @Summary      Registrar movimentação de estoque
// @Description  ENTRADA e DEVOLUCAO somam; SAIDA subtrai exigindo saldo; AJUSTE define o estoque final.
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "Movimentação"
// @Success      201   {object}  dto.CreateMovementResponse
// @Failure      400   {object}  dto.InsufficientStockResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/movements [post]
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if fields := validation.Struct(in); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados inválidos", Fields: fields})
	}
	userID := GetUserID(c)

	out, err := h.movements.Apply(c.UserContext(), userID, in)
	if err != nil {
		var insufficient *domain.InsufficientStockError
		switch {
		case errors.As(err, &insufficient):
			return c.Status(fiber.StatusBadRequest).JSON(dto.InsufficientStockResponse{
				Code:      "INSUFFICIENT_STOCK",
				Message:   fmt.Sprintf("Estoque insuficiente. Disponível: %d, Solicitado: %d", insufficient.Available, insufficient.Requested),
				Available: insufficient.Available,
				Requested: insufficient.Requested,
			})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
		case errors.Is(err, domain.ErrInvalidMovementType), errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "movimentação inválida"})
		case errors.Is(err, domain.ErrTxConflict):
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "TX_CONFLICT", Message: "conflito de transação; tente novamente"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro no servidor ao registrar movimentação"})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar movimentações
// @Tags         movements
// @Produce      json
// @Param        type        query  string  false  "ENTRADA | SAIDA | AJUSTE | DEVOLUCAO"
// @Param        product_id  query  string  false  "Filtrar por produto"
// @Success      200  {array}  dto.MovementResponse
// @Security     BearerAuth
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var q dto.MovementListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtros inválidos"})
	}
	if fields := validation.Struct(q); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "filtros inválidos", Fields: fields})
	}
	out, err := h.queries.List(repository.MovementFilter{Type: q.Type, ProductID: q.ProductID})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro no servidor ao listar movimentações"})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obter movimentação por ID
// @Tags         movements
// @Produce      json
// @Param        id   path  string  true  "ID da movimentação"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/movements/{id} [get]
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.queries.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimentação não encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro no servidor ao buscar movimentação"})
	}
	return c.JSON(out)
}

// HistoryByProduct godoc
// @Summary      Histórico de movimentações de um produto
// @Tags         movements
// @Produce      json
// @Param        productId  path  string  true  "ID do produto"
// @Success      200  {object}  dto.ProductHistoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/movements/product/{productId} [get]
func (h *MovementHandler) HistoryByProduct(c *fiber.Ctx) error {
	out, err := h.queries.HistoryByProduct(c.Params("productId"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro no servidor ao buscar histórico"})
	}
	return c.JSON(out)
}

// Kardex godoc
// @Summary      Kardex do produto em PDF
// @Tags         movements
// @Produce      application/pdf
// @Param        productId  path  string  true  "ID do produto"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/movements/product/{productId}/kardex [get]
func (h *MovementHandler) Kardex(c *fiber.Ctx) error {
	pdf, err := h.reports.GenerateProductKardex(c.UserContext(), c.Params("productId"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro no servidor ao gerar kardex"})
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="kardex.pdf"`)
	c.Type("pdf")
	return c.Send(pdf)
}
