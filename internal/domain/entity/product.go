package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa um produto do estoque.
// Quantity só muda via movimentações (ver MovementUseCase); nunca fica negativa.
type Product struct {
	ID          string
	Name        string // único entre produtos
	Description string
	Price       decimal.Decimal // preço de venda, >= 0
	Quantity    int64           // estoque atual, >= 0
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
