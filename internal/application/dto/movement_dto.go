package dto

import "time"

// CreateMovementRequest body para POST /api/movements.
// As regras espelham o validador original: tipo entre os quatro aceitos,
// quantidade inteira > 0, motivo opcional de até 500 caracteres.
type CreateMovementRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Type      string `json:"type" validate:"required,oneof=ENTRADA SAIDA AJUSTE DEVOLUCAO"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
	Reason    string `json:"reason" validate:"omitempty,max=500"`
}

// MovementProductRef referência resumida ao produto movimentado.
type MovementProductRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MovementUserRef referência resumida ao usuário que movimentou.
type MovementUserRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// MovementResponse saída de uma movimentação com associações resolvidas.
type MovementResponse struct {
	ID        string             `json:"id"`
	Type      string             `json:"type"`
	Quantity  int64              `json:"quantity"`
	Reason    string             `json:"reason,omitempty"`
	Product   MovementProductRef `json:"product"`
	User      MovementUserRef    `json:"user"`
	CreatedAt time.Time          `json:"created_at"`
}

// CreateMovementResponse resposta do registro de movimentação: a
// movimentação criada e o novo estoque do produto.
type CreateMovementResponse struct {
	Message  string           `json:"message"`
	Movement MovementResponse `json:"movement"`
	NewStock int64            `json:"new_stock"`
}

// ProductHistoryResponse histórico de movimentações de um produto.
type ProductHistoryResponse struct {
	Product struct {
		ID           string `json:"id"`
		Name         string `json:"name"`
		CurrentStock int64  `json:"current_stock"`
	} `json:"product"`
	Movements []MovementResponse `json:"movements"`
}

// MovementListQuery filtros de GET /api/movements.
type MovementListQuery struct {
	Type      string `query:"type" validate:"omitempty,oneof=ENTRADA SAIDA AJUSTE DEVOLUCAO"`
	ProductID string `query:"product_id" validate:"omitempty,uuid"`
}

// InsufficientStockResponse corpo de erro para SAIDA sem saldo: devolve
// disponível e solicitado para o cliente exibir.
type InsufficientStockResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Available int64  `json:"available"`
	Requested int64  `json:"requested"`
}
