package entity

import "time"

// Tipos de movimentação de estoque.
const (
	MovementTypeEntrada   = "ENTRADA"   // entrada: soma ao estoque
	MovementTypeSaida     = "SAIDA"     // saída: subtrai do estoque (exige saldo)
	MovementTypeAjuste    = "AJUSTE"    // ajuste: DEFINE o estoque (valor absoluto, não delta)
	MovementTypeDevolucao = "DEVOLUCAO" // devolução: soma ao estoque (distinta de ENTRADA no histórico)
)

// ValidMovementType informa se o tipo é um dos quatro aceitos.
func ValidMovementType(t string) bool {
	switch t {
	case MovementTypeEntrada, MovementTypeSaida, MovementTypeAjuste, MovementTypeDevolucao:
		return true
	}
	return false
}

// Movement representa uma movimentação de estoque: registro de auditoria
// imutável, criado uma única vez e jamais atualizado ou apagado.
type Movement struct {
	ID        string
	ProductID string
	UserID    string
	Type      string
	Quantity  int64 // quantidade informada pelo cliente, sempre > 0
	Reason    string
	CreatedAt time.Time
}

// MovementDetail é o modelo de leitura de uma movimentação com as
// associações resolvidas (produto e usuário) para exibição.
type MovementDetail struct {
	Movement
	ProductName string
	UserName    string
	UserEmail   string
}
