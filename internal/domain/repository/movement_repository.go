package repository

import "github.com/josevesidio/university-backend-dev-project/internal/domain/entity"

// MovementFilter filtros opcionais para listagem de movimentações.
type MovementFilter struct {
	Type      string // vazio = todos
	ProductID string // vazio = todos
}

// MovementRepository define o porto de persistência para Movement.
// Movimentações são append-only: não há Update nem Delete.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	// GetDetailByID devolve a movimentação com produto e usuário resolvidos.
	GetDetailByID(id string) (*entity.MovementDetail, error)
	// ListDetails lista movimentações (filtros opcionais), ordenadas por criação desc.
	ListDetails(filter MovementFilter) ([]*entity.MovementDetail, error)
	// ListDetailsByProduct lista o histórico de um produto, ordenado por criação desc.
	ListDetailsByProduct(productID string) ([]*entity.MovementDetail, error)
}
