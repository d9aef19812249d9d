package inventory

import (
	"github.com/josevesidio/university-backend-dev-project/internal/application/dto"
	"github.com/josevesidio/university-backend-dev-project/internal/domain"
	"github.com/josevesidio/university-backend-dev-project/internal/domain/repository"
)

// MovementQueryUseCase leituras de movimentações (sem lógica de negócio):
// listagem com filtros, busca por ID e histórico por produto.
type MovementQueryUseCase struct {
	movRepo     repository.MovementRepository
	productRepo repository.ProductRepository
}

// NewMovementQueryUseCase constrói o caso de uso de leitura.
func NewMovementQueryUseCase(movRepo repository.MovementRepository, productRepo repository.ProductRepository) *MovementQueryUseCase {
	return &MovementQueryUseCase{movRepo: movRepo, productRepo: productRepo}
}

// List lista movimentações, com filtros opcionais por tipo e produto,
// ordenadas por criação descendente.
func (uc *MovementQueryUseCase) List(filter repository.MovementFilter) ([]dto.MovementResponse, error) {
	list, err := uc.movRepo.ListDetails(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(list))
	for _, d := range list {
		out = append(out, toMovementResponse(d))
	}
	return out, nil
}

// GetByID busca uma movimentação com produto e usuário resolvidos.
// Devolve ErrNotFound se não existir.
func (uc *MovementQueryUseCase) GetByID(id string) (*dto.MovementResponse, error) {
	detail, err := uc.movRepo.GetDetailByID(id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, domain.ErrNotFound
	}
	resp := toMovementResponse(detail)
	return &resp, nil
}

// HistoryByProduct devolve o histórico de movimentações de um produto com o
// estoque atual. A existência do produto é pré-condição: ErrNotFound se ausente.
func (uc *MovementQueryUseCase) HistoryByProduct(productID string) (*dto.ProductHistoryResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.movRepo.ListDetailsByProduct(productID)
	if err != nil {
		return nil, err
	}
	out := &dto.ProductHistoryResponse{}
	out.Product.ID = product.ID
	out.Product.Name = product.Name
	out.Product.CurrentStock = product.Quantity
	out.Movements = make([]dto.MovementResponse, 0, len(list))
	for _, d := range list {
		out.Movements = append(out.Movements, toMovementResponse(d))
	}
	return out, nil
}
