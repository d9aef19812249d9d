package repository

import "github.com/josevesidio/university-backend-dev-project/internal/domain/entity"

// ProductRepository define o porto de persistência para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByName(name string) (*entity.Product, error)
	// GetForUpdate obtém o produto bloqueando a linha (SELECT FOR UPDATE);
	// só funciona dentro de uma transação (ver inventory.TxRunner).
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateQuantity grava apenas o estoque (usado pelo motor de movimentações).
	UpdateQuantity(productID string, quantity int64) error
	List(limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}
