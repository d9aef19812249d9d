package inventory

import (
	"context"

	"github.com/josevesidio/university-backend-dev-project/internal/domain/entity"
	"github.com/josevesidio/university-backend-dev-project/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa tx. Garante atomicidade para o motor de
// movimentações: movimento + novo estoque persistem juntos ou nenhum.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// KardexPDFGenerator gera o PDF do kardex (histórico de movimentações) de um produto.
type KardexPDFGenerator interface {
	GenerateKardexPDF(ctx context.Context, product *entity.Product, movements []*entity.MovementDetail) ([]byte, error)
}
