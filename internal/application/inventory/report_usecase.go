package inventory

import (
	"context"

	"github.com/josevesidio/university-backend-dev-project/internal/domain"
	"github.com/josevesidio/university-backend-dev-project/internal/domain/repository"
)

// KardexReportUseCase gera o relatório kardex (PDF) com o histórico de
// movimentações de um produto.
type KardexReportUseCase struct {
	movRepo     repository.MovementRepository
	productRepo repository.ProductRepository
	generator   KardexPDFGenerator
}

// NewKardexReportUseCase constrói o caso de uso do relatório.
func NewKardexReportUseCase(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
	generator KardexPDFGenerator,
) *KardexReportUseCase {
	return &KardexReportUseCase{movRepo: movRepo, productRepo: productRepo, generator: generator}
}

// GenerateProductKardex devolve os bytes do PDF do kardex do produto.
// ErrNotFound se o produto não existir.
func (uc *KardexReportUseCase) GenerateProductKardex(ctx context.Context, productID string) ([]byte, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	movements, err := uc.movRepo.ListDetailsByProduct(productID)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateKardexPDF(ctx, product, movements)
}
