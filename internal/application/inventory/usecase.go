package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/josevesidio/university-backend-dev-project/internal/application/dto"
	"github.com/josevesidio/university-backend-dev-project/internal/domain"
	"github.com/josevesidio/university-backend-dev-project/internal/domain/entity"
	"github.com/josevesidio/university-backend-dev-project/internal/domain/repository"
)

// MovementUseCase registra movimentações de estoque de forma transacional
// (ENTRADA, SAIDA, AJUSTE, DEVOLUCAO) com bloqueio de linha em products
// (SELECT FOR UPDATE) e Commit/Rollback.
type MovementUseCase struct {
	txRunner TxRunner
	movRepo  repository.MovementRepository
}

// NewMovementUseCase constrói o caso de uso. movRepo é o repositório atado ao
// pool, usado só para leituras fora da transação.
func NewMovementUseCase(txRunner TxRunner, movRepo repository.MovementRepository) *MovementUseCase {
	return &MovementUseCase{txRunner: txRunner, movRepo: movRepo}
}

// Apply registra uma movimentação e recalcula o estoque do produto, tudo na
// mesma transação. A linha do produto é bloqueada antes do read-modify-write,
// então movimentações concorrentes sobre o MESMO produto serializam e sobre
// produtos distintos seguem em paralelo.
//
// Efeito por tipo sobre o estoque atual q e a quantidade m:
//
//	ENTRADA   q' = q + m
//	DEVOLUCAO q' = q + m
//	SAIDA     q' = q - m, exige q >= m (senão InsufficientStockError)
//	AJUSTE    q' = m      — ATENÇÃO: m é o estoque final desejado, não um delta.
//	                        Assimetria herdada do contrato da API; não "corrigir".
func (uc *MovementUseCase) Apply(ctx context.Context, userID string, in dto.CreateMovementRequest) (*dto.CreateMovementResponse, error) {
	// O validador HTTP já barrou tipos fora do enum; revalidar aqui evita
	// aritmética indefinida se o caso de uso for chamado por outro caminho.
	if !entity.ValidMovementType(in.Type) {
		return nil, domain.ErrInvalidMovementType
	}
	if in.Quantity <= 0 || in.ProductID == "" || userID == "" {
		return nil, domain.ErrInvalidInput
	}

	movement := &entity.Movement{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		UserID:    userID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Reason:    in.Reason,
		CreatedAt: time.Now(),
	}
	var newStock int64

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloqueia a linha do produto (SELECT FOR UPDATE): fecha a janela de
		// corrida entre ler o estoque, validar saldo e gravar.
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		newStock, err = nextQuantity(product.Quantity, in.Type, in.Quantity)
		if err != nil {
			return err
		}

		// Movimento e novo estoque na mesma tx: ou ambos ficam visíveis, ou nenhum.
		if err := movRepo.Create(movement); err != nil {
			return err
		}
		return productRepo.UpdateQuantity(product.ID, newStock)
	})
	if err != nil {
		return nil, err
	}

	return &dto.CreateMovementResponse{
		Message:  "Movimentação registrada com sucesso.",
		Movement: uc.enrich(movement),
		NewStock: newStock,
	}, nil
}

// nextQuantity aplica o efeito do tipo sobre o estoque atual.
func nextQuantity(current int64, movType string, quantity int64) (int64, error) {
	switch movType {
	case entity.MovementTypeEntrada, entity.MovementTypeDevolucao:
		return current + quantity, nil
	case entity.MovementTypeSaida:
		if current < quantity {
			return 0, &domain.InsufficientStockError{Available: current, Requested: quantity}
		}
		return current - quantity, nil
	case entity.MovementTypeAjuste:
		// Valor absoluto: define o estoque final, mesmo que menor que o atual.
		return quantity, nil
	}
	return 0, domain.ErrInvalidMovementType
}

// enrich relê a movimentação com as associações depois do commit, como o
// endpoint devolve produto e usuário resolvidos. Se a releitura falhar, a
// operação já está confirmada: degrada para os dados conhecidos.
func (uc *MovementUseCase) enrich(m *entity.Movement) dto.MovementResponse {
	detail, err := uc.movRepo.GetDetailByID(m.ID)
	if err == nil && detail != nil {
		return toMovementResponse(detail)
	}
	return dto.MovementResponse{
		ID:        m.ID,
		Type:      m.Type,
		Quantity:  m.Quantity,
		Reason:    m.Reason,
		Product:   dto.MovementProductRef{ID: m.ProductID},
		User:      dto.MovementUserRef{ID: m.UserID},
		CreatedAt: m.CreatedAt,
	}
}

func toMovementResponse(d *entity.MovementDetail) dto.MovementResponse {
	return dto.MovementResponse{
		ID:       d.ID,
		Type:     d.Type,
		Quantity: d.Quantity,
		Reason:   d.Reason,
		Product: dto.MovementProductRef{
			ID:   d.ProductID,
			Name: d.ProductName,
		},
		User: dto.MovementUserRef{
			ID:    d.UserID,
			Name:  d.UserName,
			Email: d.UserEmail,
		},
		CreatedAt: d.CreatedAt,
	}
}
