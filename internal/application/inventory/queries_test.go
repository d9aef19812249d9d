package inventory_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josevesidio/university-backend-dev-project/internal/application/inventory"
	"github.com/josevesidio/university-backend-dev-project/internal/domain"
	"github.com/josevesidio/university-backend-dev-project/internal/domain/entity"
	"github.com/josevesidio/university-backend-dev-project/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func newQueryUC(store *fakeStore) *inventory.MovementQueryUseCase {
	return inventory.NewMovementQueryUseCase(
		&fakeMovementRepo{store: store},
		&fakeProductRepo{store: store},
	)
}

// addMovement insere uma movimentação diretamente no store, com timestamp
// controlado para os tests de ordenação.
func addMovement(store *fakeStore, product *entity.Product, user *entity.User, movType string, quantity int64, createdAt time.Time) *entity.Movement {
	m := &entity.Movement{
		ID:        uuid.New().String(),
		ProductID: product.ID,
		UserID:    user.ID,
		Type:      movType,
		Quantity:  quantity,
		CreatedAt: createdAt,
	}
	store.movements = append(store.movements, m)
	return m
}

// ──────────────────────────────────────────────────────────────────────────────
// List — filtros e ordenação
// ──────────────────────────────────────────────────────────────────────────────

// Sem filtros, a listagem devolve todas as movimentações ordenadas por
// criação descendente (a mais recente primeiro).
func TestQueryList_SemFiltros_OrdenaPorCriacaoDescendente(t *testing.T) {
	store := newFakeStore()
	product := store.addProduct("Parafuso 6mm", 100)
	user := store.addUser("Maria", "maria@example.com")
	uc := newQueryUC(store)

	base := time.Now()
	first := addMovement(store, product, user, entity.MovementTypeEntrada, 10, base)
	second := addMovement(store, product, user, entity.MovementTypeSaida, 5, base.Add(time.Minute))
	third := addMovement(store, product, user, entity.MovementTypeAjuste, 50, base.Add(2*time.Minute))

	out, err := uc.List(repository.MovementFilter{})
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.Equal(t, third.ID, out[0].ID, "a movimentação mais recente vem primeiro")
	assert.Equal(t, second.ID, out[1].ID)
	assert.Equal(t, first.ID, out[2].ID)
}

func TestQueryList_FiltraPorTipo(t *testing.T) {
	store := newFakeStore()
	product := store.addProduct("Parafuso 6mm", 100)
	user := store.addUser("Maria", "maria@example.com")
	uc := newQueryUC(store)

	base := time.Now()
	addMovement(store, product, user, entity.MovementTypeEntrada, 10, base)
	saida := addMovement(store, product, user, entity.MovementTypeSaida, 5, base.Add(time.Minute))
	addMovement(store, product, user, entity.MovementTypeDevolucao, 2, base.Add(2*time.Minute))

	out, err := uc.List(repository.MovementFilter{Type: entity.MovementTypeSaida})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, saida.ID, out[0].ID)
	assert.Equal(t, entity.MovementTypeSaida, out[0].Type)
}

func TestQueryList_FiltraPorProduto(t *testing.T) {
	store := newFakeStore()
	parafuso := store.addProduct("Parafuso 6mm", 100)
	porca := store.addProduct("Porca 6mm", 30)
	user := store.addUser("Maria", "maria@example.com")
	uc := newQueryUC(store)

	base := time.Now()
	addMovement(store, parafuso, user, entity.MovementTypeEntrada, 10, base)
	daPorca := addMovement(store, porca, user, entity.MovementTypeEntrada, 3, base.Add(time.Minute))

	out, err := uc.List(repository.MovementFilter{ProductID: porca.ID})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, daPorca.ID, out[0].ID)
	assert.Equal(t, "Porca 6mm", out[0].Product.Name, "a associação de produto vem resolvida")
}

// Filtros combinados: tipo E produto ao mesmo tempo.
func TestQueryList_FiltroCombinado(t *testing.T) {
	store := newFakeStore()
	parafuso := store.addProduct("Parafuso 6mm", 100)
	porca := store.addProduct("Porca 6mm", 30)
	user := store.addUser("Maria", "maria@example.com")
	uc := newQueryUC(store)

	base := time.Now()
	addMovement(store, parafuso, user, entity.MovementTypeSaida, 5, base)
	addMovement(store, porca, user, entity.MovementTypeEntrada, 3, base.Add(time.Minute))
	alvo := addMovement(store, porca, user, entity.MovementTypeSaida, 1, base.Add(2*time.Minute))

	out, err := uc.List(repository.MovementFilter{
		Type:      entity.MovementTypeSaida,
		ProductID: porca.ID,
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, alvo.ID, out[0].ID)
}

func TestQueryList_SemMovimentacoes_DevolveVazio(t *testing.T) {
	store := newFakeStore()
	uc := newQueryUC(store)

	out, err := uc.List(repository.MovementFilter{})
	require.NoError(t, err)
	assert.Empty(t, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetByID
// ──────────────────────────────────────────────────────────────────────────────

func TestQueryGetByID_DevolveComAssociacoes(t *testing.T) {
	store := newFakeStore()
	product := store.addProduct("Parafuso 6mm", 100)
	user := store.addUser("Maria", "maria@example.com")
	uc := newQueryUC(store)

	m := addMovement(store, product, user, entity.MovementTypeEntrada, 10, time.Now())

	out, err := uc.GetByID(m.ID)
	require.NoError(t, err)

	assert.Equal(t, m.ID, out.ID)
	assert.Equal(t, "Parafuso 6mm", out.Product.Name)
	assert.Equal(t, "Maria", out.User.Name)
	assert.Equal(t, "maria@example.com", out.User.Email)
}

func TestQueryGetByID_Inexistente_ErrNotFound(t *testing.T) {
	store := newFakeStore()
	uc := newQueryUC(store)

	_, err := uc.GetByID(uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// HistoryByProduct
// ──────────────────────────────────────────────────────────────────────────────

// O histórico devolve id, nome e estoque atual do produto mais as
// movimentações dele, da mais recente para a mais antiga.
func TestHistoryByProduct_DevolveEnvelopeComEstoqueAtual(t *testing.T) {
	store := newFakeStore()
	parafuso := store.addProduct("Parafuso 6mm", 70)
	porca := store.addProduct("Porca 6mm", 30)
	user := store.addUser("Maria", "maria@example.com")
	uc := newQueryUC(store)

	base := time.Now()
	entrada := addMovement(store, parafuso, user, entity.MovementTypeEntrada, 100, base)
	saida := addMovement(store, parafuso, user, entity.MovementTypeSaida, 30, base.Add(time.Minute))
	addMovement(store, porca, user, entity.MovementTypeEntrada, 30, base.Add(2*time.Minute))

	out, err := uc.HistoryByProduct(parafuso.ID)
	require.NoError(t, err)

	assert.Equal(t, parafuso.ID, out.Product.ID)
	assert.Equal(t, "Parafuso 6mm", out.Product.Name)
	assert.Equal(t, int64(70), out.Product.CurrentStock)

	require.Len(t, out.Movements, 2, "só as movimentações do produto pedido")
	assert.Equal(t, saida.ID, out.Movements[0].ID, "mais recente primeiro")
	assert.Equal(t, entrada.ID, out.Movements[1].ID)
}

func TestHistoryByProduct_ProdutoSemMovimentacoes_DevolveVazio(t *testing.T) {
	store := newFakeStore()
	product := store.addProduct("Parafuso 6mm", 10)
	uc := newQueryUC(store)

	out, err := uc.HistoryByProduct(product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), out.Product.CurrentStock)
	assert.Empty(t, out.Movements)
}

// A existência do produto é pré-condição do histórico.
func TestHistoryByProduct_ProdutoInexistente_ErrNotFound(t *testing.T) {
	store := newFakeStore()
	uc := newQueryUC(store)

	_, err := uc.HistoryByProduct(uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
