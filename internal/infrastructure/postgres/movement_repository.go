package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/josevesidio/university-backend-dev-project/internal/domain/entity"
	"github.com/josevesidio/university-backend-dev-project/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementação sobre PostgreSQL (usável com pool ou tx).
// A tabela movements é append-only: sem UPDATE nem DELETE.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementDetailColumns = `
	m.id, m.product_id, m.user_id, m.type, m.quantity, m.reason, m.created_at,
	p.name AS product_name, u.name AS user_name, u.email AS user_email`

const movementDetailJoins = `
	FROM movements m
	JOIN products p ON p.id = m.product_id
	JOIN users u ON u.id = m.user_id`

// Create persiste uma movimentação.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movements (id, product_id, user_id, type, quantity, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	reason := (*string)(nil)
	if movement.Reason != "" {
		reason = &movement.Reason
	}
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.UserID, movement.Type,
		movement.Quantity, reason, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// GetDetailByID obtém uma movimentação com produto e usuário resolvidos.
func (r *MovementRepo) GetDetailByID(id string) (*entity.MovementDetail, error) {
	query := `SELECT` + movementDetailColumns + movementDetailJoins + ` WHERE m.id = $1`
	row := r.q.QueryRow(context.Background(), query, id)
	detail, err := scanMovementDetail(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return detail, nil
}

// ListDetails lista movimentações com filtros opcionais por tipo e produto,
// ordenadas por criação descendente.
func (r *MovementRepo) ListDetails(filter repository.MovementFilter) ([]*entity.MovementDetail, error) {
	query := `SELECT` + movementDetailColumns + movementDetailJoins
	var args []any
	pos := 1
	where := ""
	if filter.Type != "" {
		where += fmt.Sprintf(" WHERE m.type = $%d", pos)
		args = append(args, filter.Type)
		pos++
	}
	if filter.ProductID != "" {
		if where == "" {
			where += fmt.Sprintf(" WHERE m.product_id = $%d", pos)
		} else {
			where += fmt.Sprintf(" AND m.product_id = $%d", pos)
		}
		args = append(args, filter.ProductID)
	}
	query += where + ` ORDER BY m.created_at DESC`

	return r.list(query, args...)
}

// ListDetailsByProduct lista o histórico de um produto, ordenado por criação descendente.
func (r *MovementRepo) ListDetailsByProduct(productID string) ([]*entity.MovementDetail, error) {
	query := `SELECT` + movementDetailColumns + movementDetailJoins +
		` WHERE m.product_id = $1 ORDER BY m.created_at DESC`
	return r.list(query, productID)
}

func (r *MovementRepo) list(query string, args ...any) ([]*entity.MovementDetail, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovementDetail
	for rows.Next() {
		detail, err := scanMovementDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, detail)
	}
	return list, rows.Err()
}

func scanMovementDetail(row pgx.Row) (*entity.MovementDetail, error) {
	var d entity.MovementDetail
	var reason *string
	err := row.Scan(
		&d.ID, &d.ProductID, &d.UserID, &d.Type, &d.Quantity, &reason, &d.CreatedAt,
		&d.ProductName, &d.UserName, &d.UserEmail,
	)
	if err != nil {
		return nil, err
	}
	if reason != nil {
		d.Reason = *reason
	}
	return &d, nil
}
