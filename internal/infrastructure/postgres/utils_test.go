package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func pgError(code string) *pgconn.PgError {
	return &pgconn.PgError{Code: code, Message: "test"}
}

// ──────────────────────────────────────────────────────────────────────────────
// isRetryableTxFailure
// ──────────────────────────────────────────────────────────────────────────────

// Falhas de serialização, deadlock e lock timeout são repetíveis: viram
// domain.ErrTxConflict no TxRunner.
func TestIsRetryableTxFailure_CodigosRepetiveis(t *testing.T) {
	cases := []struct {
		name string
		code string
	}{
		{"serialization_failure", "40001"},
		{"deadlock_detected", "40P01"},
		{"lock_not_available", "55P03"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, isRetryableTxFailure(pgError(tc.code)),
				"código %s deve ser classificado como repetível", tc.code)
		})
	}
}

// O erro pgx costuma chegar embrulhado; a classificação usa errors.As e
// atravessa a cadeia.
func TestIsRetryableTxFailure_ErroEmbrulhado(t *testing.T) {
	err := fmt.Errorf("exec query: %w", pgError("40P01"))
	assert.True(t, isRetryableTxFailure(err))
}

func TestIsRetryableTxFailure_OutrosErros_NaoSaoRepetiveis(t *testing.T) {
	assert.False(t, isRetryableTxFailure(pgError("23505")), "violação de único não é repetível")
	assert.False(t, isRetryableTxFailure(pgError("23503")), "violação de FK não é repetível")
	assert.False(t, isRetryableTxFailure(errors.New("connection refused")))
}

// ──────────────────────────────────────────────────────────────────────────────
// isUniqueViolation / isForeignKeyViolation
// ──────────────────────────────────────────────────────────────────────────────

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(pgError("23505")))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert product: %w", pgError("23505"))))
	assert.False(t, isUniqueViolation(pgError("23503")))
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, isForeignKeyViolation(pgError("23503")))
	assert.True(t, isForeignKeyViolation(fmt.Errorf("delete product: %w", pgError("23503"))))
	assert.False(t, isForeignKeyViolation(pgError("23505")))
}
