package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-crm/internal/apperr"
)

const pgUniqueViolation = "23505"

// wrapErr traduz erros do driver para a taxonomia do domínio.
// not-found vira o código recebido; unique violation vira conflito;
// o resto é tratado como falha de conectividade.
func wrapErr(err error, notFoundCode string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(notFoundCode)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return apperr.Conflict("duplicate_record")
	}

	return apperr.Connectivity(err)
}
