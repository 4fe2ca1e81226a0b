package employee

import (
	"errors"
	"strings"

	employeeerrors "employee-service/internal/employee/errors"
	"employee-service/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	pgStringDataRightTruncation = "22001"
	pgConnectionExceptionClass  = "08"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgStringDataRightTruncation:
			return apperror.Wrap(err, employeeerrors.ErrFieldTooLong.Code, employeeerrors.ErrFieldTooLong.Message, employeeerrors.ErrFieldTooLong.HTTPStatus)
		case strings.HasPrefix(pgErr.Code, pgConnectionExceptionClass):
			return apperror.Wrap(err, apperror.CodeServiceUnavailable, apperror.ErrServiceUnavailable.Message, apperror.ErrServiceUnavailable.HTTPStatus)
		}
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return apperror.Wrap(err, apperror.CodeServiceUnavailable, apperror.ErrServiceUnavailable.Message, apperror.ErrServiceUnavailable.HTTPStatus)
	}

	return err
}

func isNotFound(err error) bool {
	return errors.Is(err, employeeerrors.ErrEmployeeNotFound)
}
