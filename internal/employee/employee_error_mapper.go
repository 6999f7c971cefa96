package employee

import (
	"errors"
	"strings"

	employeeerrors "hr-ops/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
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
		if pgErr.Code == "23505" {
			return employeeerrors.ErrEmployeeNumberTaken
		}
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return employeeerrors.ErrEmployeeNumberTaken
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "employee_number") &&
		(strings.Contains(errMsg, "duplicate") || strings.Contains(errMsg, "unique constraint")) {
		return employeeerrors.ErrEmployeeNumberTaken
	}

	return err
}
