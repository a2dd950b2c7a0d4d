package persistence

import (
	"errors"
	"strings"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// isConstraintViolation reconoce violaciones de unicidad/integridad en los tres motores.
func isConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.HasPrefix(pgErr.Code, "23") // integrity_constraint_violation
	}
	var myErr *mysqldriver.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1062 || myErr.Number == 1451 || myErr.Number == 1452
	}
	msg := err.Error()
	// ORA-00001 unique constraint, ORA-02291/02292 integridad referencial; SQLite "constraint failed"
	return strings.Contains(msg, "ORA-00001") || strings.Contains(msg, "ORA-0229") ||
		strings.Contains(msg, "constraint failed")
}
