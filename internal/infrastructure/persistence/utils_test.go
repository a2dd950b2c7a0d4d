package persistence

import (
	"errors"
	"fmt"
	"testing"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsConstraintViolation(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"postgres unique", &pgconn.PgError{Code: "23505"}, true},
		{"postgres fk envuelto", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503"}), true},
		{"postgres conexión", &pgconn.PgError{Code: "08006"}, false},
		{"mysql duplicate", &mysqldriver.MySQLError{Number: 1062}, true},
		{"mysql sintaxis", &mysqldriver.MySQLError{Number: 1064}, false},
		{"oracle unique", errors.New("ORA-00001: unique constraint (APP.PK_BRANDS) violated"), true},
		{"sqlite", errors.New("UNIQUE constraint failed: brands.id"), true},
		{"gorm traducido", gorm.ErrDuplicatedKey, true},
		{"otro", errors.New("connection refused"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isConstraintViolation(tc.err))
		})
	}
}
