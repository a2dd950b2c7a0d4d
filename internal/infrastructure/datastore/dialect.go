package datastore

import (
	"fmt"
	"strings"

	"github.com/jhoicas/multistore-api/internal/domain"
)

// Dialect motor SQL de un store. Determina el dialector de GORM y el DDL generado.
type Dialect string

const (
	MySQL    Dialect = "mysql"
	Postgres Dialect = "postgres"
	Oracle   Dialect = "oracle"
	SQLite   Dialect = "sqlite"
)

// driverAliases admite tanto el nombre del driver Go como el nombre de clase JDBC
// que suele venir en configuraciones heredadas.
var driverAliases = map[string]Dialect{
	"mysql":                           MySQL,
	"mariadb":                         MySQL,
	"com.mysql.cj.jdbc.driver":        MySQL,
	"com.mysql.jdbc.driver":           MySQL,
	"org.mariadb.jdbc.driver":         MySQL,
	"postgres":                        Postgres,
	"postgresql":                      Postgres,
	"pgx":                             Postgres,
	"org.postgresql.driver":           Postgres,
	"oracle":                          Oracle,
	"go-ora":                          Oracle,
	"oracle.jdbc.oracledriver":        Oracle,
	"oracle.jdbc.driver.oracledriver": Oracle,
	"sqlite":                          SQLite,
	"sqlite3":                         SQLite,
	"org.sqlite.jdbc":                 SQLite,
}

// DriverDialect resuelve el dialecto implícito de un driver.
func DriverDialect(driver string) (Dialect, error) {
	key := strings.ToLower(strings.TrimSpace(driver))
	if key == "" {
		return "", fmt.Errorf("%w: driver requerido", domain.ErrConfiguration)
	}
	d, ok := driverAliases[key]
	if !ok {
		return "", fmt.Errorf("%w: driver %q no soportado", domain.ErrConfiguration, driver)
	}
	return d, nil
}

// ParseDialect interpreta un nombre de dialecto. Acepta nombres cortos ("postgres")
// y nombres de clase como "org.hibernate.dialect.MySQL8Dialect".
func ParseDialect(name string) (Dialect, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	switch {
	case strings.Contains(s, "mysql"), strings.Contains(s, "mariadb"):
		return MySQL, nil
	case strings.Contains(s, "postgre"):
		return Postgres, nil
	case strings.Contains(s, "oracle"):
		return Oracle, nil
	case strings.Contains(s, "sqlite"):
		return SQLite, nil
	}
	return "", fmt.Errorf("%w: dialecto %q no soportado", domain.ErrConfiguration, name)
}

// ResolveDialect combina driver y dialecto configurados. El dialecto es opcional,
// pero si se indica debe corresponder al driver.
func ResolveDialect(driver, dialect string) (Dialect, error) {
	byDriver, err := DriverDialect(driver)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(dialect) == "" {
		return byDriver, nil
	}
	declared, err := ParseDialect(dialect)
	if err != nil {
		return "", err
	}
	if declared != byDriver {
		return "", fmt.Errorf("%w: dialecto %q incompatible con driver %q", domain.ErrConfiguration, dialect, driver)
	}
	return declared, nil
}

// requiresCredentials los motores de red exigen usuario; SQLite no.
func (d Dialect) requiresCredentials() bool {
	return d != SQLite
}
