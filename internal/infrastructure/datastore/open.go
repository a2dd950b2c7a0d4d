package datastore

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	mysqldriver "github.com/go-sql-driver/mysql"
	oracle "github.com/godoes/gorm-oracle"
	gormmysql "gorm.io/driver/mysql"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jhoicas/multistore-api/internal/domain"
	"github.com/jhoicas/multistore-api/pkg/config"
)

// validateSettings comprueba los parámetros mínimos de conexión de un grupo.
func validateSettings(group string, cfg config.DatasourceConfig) (Dialect, DDLAuto, error) {
	dialect, err := ResolveDialect(cfg.Driver, cfg.Dialect)
	if err != nil {
		return "", "", fmt.Errorf("store %s: %w", group, err)
	}
	if strings.TrimSpace(cfg.URL) == "" {
		return "", "", fmt.Errorf("store %s: %w: url requerida", group, domain.ErrConfiguration)
	}
	if dialect.requiresCredentials() && strings.TrimSpace(cfg.Username) == "" {
		return "", "", fmt.Errorf("store %s: %w: username requerido", group, domain.ErrConfiguration)
	}
	policy, err := ParseDDLAuto(cfg.DDLAuto)
	if err != nil {
		return "", "", fmt.Errorf("store %s: %w", group, err)
	}
	return dialect, policy, nil
}

// openDialector construye el dialector GORM del motor indicado. release libera recursos
// que no gestiona database/sql (el pool pgx en PostgreSQL); puede ser nil.
func openDialector(ctx context.Context, d Dialect, cfg config.DatasourceConfig) (dialector gorm.Dialector, release func(), err error) {
	switch d {
	case MySQL:
		dsn, err := mysqlDSN(cfg)
		if err != nil {
			return nil, nil, err
		}
		return gormmysql.Open(dsn), nil, nil
	case Postgres:
		return postgresDialector(ctx, cfg)
	case Oracle:
		dsn, err := oracleDSN(cfg)
		if err != nil {
			return nil, nil, err
		}
		return oracle.Open(dsn), nil, nil
	case SQLite:
		return gormsqlite.Open(cfg.URL), nil, nil
	}
	return nil, nil, fmt.Errorf("%w: dialecto %q sin driver", domain.ErrConfiguration, d)
}

// mysqlDSN acepta el formato del driver (user:pass@tcp(host:3306)/db?...) y sobrescribe credenciales.
// parseTime se fuerza para que los DATETIME se escaneen como time.Time.
func mysqlDSN(cfg config.DatasourceConfig) (string, error) {
	mc, err := mysqldriver.ParseDSN(cfg.URL)
	if err != nil {
		return "", fmt.Errorf("%w: url mysql: %v", domain.ErrConfiguration, err)
	}
	if cfg.Username != "" {
		mc.User = cfg.Username
	}
	if cfg.Password != "" {
		mc.Passwd = cfg.Password
	}
	mc.ParseTime = true
	if mc.Timeout == 0 && cfg.ConnectTimeout > 0 {
		mc.Timeout = cfg.ConnectTimeout
	}
	return mc.FormatDSN(), nil
}

// oracleDSN espera una URL go-ora (oracle://host:1521/servicio?opciones).
func oracleDSN(cfg config.DatasourceConfig) (string, error) {
	u, err := url.Parse(cfg.URL)
	if err != nil || u.Scheme != "oracle" || u.Host == "" {
		return "", fmt.Errorf("%w: url oracle inválida %q (oracle://host:puerto/servicio)", domain.ErrConfiguration, cfg.URL)
	}
	if cfg.Username != "" {
		u.User = url.UserPassword(cfg.Username, cfg.Password)
	}
	return u.String(), nil
}
