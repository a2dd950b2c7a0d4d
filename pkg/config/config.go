package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App         AppConfig
	HTTP        HTTPConfig
	JWT         JWTConfig
	Datasources map[string]DatasourceConfig // clave: grupo de entidad (user, company, brand)
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig configuración de JWT. Con Secret vacío la API queda sin autenticación.
type JWTConfig struct {
	Secret string
	Issuer string
}

// DatasourceConfig configuración resuelta de un store.
// Driver acepta nombres Go (mysql, postgres, oracle, sqlite) o el nombre de clase JDBC equivalente.
// URL es el DSN nativo del driver; Username/Password se inyectan sobre él.
type DatasourceConfig struct {
	Driver          string
	URL             string
	Username        string
	Password        string
	Dialect         string // opcional; si se indica debe coincidir con el driver
	DDLAuto         string // validate, update, create, create-drop, none
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	QueryTimeout    time.Duration
	ConnectTimeout  time.Duration
}

// defaultDrivers asignación por defecto de cada grupo a su motor.
var defaultDrivers = map[string]string{
	"user":    "mysql",
	"company": "postgres",
	"brand":   "oracle",
}

// Groups grupos de entidades con datasource configurable.
var Groups = []string{"user", "company", "brand"}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, DATASOURCE_USER_URL, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return FromViper(v)
}

// FromViper construye la configuración a partir de una instancia de Viper ya cargada.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "multistore-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret: getString(v, "JWT_SECRET", ""),
			Issuer: getString(v, "JWT_ISSUER", "multistore-api"),
		},
		Datasources: make(map[string]DatasourceConfig, len(Groups)),
	}

	for _, group := range Groups {
		ds, err := loadDatasource(v, group)
		if err != nil {
			return nil, err
		}
		cfg.Datasources[group] = ds
	}
	return cfg, nil
}

func loadDatasource(v *viper.Viper, group string) (DatasourceConfig, error) {
	prefix := "DATASOURCE_" + strings.ToUpper(group) + "_"

	lifetime, err := getDuration(v, prefix+"CONN_MAX_LIFETIME", 30*time.Minute)
	if err != nil {
		return DatasourceConfig{}, err
	}
	queryTimeout, err := getDuration(v, prefix+"QUERY_TIMEOUT", 5*time.Second)
	if err != nil {
		return DatasourceConfig{}, err
	}
	connectTimeout, err := getDuration(v, prefix+"CONNECT_TIMEOUT", 10*time.Second)
	if err != nil {
		return DatasourceConfig{}, err
	}

	return DatasourceConfig{
		Driver:          getString(v, prefix+"DRIVER", defaultDrivers[group]),
		URL:             getString(v, prefix+"URL", ""),
		Username:        getString(v, prefix+"USERNAME", ""),
		Password:        getString(v, prefix+"PASSWORD", ""),
		Dialect:         getString(v, prefix+"DIALECT", ""),
		DDLAuto:         getString(v, prefix+"DDL_AUTO", "none"),
		MaxOpenConns:    getInt(v, prefix+"MAX_OPEN_CONNS", 10),
		MaxIdleConns:    getInt(v, prefix+"MAX_IDLE_CONNS", 2),
		ConnMaxLifetime: lifetime,
		QueryTimeout:    queryTimeout,
		ConnectTimeout:  connectTimeout,
	}, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

// getDuration acepta "5s", "30m" o un entero en segundos.
func getDuration(v *viper.Viper, key string, def time.Duration) (time.Duration, error) {
	if !v.IsSet(key) {
		return def, nil
	}
	raw := strings.TrimSpace(v.GetString(key))
	if raw == "" {
		return def, nil
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: duración inválida %q: %w", key, raw, err)
	}
	return d, nil
}
