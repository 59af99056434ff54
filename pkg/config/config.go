package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	Data     DataConfig
	DB       DBConfig
	JWT      JWTConfig
	AI       AIConfig
	Insights InsightsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host     string
	Port     int
	DocsPath string // swagger.json; si no existe no se monta /docs
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DataConfig origen del dataset segmentado.
type DataConfig struct {
	Source   string // "csv" | "postgres"
	Path     string // ruta relativa del CSV
	Encoding string // "utf-8" | "latin1"
	Watch    bool   // recarga automática cuando cambia el archivo
}

// DBConfig configuración de PostgreSQL (solo con DATA_SOURCE=postgres o rfmctl import).
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig configuración de JWT. Secret vacío desactiva la autenticación de /api.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// Enabled indica si la API exige token.
func (c JWTConfig) Enabled() bool { return c.Secret != "" }

// AIConfig narrador opcional de insights. Provider: "anthropic" | "gemini".
// Sin API key del proveedor elegido el narrador queda deshabilitado.
type AIConfig struct {
	Provider        string
	AnthropicAPIKey string
	AnthropicModel  string
	GeminiAPIKey    string
	GeminiModel     string
}

// Enabled indica si el proveedor elegido tiene credenciales.
func (c AIConfig) Enabled() bool {
	switch c.Provider {
	case "gemini":
		return c.GeminiAPIKey != ""
	default:
		return c.AnthropicAPIKey != ""
	}
}

// InsightsConfig parámetros de la vista de insights.
type InsightsConfig struct {
	ChurnDays         int    // umbral de recency para "riesgo de abandono"
	TransactionsLabel string // texto del encabezado, ej. "800k+"
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, DATA_PATH, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

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

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "rfm-dashboard"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host:     getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:     getInt(v, "HTTP_PORT", 8501),
			DocsPath: getString(v, "HTTP_DOCS_PATH", "./docs/swagger.json"),
		},
		Data: DataConfig{
			Source:   strings.ToLower(getString(v, "DATA_SOURCE", "csv")),
			Path:     getString(v, "DATA_PATH", "data/processed/rfm_segmented.csv"),
			Encoding: strings.ToLower(getString(v, "DATA_ENCODING", "utf-8")),
			Watch:    getBool(v, "DATA_WATCH", false),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "rfm"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "rfm-dashboard"),
		},
		AI: AIConfig{
			Provider:        strings.ToLower(getString(v, "AI_PROVIDER", "anthropic")),
			AnthropicAPIKey: getString(v, "AI_ANTHROPIC_API_KEY", ""),
			AnthropicModel:  getString(v, "AI_ANTHROPIC_MODEL", "claude-3-5-haiku-20241022"),
			GeminiAPIKey:    getString(v, "AI_GEMINI_API_KEY", ""),
			GeminiModel:     getString(v, "AI_GEMINI_MODEL", "gemini-1.5-flash"),
		},
		Insights: InsightsConfig{
			ChurnDays:         getInt(v, "INSIGHTS_CHURN_DAYS", 400),
			TransactionsLabel: getString(v, "DASHBOARD_TRANSACTIONS_LABEL", "800k+"),
		},
	}

	switch cfg.Data.Source {
	case "csv", "postgres":
	default:
		return nil, fmt.Errorf("config: DATA_SOURCE inválido %q (csv|postgres)", cfg.Data.Source)
	}
	switch cfg.AI.Provider {
	case "anthropic", "gemini":
	default:
		return nil, fmt.Errorf("config: AI_PROVIDER inválido %q (anthropic|gemini)", cfg.AI.Provider)
	}
	if cfg.Insights.ChurnDays <= 0 {
		return nil, fmt.Errorf("config: INSIGHTS_CHURN_DAYS debe ser positivo")
	}
	return cfg, nil
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

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
