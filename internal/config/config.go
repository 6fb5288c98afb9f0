package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
	AutoMigrate        bool
}

// MinIOConfig holds object storage settings used to archive generated reports.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// ReportConfig controls the loyalty report window, threshold and archiving.
type ReportConfig struct {
	LoyaltyThreshold decimal.Decimal
	WindowDays       int
	ArchiveEnabled   bool
	ArchivePrefix    string
}

// TracingConfig mirrors the standard OTEL_* variables the tracer provider honours.
type TracingConfig struct {
	Disabled    bool
	ServiceName string
	Protocol    string
	Endpoint    string
	Sampler     string
	SamplerArg  string
}

// MessagesConfig holds the human-readable "detail" texts returned to API callers.
type MessagesConfig struct {
	MissingParams       string
	InvalidDocumentType string
	ClientNotFound      string
	NoPurchases         string
	NoQualifyingClients string
	Internal            string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost     string
	Port        string
	Env         string
	LogLevel    string
	CORSOrigins []string
	Database    DatabaseConfig
	MinIO       MinIOConfig
	Report      ReportConfig
	Tracing     TracingConfig
	Messages    MessagesConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
func Load() *AppConfig {
	return &AppConfig{
		AppHost:     getEnv("APP_HOST", "localhost:8080"),
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("APP_ENV", "production"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: getEnvList("CORS_ALLOW_ORIGINS", []string{"http://127.0.0.1:5500", "http://localhost:5500"}),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
			AutoMigrate:        getEnvBool("DB_AUTO_MIGRATE", false),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Report: ReportConfig{
			LoyaltyThreshold: getEnvDecimal("REPORT_LOYALTY_THRESHOLD", decimal.NewFromInt(5_000_000)),
			WindowDays:       getEnvInt("REPORT_WINDOW_DAYS", 30),
			ArchiveEnabled:   getEnvBool("REPORT_ARCHIVE_ENABLED", false),
			ArchivePrefix:    getEnv("REPORT_ARCHIVE_PREFIX", "reports/loyalty"),
		},
		Tracing: TracingConfig{
			Disabled:    getEnvBool("OTEL_SDK_DISABLED", false),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "loyaltyapi"),
			Protocol:    getEnv("OTEL_EXPORTER_OTLP_PROTOCOL", "grpc"),
			Endpoint:    getEnv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "")),
			Sampler:     getEnv("OTEL_TRACES_SAMPLER", "parentbased_traceidratio"),
			SamplerArg:  getEnv("OTEL_TRACES_SAMPLER_ARG", "1.0"),
		},
		Messages: MessagesConfig{
			MissingParams:       getEnv("MSG_MISSING_PARAMS", "Parámetros requeridos: document_type y document_number"),
			InvalidDocumentType: getEnv("MSG_INVALID_DOCUMENT_TYPE", "Tipo de documento no válido"),
			ClientNotFound:      getEnv("MSG_CLIENT_NOT_FOUND", "Cliente no encontrado"),
			NoPurchases:         getEnv("MSG_NO_PURCHASES", "No hay compras registradas en el último mes."),
			NoQualifyingClients: getEnv("MSG_NO_QUALIFYING_CLIENTS", "No hay clientes que superen el monto mínimo para fidelización."),
			Internal:            getEnv("MSG_INTERNAL_ERROR", "Error interno del servidor"),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvDecimal(key string, def decimal.Decimal) decimal.Decimal {
	if v := os.Getenv(key); v != "" {
		d, err := decimal.NewFromString(v)
		if err == nil {
			return d
		}
	}
	return def
}

// getEnvList splits a comma separated value, dropping blanks.
func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
