package config

import (
	"testing"
	"time"

	"github.com/riskibarqy/futsal-stats/internal/platform/logging"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DataSource != DataSourceMemory {
		t.Fatalf("unexpected DataSource: %q", cfg.DataSource)
	}
	if cfg.HTTPEngine != HTTPEngineStd {
		t.Fatalf("unexpected HTTPEngine: %q", cfg.HTTPEngine)
	}
	if !cfg.DatasetStrictRosters {
		t.Fatalf("expected strict rosters by default")
	}
	if cfg.LogFormat != logging.FormatConsole {
		t.Fatalf("expected console logs in dev, got %q", cfg.LogFormat)
	}
	if cfg.ReportMaxWorkers != 4 {
		t.Fatalf("unexpected ReportMaxWorkers: %d", cfg.ReportMaxWorkers)
	}
	if !cfg.SourceCircuit.Enabled || cfg.SourceCircuit.FailureThreshold != 3 {
		t.Fatalf("unexpected SourceCircuit: %+v", cfg.SourceCircuit)
	}
	if cfg.VenueAbbreviations != nil {
		t.Fatalf("expected no venue abbreviation override, got %v", cfg.VenueAbbreviations)
	}
}

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_ProdDefaultsToJSONLogs(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LogFormat != logging.FormatJSON {
		t.Fatalf("expected json logs in prod, got %q", cfg.LogFormat)
	}
}

func TestLoad_DataSourceValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("DATA_SOURCE", "mongo")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown DATA_SOURCE")
	}
}

func TestLoad_FileSourceParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("DATA_SOURCE", "FILE")
	t.Setenv("DATASET_MATCHES_PATH", "/data/results.csv")
	t.Setenv("DATASET_GOALS_PATH", "/data/goals.xlsx")
	t.Setenv("DATASET_STRICT_ROSTERS", "false")
	t.Setenv("VENUE_ABBREVIATIONS", "Clube Geraldo Santana:CGS, Quadra Nova:QN")
	t.Setenv("APP_HTTP_ENGINE", "fasthttp")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DataSource != DataSourceFile {
		t.Fatalf("unexpected DataSource: %q", cfg.DataSource)
	}
	if cfg.DatasetMatchesPath != "/data/results.csv" || cfg.DatasetGoalsPath != "/data/goals.xlsx" {
		t.Fatalf("unexpected dataset paths: %q %q", cfg.DatasetMatchesPath, cfg.DatasetGoalsPath)
	}
	if cfg.DatasetStrictRosters {
		t.Fatalf("expected lenient rosters")
	}
	if got := cfg.VenueAbbreviations["Quadra Nova"]; got != "QN" {
		t.Fatalf("unexpected abbreviation: %q", got)
	}
	if cfg.HTTPEngine != HTTPEngineFastHTTP {
		t.Fatalf("unexpected HTTPEngine: %q", cfg.HTTPEngine)
	}
}

func TestLoad_VenueAbbreviationsValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("VENUE_ABBREVIATIONS", "Clube Geraldo Santana")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for malformed VENUE_ABBREVIATIONS")
	}
}

func TestLoad_SourceCircuitParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("SOURCE_CIRCUIT_ENABLED", "false")
	t.Setenv("SOURCE_CIRCUIT_FAILURE_COUNT", "7")
	t.Setenv("SOURCE_CIRCUIT_OPEN_TIMEOUT", "45s")
	t.Setenv("SOURCE_CIRCUIT_HALF_OPEN_MAX_REQ", "2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.SourceCircuit.Enabled {
		t.Fatalf("expected circuit disabled")
	}
	if cfg.SourceCircuit.FailureThreshold != 7 || cfg.SourceCircuit.OpenTimeout != 45*time.Second || cfg.SourceCircuit.HalfOpenMaxReq != 2 {
		t.Fatalf("unexpected SourceCircuit: %+v", cfg.SourceCircuit)
	}
}

func TestLoad_SourceCircuitValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("SOURCE_CIRCUIT_FAILURE_COUNT", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for SOURCE_CIRCUIT_FAILURE_COUNT=0")
	}
}

func TestLoad_ReportWorkersValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("REPORT_MAX_WORKERS", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for REPORT_MAX_WORKERS=0")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestParseUptraceDSNFromOTLPHeaders(t *testing.T) {
	got := parseUptraceDSNFromOTLPHeaders(`foo=bar, uptrace-dsn="https://token@api.uptrace.dev?grpc=4317"`)
	if got != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected dsn: %q", got)
	}
	if got := parseUptraceDSNFromOTLPHeaders(""); got != "" {
		t.Fatalf("expected empty dsn, got %q", got)
	}
}

func TestLoad_PyroscopeRequiresServerAddress(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}
