// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
)

func TestParseFlags_EnvVars(t *testing.T) {
	// Set env vars
	os.Setenv("SM_ACCESS_TOKEN", "env-token")
	os.Setenv("SM_SURVEY_ID", "900000001")
	os.Setenv("EXPORT_FORMAT", "jsonl")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.AccessToken != "env-token" {
		t.Errorf("expected env token, got %q", cfg.AccessToken)
	}
	if cfg.Format != "jsonl" {
		t.Errorf("expected format jsonl, got %q", cfg.Format)
	}
	if cfg.Output != "900000001.jsonl" {
		t.Errorf("expected default output 900000001.jsonl, got %q", cfg.Output)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("SM_ACCESS_TOKEN", "env-token")
	os.Setenv("EXPORT_FORMAT", "jsonl")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-token", "cli-token", "-s", "900000001", "-f", "csv"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.AccessToken != "cli-token" {
		t.Errorf("CLI should override env: expected cli-token, got %q", cfg.AccessToken)
	}
	if cfg.Format != "csv" {
		t.Errorf("CLI should override env: expected csv, got %q", cfg.Format)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	os.Setenv("SM_ACCESS_TOKEN", "env-token")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-s", "900000001"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Format != "csv" {
		t.Errorf("expected default format csv, got %q", cfg.Format)
	}
	if cfg.Status != "completed" {
		t.Errorf("expected default status completed, got %q", cfg.Status)
	}
	if cfg.CollisionPolicy != "squish" {
		t.Errorf("expected default policy squish, got %q", cfg.CollisionPolicy)
	}
}

func TestParseFlags_MissingToken(t *testing.T) {
	os.Clearenv()

	if _, err := ParseFlags([]string{"-s", "900000001"}); err == nil {
		t.Fatal("expected error when token missing")
	}
}

func TestParseFlags_ListNeedsNoSurvey(t *testing.T) {
	os.Clearenv()
	os.Setenv("SM_ACCESS_TOKEN", "env-token")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-l"})
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.ListSurveys {
		t.Error("expected ListSurveys to be set")
	}
}

func TestParseFlags_DBFormatRequiresURL(t *testing.T) {
	os.Clearenv()
	os.Setenv("SM_ACCESS_TOKEN", "env-token")
	defer os.Clearenv()

	if _, err := ParseFlags([]string{"-s", "900000001", "-f", "db"}); err == nil {
		t.Fatal("expected error when db format has no database URL")
	}

	cfg, err := ParseFlags([]string{"-s", "900000001", "-f", "db", "-d", "file:records.db"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected default database type sqlite, got %q", cfg.DatabaseType)
	}
}

func TestParseFlags_InvalidCollisionPolicy(t *testing.T) {
	os.Clearenv()
	os.Setenv("SM_ACCESS_TOKEN", "env-token")
	defer os.Clearenv()

	if _, err := ParseFlags([]string{"-s", "900000001", "-collisions", "overwrite"}); err == nil {
		t.Fatal("expected error for unknown collision policy")
	}
}
