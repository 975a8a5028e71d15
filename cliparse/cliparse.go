package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
)

const (
	FormatCSV   = "csv"
	FormatJSONL = "jsonl"
	FormatDB    = "db"
)

type Config struct {
	AccessToken     string
	BaseURL         string
	SurveyID        string
	Output          string
	Format          string
	Status          string
	CollisionPolicy string
	DatabaseURL     string
	DatabaseType    string
	ListSurveys     bool
}

// ParseFlags validates flags and applies environment fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("surveyflat", flag.ContinueOnError)

	fs.StringVar(&cfg.SurveyID, "s", "", "Survey ID to export")
	fs.StringVar(&cfg.Output, "o", "", "Output file path (default <survey_id>.<format>)")
	fs.StringVar(&cfg.Format, "f", "", "Output format (csv, jsonl, or db)")
	fs.StringVar(&cfg.Status, "status", "", "Response status filter")
	fs.StringVar(&cfg.CollisionPolicy, "collisions", "", "Column collision policy (squish or enumerate)")
	fs.StringVar(&cfg.BaseURL, "u", "", "API base URL")
	fs.BoolVar(&cfg.ListSurveys, "l", false, "List surveys and exit")

	// Database sink (only used with -f db)
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Secret (prefer env variable, but allow CLI for dev)
	fs.StringVar(&cfg.AccessToken, "token", "", "API access token (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.AccessToken == "" {
		cfg.AccessToken = os.Getenv("SM_ACCESS_TOKEN")
	}
	if cfg.AccessToken == "" {
		return Config{}, errors.New("access token required (use -token or SM_ACCESS_TOKEN env)")
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = os.Getenv("SM_BASE_URL")
	}

	if cfg.SurveyID == "" {
		cfg.SurveyID = os.Getenv("SM_SURVEY_ID")
	}
	if cfg.SurveyID == "" && !cfg.ListSurveys {
		return Config{}, errors.New("survey ID required (use -s or SM_SURVEY_ID env)")
	}

	if cfg.Format == "" {
		cfg.Format = os.Getenv("EXPORT_FORMAT")
		if cfg.Format == "" {
			cfg.Format = FormatCSV
		}
	}
	switch cfg.Format {
	case FormatCSV, FormatJSONL, FormatDB:
	default:
		return Config{}, fmt.Errorf("invalid format %q (want csv, jsonl, or db)", cfg.Format)
	}

	if cfg.Output == "" {
		cfg.Output = os.Getenv("EXPORT_OUTPUT")
	}
	if cfg.Output == "" && cfg.Format != FormatDB && cfg.SurveyID != "" {
		cfg.Output = cfg.SurveyID + "." + cfg.Format
	}

	if cfg.Status == "" {
		cfg.Status = os.Getenv("EXPORT_STATUS")
		if cfg.Status == "" {
			cfg.Status = "completed"
		}
	}

	if cfg.CollisionPolicy == "" {
		cfg.CollisionPolicy = os.Getenv("EXPORT_COLLISIONS")
		if cfg.CollisionPolicy == "" {
			cfg.CollisionPolicy = "squish"
		}
	}
	if cfg.CollisionPolicy != "squish" && cfg.CollisionPolicy != "enumerate" {
		return Config{}, fmt.Errorf("invalid collision policy %q (want squish or enumerate)", cfg.CollisionPolicy)
	}

	if cfg.Format == FormatDB {
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = os.Getenv("DATABASE_URL")
		}
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("database URL required for db format (use -d or DATABASE_URL env)")
		}
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
			if cfg.DatabaseType == "" {
				cfg.DatabaseType = "sqlite"
			}
		}
		if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
			return Config{}, fmt.Errorf("invalid database type %q (want sqlite or postgres)", cfg.DatabaseType)
		}
	}

	return cfg, nil
}
