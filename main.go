package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/danielhkuo/surveyflat/catalog"
	"github.com/danielhkuo/surveyflat/cliparse"
	"github.com/danielhkuo/surveyflat/db"
	"github.com/danielhkuo/surveyflat/export"
	"github.com/danielhkuo/surveyflat/flatten"
	"github.com/danielhkuo/surveyflat/smclient"
)

func main() {
	// A .env file is optional; the environment may carry the token directly
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := smclient.New(cfg.BaseURL, cfg.AccessToken)

	if cfg.ListSurveys {
		list, err := client.Surveys(ctx)
		if err != nil {
			slog.Error("survey listing failed", "error", err)
			os.Exit(1)
		}
		for _, s := range list.Data {
			fmt.Printf("%s\t%s\n", s.ID, s.Title)
		}
		return
	}

	runID := uuid.NewString()
	slog.Info("export starting", "run_id", runID, "survey_id", cfg.SurveyID, "format", cfg.Format)

	// Fetch the survey structure and build the catalog
	detail, err := client.SurveyDetail(ctx, cfg.SurveyID)
	if err != nil {
		slog.Error("survey detail fetch failed", "survey_id", cfg.SurveyID, "error", err)
		os.Exit(1)
	}
	cat, err := catalog.Build(detail)
	if err != nil {
		slog.Error("catalog build failed", "survey_id", cfg.SurveyID, "error", err)
		os.Exit(1)
	}

	// The column schema is fixed before any response is seen
	columns := flatten.BuildColumnIndex(detail, cat)
	slog.Info("column index built", "columns", len(columns))

	// Flatten every response
	asm := flatten.NewAssembler(cat, flatten.CollisionPolicy(cfg.CollisionPolicy))
	result, err := asm.Run(client.Responses(ctx, cfg.SurveyID, cfg.Status))
	if err != nil {
		slog.Error("response fetch failed", "survey_id", cfg.SurveyID, "error", err)
		os.Exit(1)
	}

	for _, rej := range result.Rejected {
		slog.Warn("response rejected",
			"response_id", rej.ResponseID,
			"question_id", rej.QuestionID,
			"error", rej.Err,
		)
	}

	if err := writeSink(cfg, runID, columns, result); err != nil {
		slog.Error("export write failed", "error", err)
		os.Exit(1)
	}

	slog.Info("export complete",
		"run_id", runID,
		"records", humanize.Comma(int64(len(result.Records))),
		"rejected", humanize.Comma(int64(len(result.Rejected))),
	)
}

func writeSink(cfg cliparse.Config, runID string, columns []string, result flatten.Result) error {
	switch cfg.Format {
	case cliparse.FormatCSV, cliparse.FormatJSONL:
		f, err := os.Create(cfg.Output)
		if err != nil {
			return err
		}
		if cfg.Format == cliparse.FormatCSV {
			err = export.WriteCSV(f, columns, result.Records)
		} else {
			err = export.WriteJSONL(f, result.Records)
		}
		if err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		slog.Info("output written", "path", cfg.Output)
		return nil

	case cliparse.FormatDB:
		conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer conn.Close()
		if err := conn.Ping(); err != nil {
			return err
		}
		if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
			return err
		}
		store := db.NewStore(conn, cfg.DatabaseType)
		if err := store.InsertRun(runID, cfg.SurveyID, columns); err != nil {
			return err
		}
		for _, rec := range result.Records {
			if err := store.InsertRecord(runID, rec); err != nil {
				return err
			}
		}
		return nil

	default:
		return fmt.Errorf("unsupported format %q", cfg.Format)
	}
}
