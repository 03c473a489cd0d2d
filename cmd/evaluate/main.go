package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/jbeshir/internship-recommender/internal/app"
	"github.com/jbeshir/internship-recommender/internal/command"
	"github.com/jbeshir/internship-recommender/internal/domain"
	"github.com/jbeshir/internship-recommender/internal/report"

	_ "github.com/joho/godotenv/autoload"
)

type flags struct {
	plan     string
	kValues  string
	output   string
	xlsx     string
	abTest   bool
	validate bool
}

func main() {
	ctx := context.Background()

	var f flags
	flag.StringVar(&f.plan, "plan", app.GetEnvAsString("EVALUATION_PLAN_PATH", ""), "path to a YAML evaluation plan")
	flag.StringVar(&f.kValues, "k", "", "comma-separated cutoffs to evaluate at, e.g. 5,10,20")
	flag.StringVar(&f.output, "output", "", "path of the JSON report")
	flag.StringVar(&f.xlsx, "xlsx", "", "path of an optional XLSX report")
	flag.BoolVar(&f.abTest, "ab-test", false, "run an A/B test between the plan's two algorithms")
	flag.BoolVar(&f.validate, "validate", false, "report dataset readiness before evaluating")
	flag.Parse()

	logLevel := slog.LevelInfo
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if err := logLevel.UnmarshalText([]byte(lvl)); err != nil {
			fmt.Fprintf(os.Stderr, "invalid LOG_LEVEL: %s\n", lvl)
			os.Exit(1)
		}
	}

	// Stdout carries the console report.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	ctx = domain.ContextWithLogger(ctx, logger)

	if err := run(ctx, f); err != nil {
		logger.ErrorContext(ctx, "evaluation failed", "error", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "evaluation completed successfully")
}

// overrides returns plan overrides for the flags set on the command line.
func (f flags) overrides() map[string]any {
	overrides := map[string]any{}
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "k":
			overrides["k_values"] = f.kValues
		case "output":
			overrides["output"] = f.output
		case "xlsx":
			overrides["xlsx_output"] = f.xlsx
		case "ab-test":
			overrides["ab_test"] = f.abTest
		case "validate":
			overrides["validate"] = f.validate
		}
	})
	return overrides
}

func run(ctx context.Context, f flags) error {
	plan, err := app.LoadEvaluationPlan(f.plan, f.overrides())
	if err != nil {
		return fmt.Errorf("loading evaluation plan: %w", err)
	}

	driver := app.GetEnvAsString("DATASOURCE_DRIVER", app.DriverMySQL)
	dataset, closeDataset, err := app.SetupDatasetRepository(ctx, driver)
	if err != nil {
		return fmt.Errorf("setting up dataset repository: %w", err)
	}
	defer closeDataset()

	logger := domain.LoggerFromContext(ctx)

	if plan.ValidateDataset {
		validation, err := command.NewValidateAlgorithms(dataset).Execute(ctx, command.Empty{})
		if err != nil {
			return fmt.Errorf("validating algorithms: %w", err)
		}
		logger.InfoContext(ctx, "dataset validation",
			"users_with_skills", validation.ContentBased.UsersWithSkills,
			"internships_with_skills", validation.ContentBased.InternshipsWithSkills,
			"content_based_coverage", validation.ContentBased.Coverage,
			"total_students", validation.CollaborativeFiltering.TotalStudents,
			"cold_start_users", validation.CollaborativeFiltering.ColdStartUsers,
			"sparsity", validation.CollaborativeFiltering.Sparsity,
			"hybrid_ready", validation.HybridReady)
	}

	writers := []command.ReportWriter{report.NewJSONFileWriter(plan.Output)}
	if plan.XLSXOutput != "" {
		writers = append(writers, report.NewXLSXFileWriter(plan.XLSXOutput))
	}
	writers = append(writers, report.NewConsoleWriter(os.Stdout))

	runCmd := command.NewRunComprehensiveEvaluation(
		command.NewLoadGroundTruth(dataset, dataset),
		app.NewEvaluator(dataset, plan.EvaluationConfig()),
		writers...,
	)

	_, err = runCmd.Execute(ctx, plan.EvaluationRequest())
	return err
}
