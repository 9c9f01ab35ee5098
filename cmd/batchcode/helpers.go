package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/DylanJ17/batchcode/internal/calendar"
	"github.com/DylanJ17/batchcode/internal/cli"
	"github.com/DylanJ17/batchcode/internal/common"
	"github.com/DylanJ17/batchcode/internal/config"
	"github.com/DylanJ17/batchcode/internal/engine"
	"github.com/DylanJ17/batchcode/internal/pattern"
	"github.com/DylanJ17/batchcode/internal/storage"
)

// newAnalyzer builds the engine from configuration: scoring constants from
// viper and the clock from the --reference-date flag when set.
func newAnalyzer(cmd *cobra.Command) (*engine.Analyzer, calendar.Clock, error) {
	clock, err := clockFromFlags(cmd)
	if err != nil {
		return nil, nil, err
	}

	cfg := pattern.ScorerConfig{
		AmbiguityPenalty:     viper.GetInt("scoring.ambiguity_penalty"),
		LeapBonus:            viper.GetInt("scoring.leap_bonus"),
		AmbiguousYearPenalty: viper.GetInt("scoring.ambiguous_year_penalty"),
	}

	analyzer, err := engine.NewWithConfig(clock, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create analyzer: %w", err)
	}
	return analyzer, clock, nil
}

func clockFromFlags(cmd *cobra.Command) (calendar.Clock, error) {
	refDate, _ := cmd.Flags().GetString("reference-date")
	if refDate == "" {
		return calendar.SystemClock{}, nil
	}
	t, err := time.Parse("2006-01-02", refDate)
	if err != nil {
		return nil, fmt.Errorf("invalid reference date %q: %w", refDate, err)
	}
	return calendar.Fixed(t), nil
}

// dateFormat reads the date display preference from configuration.
func dateFormat() (cli.DateFormat, error) {
	format, err := cli.ParseDateFormat(viper.GetString("output.date_format"))
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrInvalidConfig, err)
	}
	return format, nil
}

// getDatabase opens the history database and runs migrations. The returned
// cleanup must be deferred.
func getDatabase(ctx context.Context) (*storage.SQLiteStorage, func(), error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath()
	}
	dbPath = config.ExpandPath(dbPath)

	db, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	cleanup := func() { _ = db.Close() }
	return db, cleanup, nil
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
