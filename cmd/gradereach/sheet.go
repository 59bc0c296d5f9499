package main

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/gradereach/gradereach/internal/logging"
	"github.com/gradereach/gradereach/pkg/config"
	"github.com/gradereach/gradereach/pkg/grades"
	"github.com/gradereach/gradereach/pkg/sharestate"
	"github.com/gradereach/gradereach/pkg/worksheet"
)

// sheetOpts are the flags shared by commands that build a worksheet.
type sheetOpts struct {
	rows  []string
	file  string
	state string
	title string
	table string
}

// parseRow splits a "name|score|weight" flag value.
func parseRow(s string) (name, score, weight string, err error) {
	parts := strings.SplitN(s, "|", 3)
	if len(parts) != 3 {
		return "", "", "", fmt.Errorf("row %q: expected name|score|weight", s)
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), strings.TrimSpace(parts[2]), nil
}

// buildWorksheet starts from --state or --file, then appends --row values.
// Title and table flags override what was loaded.
func buildWorksheet(opts sheetOpts) (worksheet.Worksheet, error) {
	var ws worksheet.Worksheet
	switch {
	case opts.state != "" && opts.file != "":
		return ws, fmt.Errorf("--state and --file cannot be used together")
	case opts.state != "":
		decoded, err := sharestate.Decode(opts.state)
		if err != nil {
			return ws, fmt.Errorf("loading shared state: %w", err)
		}
		ws = decoded
	case opts.file != "":
		loaded, err := worksheet.LoadFile(opts.file)
		if err != nil {
			return ws, err
		}
		ws = loaded
	default:
		ws = worksheet.New("", "")
	}

	for _, r := range opts.rows {
		name, score, weight, err := parseRow(r)
		if err != nil {
			return ws, err
		}
		ws = ws.Append(name, score, weight)
	}

	ws.Title = firstNonEmpty(opts.title, ws.Title)
	ws.TableID = firstNonEmpty(opts.table, ws.TableID)
	return ws, nil
}

// pickTable resolves the grade table. An explicit flag must name a known
// table; an unknown id carried in a file or share string falls back to the
// configured default with a warning.
func pickTable(flag, fromSheet, fromConfig string, log *zap.Logger) (*grades.Table, error) {
	if flag != "" {
		t, ok := grades.Lookup(flag)
		if !ok {
			return nil, fmt.Errorf("unknown grade table %q (see `gradereach tables`)", flag)
		}
		return t, nil
	}
	if fromSheet != "" {
		if t, ok := grades.Lookup(fromSheet); ok {
			return t, nil
		}
		log.Warn("unknown grade table in worksheet, using default",
			zap.String("table", fromSheet), zap.String("default", fromConfig))
	}
	if t, ok := grades.Lookup(fromConfig); ok {
		return t, nil
	}
	log.Warn("unknown grade table in config, using built-in default",
		zap.String("table", fromConfig), zap.String("default", grades.DefaultID))
	return grades.Default(), nil
}

// setup loads config and builds the logger for a command run.
func setup(g *globalOpts) (*config.Config, *zap.Logger, error) {
	cfg, err := loadConfig(g.configPath)
	if err != nil {
		return nil, nil, err
	}
	log, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, nil, fmt.Errorf("building logger: %w", err)
	}
	return cfg, log, nil
}

// loadConfig reads an explicit config path, or searches upward from the
// working directory for .gradereach/config.yaml.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return config.DefaultConfig(), nil
	}
	cfgFile := config.FindConfigFile(cwd)
	if cfgFile == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		return config.DefaultConfig(), nil
	}
	return cfg, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
