// Command csvfind scans delimited text files for rows matching typed
// per-column conditions and renders the matches as text, XML, or HTML.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"csvfind"
)

var (
	// Global flags
	verbose    bool
	configPath string
	delimiter  string
	enclosure  string
	escape     string
	headers    string
	format     string
	output     string
	wheres     []string

	// Logger
	logger *zap.Logger
)

// rootCmd scans a file or directory with the given conditions.
var rootCmd = &cobra.Command{
	Use:   "csvfind <path>",
	Short: "Find rows in delimited text files by typed column conditions",
	Long: `csvfind scans a CSV/TSV file, or a directory tree of them, for rows
matching a list of typed column conditions. The delimiter and header row
are detected from the content unless declared explicitly.

Conditions are given as repeatable --where flags of the form
COLUMN:OPERATOR[:VALUE], where COLUMN is a header name, a 0-based index,
or * for any column:

  csvfind ./data --where 'stock:greater:15'
  csvfind ./data --where 'name:contains_loose:rover' --where 'stock:between:10,20'
  csvfind ./data --where 'comment:empty'`,
	Args: cobra.ExactArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runSearch,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().StringVar(&configPath, "config", ".csvfind.yaml", "config file with default format parameters")
	rootCmd.Flags().StringVarP(&delimiter, "delimiter", "d", "", "field delimiter (single character, default: auto-detect)")
	rootCmd.Flags().StringVar(&enclosure, "enclosure", "", `field enclosure character (default ")`)
	rootCmd.Flags().StringVar(&escape, "escape", "", `escape character (default \)`)
	rootCmd.Flags().StringVar(&headers, "headers", "", "header presence: auto, present, or absent (default auto)")
	rootCmd.Flags().StringVarP(&format, "format", "f", "", "report format: text, xml, or html (default text)")
	rootCmd.Flags().StringVarP(&output, "output", "o", "", "report target (directory for html, file for xml, default stdout)")
	rootCmd.Flags().StringArrayVarP(&wheres, "where", "w", nil, "condition COLUMN:OPERATOR[:VALUE], repeatable")
}

func runSearch(cmd *cobra.Command, args []string) error {
	searchPath := args[0]

	cfg, err := csvfind.LoadConfig(configPath)
	if err != nil {
		return err
	}
	mergeFlags(cfg)

	opts, err := cfg.SourceOptions()
	if err != nil {
		return err
	}

	conditions, err := parseConditions(wheres)
	if err != nil {
		return err
	}

	logger.Debug("Starting search",
		zap.String("path", searchPath),
		zap.Int("conditions", len(conditions)))

	results, skipped, err := csvfind.Find(searchPath, conditions, opts...)
	if err != nil {
		return err
	}

	for _, skip := range skipped {
		logger.Debug("Skipped entry",
			zap.String("path", skip.Path),
			zap.String("reason", string(skip.Reason)))
	}
	logger.Debug("Search finished", zap.Int("files", len(results)))

	return render(cfg, searchPath, conditions, results)
}

// mergeFlags overlays explicit flags onto the loaded config.
func mergeFlags(cfg *csvfind.Config) {
	if delimiter != "" {
		cfg.Delimiter = delimiter
	}
	if enclosure != "" {
		cfg.Enclosure = enclosure
	}
	if escape != "" {
		cfg.Escape = escape
	}
	if headers != "" {
		cfg.Headers = headers
	}
	if format != "" {
		cfg.Format = format
	}
	if output != "" {
		cfg.Output = output
	}
}

// parseConditions turns --where flags into query conditions. The value
// part of the between operators is a comma-separated lower,upper pair;
// the empty operators take no value part.
func parseConditions(specs []string) ([]*csvfind.QueryCondition, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("at least one --where condition is required")
	}

	conditions := make([]*csvfind.QueryCondition, 0, len(specs))
	for _, spec := range specs {
		parts := strings.SplitN(spec, ":", 3)
		if len(parts) < 2 {
			return nil, fmt.Errorf("invalid condition %q: want COLUMN:OPERATOR[:VALUE]", spec)
		}

		column := parseColumn(parts[0])
		operator, err := csvfind.ParseOperator(parts[1])
		if err != nil {
			return nil, err
		}

		var value any
		if len(parts) == 3 {
			switch operator {
			case csvfind.OpBetween, csvfind.OpBetweenInclusive, csvfind.OpNotBetween, csvfind.OpNotBetweenInclusive:
				bounds := strings.SplitN(parts[2], ",", 2)
				if len(bounds) != 2 {
					return nil, fmt.Errorf("invalid condition %q: %s wants a lower,upper pair", spec, operator)
				}
				value = [2]string{bounds[0], bounds[1]}
			default:
				value = parts[2]
			}
		}

		cond, err := csvfind.NewCondition(column, operator, value)
		if err != nil {
			return nil, err
		}
		conditions = append(conditions, cond)
	}
	return conditions, nil
}

func parseColumn(s string) csvfind.ColumnSelector {
	if s == "" || s == "*" {
		return csvfind.AnyColumn()
	}
	if index, err := strconv.Atoi(s); err == nil {
		return csvfind.ColumnIndex(index)
	}
	return csvfind.Column(s)
}

func render(cfg *csvfind.Config, searchPath string, conditions []*csvfind.QueryCondition, results []*csvfind.Result) error {
	switch cfg.Format {
	case "", "text":
		if cfg.Output == "" {
			return csvfind.WriteTextReport(os.Stdout, searchPath, conditions, results)
		}
		f, err := os.Create(cfg.Output)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		return csvfind.WriteTextReport(f, searchPath, conditions, results)

	case "xml":
		if cfg.Output == "" {
			return csvfind.WriteXMLReport(os.Stdout, searchPath, conditions, results)
		}
		f, err := os.Create(cfg.Output)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		return csvfind.WriteXMLReport(f, searchPath, conditions, results)

	case "html":
		if cfg.Output == "" {
			return fmt.Errorf("html format requires --output DIRECTORY")
		}
		return csvfind.WriteHTMLReport(cfg.Output, searchPath, conditions, results)

	default:
		return fmt.Errorf("unknown format %q: want text, xml, or html", cfg.Format)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
