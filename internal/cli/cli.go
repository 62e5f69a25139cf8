package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/sports-events/internal/aggregator"
	"github.com/pfrederiksen/sports-events/internal/config"
	"github.com/pfrederiksen/sports-events/internal/filter"
	"github.com/pfrederiksen/sports-events/internal/logger"
	"github.com/pfrederiksen/sports-events/internal/metrics"
	"github.com/pfrederiksen/sports-events/internal/sportsdb"
	"github.com/pfrederiksen/sports-events/internal/view"
	"github.com/pfrederiksen/sports-events/internal/web"
)

const (
	ExitSuccess  = 0
	ExitError    = 1
	ExitNoEvents = 2
)

// errNoEvents makes list exit with ExitNoEvents without printing an error.
var errNoEvents = errors.New("no events matched")

// globalFlags are shared by every subcommand.
type globalFlags struct {
	envFile  string
	logLevel string
	logFile  string
	verbose  bool
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "sports-events",
		Short: "Browse upcoming football, basketball and volleyball fixtures",
		Long: `Lists upcoming fixtures of the Premier League, Liga Portugal, NBA and
Champions League from TheSportsDB, either as a web page (serve) or on the
terminal (list).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&g.envFile, "env-file", ".env", "Optional dotenv file to load")
	cmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "Log level: DEBUG, INFO, WARN or ERROR (env: LOG_LEVEL)")
	cmd.PersistentFlags().StringVar(&g.logFile, "log-file", "", "Write logs to a rotated file (env: LOG_FILE)")
	cmd.PersistentFlags().BoolVar(&g.verbose, "verbose", false, "Enable verbose output")

	cmd.AddCommand(newServeCmd(g), newListCmd(g))
	return cmd
}

// loadConfig reads env and applies the global flag overrides.
func (g *globalFlags) loadConfig() (config.Config, error) {
	cfg, err := config.Load(g.envFile)
	if err != nil {
		return cfg, err
	}
	if g.logLevel != "" {
		cfg.LogLevel = g.logLevel
	}
	if g.logFile != "" {
		cfg.LogFile = g.logFile
	}
	if g.verbose {
		cfg.LogLevel = string(logger.LevelDebug)
	}
	cfg.Sanitize()
	return cfg, nil
}

// setupLogger installs the default logger; console output goes to w.
func setupLogger(cfg config.Config, w io.Writer) (*logger.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	var log *logger.Logger
	if cfg.LogFile != "" {
		log = logger.NewRotating(level, cfg.LogFile)
	} else {
		log = logger.New(level, w)
	}
	logger.SetDefault(log)
	return log, nil
}

// newAggregator wires the TheSportsDB client into an aggregator.
func newAggregator(cfg config.Config, log *logger.Logger, m *metrics.Metrics) (*aggregator.Aggregator, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	client := sportsdb.New(sportsdb.Config{
		BaseURL: cfg.SportsDB.BaseURL,
		APIKey:  cfg.SportsDB.APIKey,
		Season:  cfg.SportsDB.Season,
		Timeout: cfg.SportsDB.Timeout,
		Logger:  log,
		Metrics: m,
	})

	return aggregator.New(client, aggregator.Config{
		Concurrency: cfg.Concurrency,
		Location:    loc,
		Logger:      log,
	}), nil
}

func newServeCmd(g *globalFlags) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the events page over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.HTTPAddr = addr
			}

			log, err := setupLogger(cfg, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServe(ctx, cfg, log)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (env: HTTP_ADDR, default :8080)")
	return cmd
}

// runServe starts the background catalog load and serves until ctx ends.
func runServe(ctx context.Context, cfg config.Config, log *logger.Logger) error {
	m := metrics.New()

	agg, err := newAggregator(cfg, log, m)
	if err != nil {
		return err
	}
	loc, _ := cfg.Location()

	catalog := web.NewCatalog(agg, m, log)
	srv, err := web.NewServer(web.Config{
		Catalog:  catalog,
		PageSize: cfg.PageSize,
		Location: loc,
		Metrics:  m,
		Logger:   log,
	})
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	go catalog.Load(ctx)

	log.Info("Starting sports-events", logger.Fields{
		"addr":        cfg.HTTPAddr,
		"concurrency": cfg.Concurrency,
		"page_size":   cfg.PageSize,
		"base_url":    cfg.SportsDB.BaseURL,
	})
	return srv.ListenAndServe(ctx, cfg.HTTPAddr)
}

// listOptions holds the list command flags
type listOptions struct {
	sport    string
	league   string
	date     string
	team     string
	page     int
	pageSize int
	format   string
	sortBy   string
}

func newListCmd(g *globalFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of upcoming events",
		Long: `Fetches the upcoming events once, applies the filters and prints the
requested page. Exits with status 2 when no event matches.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, g, opts)
		},
	}

	cmd.Flags().StringVar(&opts.sport, filter.FieldSport, "all", "Sport: football, basketball, volleyball or all")
	cmd.Flags().StringVar(&opts.league, filter.FieldLeague, "all", "League: premier, liga, nba, champions or all")
	cmd.Flags().StringVar(&opts.date, filter.FieldDate, "", "Only events on this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.team, filter.FieldTeam, "", "Case-insensitive team or event name search")
	cmd.Flags().IntVar(&opts.page, "page", 1, "Page number")
	cmd.Flags().IntVar(&opts.pageSize, "page-size", 0, "Events per page (env: PAGE_SIZE, default 12)")
	cmd.Flags().StringVar(&opts.format, "format", "text", "Output format: text or json")
	cmd.Flags().StringVar(&opts.sortBy, "sort", string(SortByDate), "Sort order: date, league or title")

	return cmd
}

// runList is the list command logic
func runList(cmd *cobra.Command, g *globalFlags, opts *listOptions) error {
	format := OutputFormat(strings.ToLower(opts.format))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", opts.format)
	}

	sortOrder := SortOrder(strings.ToLower(opts.sortBy))
	if !sortOrder.Valid() {
		return fmt.Errorf("invalid sort order: %s (must be 'date', 'league' or 'title')", opts.sortBy)
	}

	criteria, err := filter.Parse(opts.sport, opts.league, opts.date, opts.team)
	if err != nil {
		return err
	}

	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	if opts.pageSize > 0 {
		cfg.PageSize = opts.pageSize
		cfg.Sanitize()
	}

	// Logs go to stderr so stdout stays parseable
	log, err := setupLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	agg, err := newAggregator(cfg, log, nil)
	if err != nil {
		return err
	}
	loc, _ := cfg.Location()

	events := criteria.Apply(agg.FetchAll(cmd.Context()))
	sortEvents(events, sortOrder, loc)

	page := view.Paginate(events, opts.page, cfg.PageSize)
	result := &OutputResult{
		GeneratedAt: time.Now().UTC(),
		Filters:     criteria.String(),
		Page:        page.Number,
		TotalPages:  page.TotalPages,
		Total:       page.Total,
		Events:      page.Items,
	}

	if err := WriteOutput(cmd.OutOrStdout(), result, format, g.verbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if result.Total == 0 {
		return errNoEvents
	}
	return nil
}

// Execute runs the CLI
func Execute() {
	os.Exit(run(context.Background(), NewRootCmd()))
}

// run executes cmd and maps its outcome to an exit code.
func run(ctx context.Context, cmd *cobra.Command) int {
	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, errNoEvents):
		return ExitNoEvents
	default:
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return ExitError
	}
}
