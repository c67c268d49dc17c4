package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/aristath/sacra/internal/config"
	"github.com/aristath/sacra/internal/modules/display"
	"github.com/aristath/sacra/internal/modules/hexagram"
	"github.com/aristath/sacra/internal/modules/sacra"
	"github.com/aristath/sacra/internal/modules/scoring"
	"github.com/aristath/sacra/pkg/logger"
)

// ErrInvalidDate is returned for a --date value that is not YYYY-MM-DD.
var ErrInvalidDate = errors.New("invalid date")

const dateLayout = "2006-01-02"

// Deps are the process-level collaborators of the command tree.
type Deps struct {
	Out    io.Writer
	Err    io.Writer
	Now    func() time.Time
	Config *config.Config
}

func Execute() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cmd := newRootCmd(Deps{
		Out:    os.Stdout,
		Err:    os.Stderr,
		Now:    time.Now,
		Config: cfg,
	})
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	date     string
	week     bool
	optimal  bool
	compact  bool
	days     int
	book     string
	logLevel string
}

func newRootCmd(deps Deps) *cobra.Command {
	cfg := deps.Config
	opts := rootOptions{
		days:     cfg.OptimalDays,
		book:     cfg.BookPath,
		logLevel: cfg.LogLevel,
	}

	cmd := &cobra.Command{
		Use:          "sacra",
		Short:        "SACRA: Qualität eines Moments aus Kalender, Hexagramm, π und Fibonacci",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logger.New(logger.Config{
				Level:  opts.logLevel,
				Pretty: cfg.LogPretty,
				Output: deps.Err,
			})
			logger.SetGlobalLogger(log)
			return run(deps, opts, log)
		},
	}

	cmd.SetOut(deps.Out)
	cmd.SetErr(deps.Err)

	f := cmd.Flags()
	f.StringVarP(&opts.date, "date", "d", "", "Datum im Format YYYY-MM-DD (Standard: jetzt)")
	f.BoolVarP(&opts.week, "week", "w", false, "Wochen-Übersicht ab heute")
	f.BoolVarP(&opts.optimal, "optimal", "o", false, "Optimale Momente suchen")
	f.BoolVarP(&opts.compact, "compact", "k", false, "Kompakte Ausgabe")
	f.IntVar(&opts.days, "days", opts.days, "Tage für --optimal")
	f.StringVar(&opts.book, "book", opts.book, "Pfad zur Hexagramm-Datenbank (leer = eingebaute Tabelle)")
	f.StringVar(&opts.logLevel, "log-level", opts.logLevel, "debug, info, warn, error")

	f.SetNormalizeFunc(normalizeFlagAliases)

	cmd.AddCommand(versionCmd())
	return cmd
}

func run(deps Deps, opts rootOptions, log zerolog.Logger) error {
	renderer := display.NewRenderer(deps.Out, deps.Err, display.Default)
	loc := deps.Config.Location
	now := deps.Now().In(loc)

	var moment time.Time
	if opts.date != "" && !opts.week && !opts.optimal {
		parsed, err := parseDate(opts.date, loc)
		if err != nil {
			return err
		}
		moment = parsed
	} else {
		moment = now
	}

	if opts.optimal && opts.days <= 0 {
		return fmt.Errorf("--days must be positive, got %d", opts.days)
	}

	analyzer := sacra.NewAnalyzer(log, analyzerOptions(opts.book, renderer, log)...)

	switch {
	case opts.week:
		week := analyzer.Week(now)
		renderer.Week(week, scoring.Summarize(sacra.Scores(week)))
	case opts.optimal:
		renderer.Optimal(analyzer.Optimal(now, opts.days, deps.Config.OptimalLimit), opts.days)
	default:
		renderer.Single(analyzer.Analyze(moment), opts.compact)
	}
	return nil
}

// analyzerOptions loads the optional reference book. Any failure degrades to
// the built-in table with a warning.
func analyzerOptions(path string, renderer *display.Renderer, log zerolog.Logger) []sacra.Option {
	if path == "" {
		return nil
	}

	book, err := hexagram.LoadBook(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Reference book unavailable, using built-in table")
		if errors.Is(err, hexagram.ErrBookNotFound) {
			renderer.Warning(fmt.Sprintf("Hexagramm-Datenbank %s nicht gefunden – verwende eingebaute Kurzfassung", path))
		} else {
			renderer.Warning(fmt.Sprintf("Hexagramm-Datenbank %s unlesbar (%v) – verwende eingebaute Kurzfassung", path, err))
		}
		return nil
	}

	log.Info().Str("path", path).Int("entries", book.Len()).Msg("Reference book loaded")
	return []sacra.Option{sacra.WithBook(book)}
}

func parseDate(value string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q (erwartet YYYY-MM-DD)", ErrInvalidDate, value)
	}
	return t, nil
}
