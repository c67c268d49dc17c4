// Package sacra assembles calendar, hexagram, π and Fibonacci components into
// a scored analysis of a moment, and scans day ranges for the best moments.
package sacra

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/aristath/sacra/internal/modules/calendar"
	"github.com/aristath/sacra/internal/modules/hexagram"
	"github.com/aristath/sacra/internal/modules/scoring"
	"github.com/aristath/sacra/pkg/formulas"
)

// Pipeline constants
const (
	PiDigitCount   = 260 // One digit per position of the 260-day round
	FibonacciLimit = 93  // F(92) is the last term generated
	WeekDays       = 7

	OptimalScoreThreshold    = 70.0
	OptimalJudgmentThreshold = 60.0
	DefaultOptimalDays       = 30
	DefaultOptimalLimit      = 5
)

// Analyzer computes Results. It holds only immutable state and is safe for
// concurrent use.
type Analyzer struct {
	log      zerolog.Logger
	table    hexagram.Table
	book     *hexagram.Book
	digits   string
	judgment *scoring.JudgmentScorer
	extended *scoring.JudgmentScorer
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithBook enables enrichment from a loaded reference book.
func WithBook(book *hexagram.Book) Option {
	return func(a *Analyzer) { a.book = book }
}

// WithTable replaces the built-in hexagram table.
func WithTable(table hexagram.Table) Option {
	return func(a *Analyzer) { a.table = table }
}

// NewAnalyzer creates an analyzer. The π digits are computed once here.
func NewAnalyzer(log zerolog.Logger, opts ...Option) *Analyzer {
	a := &Analyzer{
		log:      log.With().Str("component", "analyzer").Logger(),
		table:    hexagram.Builtin(),
		judgment: scoring.NewJudgmentScorer(scoring.BaseKeywords),
		extended: scoring.NewJudgmentScorer(scoring.ExtendedKeywords),
	}
	for _, opt := range opts {
		opt(a)
	}

	a.digits = formulas.PiDigits(PiDigitCount)

	a.log.Debug().
		Bool("enriched", a.Enriched()).
		Int("pi_digits", len(a.digits)).
		Msg("Analyzer initialized")

	return a
}

// Enriched reports whether a reference book is available.
func (a *Analyzer) Enriched() bool {
	return a.book != nil
}

// Analyze runs the full pipeline for one moment.
func (a *Analyzer) Analyze(t time.Time) Result {
	pos := calendar.Convert(t)
	index := pos.Index()

	piDigit := 0
	if len(a.digits) > 0 {
		i := index
		if i > len(a.digits)-1 {
			i = len(a.digits) - 1
		}
		piDigit = int(a.digits[i] - '0')
	}

	fib := formulas.FibonacciAt(index, FibonacciLimit)
	hex := hexagram.Resolve(t, a.table)

	moment := scoring.ScoreMoment(scoring.MomentInput{
		PiDigit:   piDigit,
		Value:     hex.Value,
		Lower:     int(hex.Lower),
		Upper:     int(hex.Upper),
		Position:  index,
		Fibonacci: fib,
	})

	result := Result{
		Moment:          t,
		Signature:       Signature(piDigit, hex.Value, index),
		Score:           moment.Score,
		Tier:            moment.Tier,
		Detail:          moment,
		HexagramQuality: a.judgment.Score(hex),
		Hexagram:        hex,
		PiDigit:         piDigit,
		Fibonacci:       fib,
		Position:        index,
		Calendar:        pos,
		Energy:          moment.Energy,
	}

	if a.book != nil {
		a.enrich(&result)
	}

	a.log.Debug().
		Time("moment", t).
		Str("signature", result.Signature).
		Float64("score", result.Score).
		Float64("judgment", result.HexagramQuality.Score).
		Msg("Moment analyzed")

	return result
}

// enrich adds reference-book material and rescores the judgment with the
// extended keyword set when the book has an entry for the hexagram.
func (a *Analyzer) enrich(r *Result) {
	e := &Enrichment{
		Opposite: a.relative(r.Hexagram.Opposite()),
		Reversed: a.relative(r.Hexagram.Reversed()),
	}

	if entry, ok := a.book.Entry(r.Hexagram.Number()); ok {
		e.Entry = entry
		e.HasEntry = true
		r.HexagramQuality = a.extended.ScoreText(entry.Judgment, r.Hexagram.Balance())
	}

	r.Enrichment = e
}

// relative resolves a related hexagram value, preferring the book's text.
func (a *Analyzer) relative(value int) hexagram.Hexagram {
	lower, upper := hexagram.Trigram(value>>3), hexagram.Trigram(value&7)
	if h := hexagram.FromTrigrams(lower, upper, a.book); h.Name != hexagram.UnknownName {
		return h
	}
	return hexagram.FromTrigrams(lower, upper, a.table)
}

// Week analyzes seven consecutive days starting at start, in ascending order.
func (a *Analyzer) Week(start time.Time) []Result {
	return a.scan(start, WeekDays, "week")
}

// Optimal scans days consecutive days from start and returns at most limit
// results meeting both thresholds, ordered by Combined descending. Ties keep
// calendar order.
func (a *Analyzer) Optimal(start time.Time, days, limit int) []Result {
	all := a.scan(start, days, "optimal")

	var matches []Result
	for _, r := range all {
		if r.Score >= OptimalScoreThreshold && r.HexagramQuality.Score >= OptimalJudgmentThreshold {
			matches = append(matches, r)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Combined() > matches[j].Combined()
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	a.log.Info().
		Int("days", days).
		Int("matches", len(matches)).
		Msg("Optimal scan complete")

	return matches
}

// Scan analyzes days consecutive days from start without filtering.
func (a *Analyzer) Scan(start time.Time, days int) []Result {
	return a.scan(start, days, "scan")
}

func (a *Analyzer) scan(start time.Time, days int, kind string) []Result {
	if days <= 0 {
		return nil
	}

	log := a.log.With().
		Str("scan_id", uuid.New().String()).
		Str("kind", kind).
		Logger()
	log.Debug().Time("start", start).Int("days", days).Msg("Starting day scan")

	results := make([]Result, 0, days)
	for i := 0; i < days; i++ {
		results = append(results, a.Analyze(start.AddDate(0, 0, i)))
	}

	log.Debug().Int("results", len(results)).Msg("Day scan complete")
	return results
}

// Scores extracts the overall scores of results, in order.
func Scores(results []Result) []float64 {
	scores := make([]float64, len(results))
	for i, r := range results {
		scores[i] = r.Score
	}
	return scores
}
