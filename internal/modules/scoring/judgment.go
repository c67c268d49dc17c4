// Package scoring rates hexagram judgments and whole moments on a 0-100 scale.
package scoring

import (
	"strings"

	"github.com/aristath/sacra/internal/modules/hexagram"
	"github.com/aristath/sacra/pkg/formulas"
)

// Keyword scoring constants
const (
	KeywordWeight = 10.0
	BalanceWeight = 10.0
)

// Keywords holds the lower-case positive and negative markers searched in a judgment.
type Keywords struct {
	Positive []string
	Negative []string
}

// BaseKeywords is the set used with the built-in abbreviated table.
var BaseKeywords = Keywords{
	Positive: []string{"gelingen", "heil", "fördernd"},
	Negative: []string{"unheil", "gefahr", "makel"},
}

// ExtendedKeywords is the set used when the full reference book is loaded.
var ExtendedKeywords = Keywords{
	Positive: []string{"gelingen", "heil", "fördernd", "erfolg", "glück"},
	Negative: []string{"unheil", "gefahr", "makel", "schaden"},
}

// JudgmentTier classifies a judgment score.
type JudgmentTier int

const (
	JudgmentDifficult JudgmentTier = iota
	JudgmentChallenging
	JudgmentNeutral
	JudgmentFavorable
)

// String returns the display label.
func (t JudgmentTier) String() string {
	switch t {
	case JudgmentFavorable:
		return "GÜNSTIG"
	case JudgmentNeutral:
		return "NEUTRAL"
	case JudgmentChallenging:
		return "HERAUSFORDERND"
	default:
		return "SCHWIERIG"
	}
}

// JudgmentScore is the rating of a hexagram judgment.
type JudgmentScore struct {
	Score float64
	Tier  JudgmentTier
}

// JudgmentScorer rates judgment texts by keyword presence and line balance.
type JudgmentScorer struct {
	keywords Keywords
}

// NewJudgmentScorer creates a scorer for the given keyword set.
func NewJudgmentScorer(keywords Keywords) *JudgmentScorer {
	return &JudgmentScorer{keywords: keywords}
}

// Score rates the judgment text of h. Each keyword counts once regardless of
// how often it occurs; a keyword that contains another ("unheil"/"heil") counts both.
func (s *JudgmentScorer) Score(h hexagram.Hexagram) JudgmentScore {
	return s.ScoreText(h.Judgment, h.Balance())
}

// ScoreText rates an arbitrary judgment text for a figure with the given |yang-yin| balance.
func (s *JudgmentScorer) ScoreText(judgment string, balance int) JudgmentScore {
	text := strings.ToLower(judgment)

	positive := 0.0
	for _, w := range s.keywords.Positive {
		if strings.Contains(text, w) {
			positive += KeywordWeight
		}
	}

	negative := 0.0
	for _, w := range s.keywords.Negative {
		if strings.Contains(text, w) {
			negative += KeywordWeight
		}
	}

	bonus := float64(6-balance) * BalanceWeight
	score := formulas.Clamp(positive+bonus-negative, 0, 100)

	return JudgmentScore{Score: score, Tier: JudgmentTierFor(score)}
}

// JudgmentTierFor maps a score to its tier.
func JudgmentTierFor(score float64) JudgmentTier {
	switch {
	case score >= 70:
		return JudgmentFavorable
	case score >= 50:
		return JudgmentNeutral
	case score >= 30:
		return JudgmentChallenging
	default:
		return JudgmentDifficult
	}
}
