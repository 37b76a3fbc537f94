package ranking

import (
	"math"
	"time"

	"github.com/lenshq/lens-backend/model"
)

// Weights is the relative importance of each score component. The defaults
// are fixed design constants, the struct exists so tests can inject
// alternative weightings without touching the algorithm.
type Weights struct {
	Keyword  float64
	Recency  float64
	Priority float64
}

var DefaultWeights = Weights{Keyword: 0.5, Recency: 0.3, Priority: 0.2}

// Penalties applied for the user's past negative feedback on a card.
const (
	neverShowPenalty = 1.0
	notNowPenalty    = 0.5
	maxPriority      = 5
)

// Scorer computes the relevance of one card for one user. Now is captured
// once per ranking pass so every card in the pass decays against the same
// instant.
type Scorer struct {
	Weights Weights
	Now     time.Time
}

func NewScorer() Scorer {
	return Scorer{Weights: DefaultWeights, Now: time.Now()}
}

// Score combines keyword affinity, freshness and author assigned priority,
// then subtracts the penalty for past negative interactions on this card.
// NEVER_SHOW is checked before NOT_NOW so it wins when a card has both. The
// result is clamped at zero and is always finite.
func (s Scorer) Score(user *model.User, interactions []model.UserInteraction, card *model.Card) float64 {
	expertiseMatch := KeywordMatch(user.ExpertiseKeywords, card.Keywords)
	interestMatch := KeywordMatch(user.InterestKeywords, card.Keywords)
	keywordScore := math.Max(expertiseMatch, interestMatch) * s.Weights.Keyword

	recencyScore := RecencyWeight(card.CreatedAt, s.Now) * s.Weights.Recency
	priorityScore := float64(card.Priority) / maxPriority * s.Weights.Priority

	penalty := 0.0
	if hasInteraction(interactions, card.Id, model.InteractionNeverShow) {
		penalty = neverShowPenalty
	} else if hasInteraction(interactions, card.Id, model.InteractionNotNow) {
		penalty = notNowPenalty
	}

	return math.Max(0, keywordScore+recencyScore+priorityScore-penalty)
}

func hasInteraction(interactions []model.UserInteraction, cardID string, interactionType string) bool {
	for _, interaction := range interactions {
		if interaction.CardID == cardID && interaction.Type == interactionType {
			return true
		}
	}
	return false
}
