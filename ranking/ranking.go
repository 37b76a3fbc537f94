package ranking

import (
	"sort"

	"github.com/lenshq/lens-backend/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// TopCardCount is how many ranked cards a single request returns.
const TopCardCount = 5

// ErrUserNotFound is returned when the ranked user does not exist.
var ErrUserNotFound = errors.New("user not found")

type scoredCard struct {
	card  model.Card
	score float64
}

// TopCardsForUser loads the user with their interaction history, scores every
// active card against them and returns the best five. The internal score
// never leaves this package. Scores are recomputed from scratch on every
// call, nothing is memoized between requests.
func TopCardsForUser(db *gorm.DB, userID string) ([]model.Card, error) {
	var user model.User
	queryResult := db.Preload("Interactions").Where("id = ?", userID).First(&user)
	if queryResult.RowsAffected != 1 {
		return nil, ErrUserNotFound
	}

	var cards []model.Card
	if err := db.Where("is_active = ?", true).Order("created_at desc").Find(&cards).Error; err != nil {
		return nil, errors.Wrap(err, "load active cards")
	}

	scorer := NewScorer()
	scored := make([]scoredCard, 0, len(cards))
	for i := range cards {
		scored = append(scored, scoredCard{
			card:  cards[i],
			score: scorer.Score(&user, user.Interactions, &cards[i]),
		})
	}

	// Stable sort keeps the created-desc order among equal scores.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if len(scored) > TopCardCount {
		scored = scored[:TopCardCount]
	}

	top := make([]model.Card, 0, len(scored))
	for _, sc := range scored {
		top = append(top, sc.card)
	}
	return top, nil
}
