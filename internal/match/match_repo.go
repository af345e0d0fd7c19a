package match

import (
	"gorm.io/gorm"
)

// MatchRepository defines persistence for match records.
type MatchRepository interface {
	MatchesInvolving(userID uint) ([]Match, error)
	CreateMatch(match *Match) error
}

// GormMatchRepository implements MatchRepository using GORM
type GormMatchRepository struct {
	db *gorm.DB
}

// NewGormMatchRepository creates a new GormMatchRepository
func NewGormMatchRepository(db *gorm.DB) *GormMatchRepository {
	return &GormMatchRepository{db: db}
}

// MatchesInvolving returns every match the user played, oldest first with
// ids breaking timestamp ties. The versus aggregator depends on this order;
// the recency-based views re-sort on top of it.
func (r *GormMatchRepository) MatchesInvolving(userID uint) ([]Match, error) {
	var matches []Match
	err := r.db.
		Preload("User1").Preload("Team1").
		Preload("User2").Preload("Team2").
		Where("user1_id = ? OR user2_id = ?", userID, userID).
		Order("created_at ASC, id ASC").
		Find(&matches).Error
	return matches, err
}

// CreateMatch records a single result. One insert, no retries: a duplicate
// submission is a legitimate rematch, not an error to dedupe.
func (r *GormMatchRepository) CreateMatch(match *Match) error {
	return r.db.Create(match).Error
}
