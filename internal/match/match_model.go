package match

import (
	"errors"

	"gorm.io/gorm"

	"github.com/juanedi/fifatum/internal/league"
	"github.com/juanedi/fifatum/internal/user"
)

// ErrInvalidParticipant reports a match fetched for a user the user is not
// actually part of. That is a store inconsistency, never a client error,
// and callers must surface it instead of skipping the match.
var ErrInvalidParticipant = errors.New("user did not participate in match")

// Match is one finished head-to-head result. Side order is storage order
// only; semantically the two sides are an unordered pair. Matches are
// created once by the reporter and never mutated.
type Match struct {
	gorm.Model
	User1ID     uint `gorm:"index;not null"`
	User1TeamID uint `gorm:"not null"`
	User1Goals  int  `gorm:"not null"`

	User2ID     uint `gorm:"index;not null"`
	User2TeamID uint `gorm:"not null"`
	User2Goals  int  `gorm:"not null"`

	User1 user.User   `gorm:"foreignKey:User1ID"`
	Team1 league.Team `gorm:"foreignKey:User1TeamID"`
	User2 user.User   `gorm:"foreignKey:User2ID"`
	Team2 league.Team `gorm:"foreignKey:User2TeamID"`
}

// Participation is one side's (user, team, goals) view of a match.
type Participation struct {
	User  user.User
	Team  league.Team
	Goals int
}

// Projection is a match seen from one participant's perspective.
type Projection struct {
	Own   Participation
	Rival Participation
}

// Project splits the match into own/rival participations for the given
// perspective user. Sides are matched by user id, never by object identity.
func (m *Match) Project(userID uint) (Projection, error) {
	side1 := Participation{User: m.User1, Team: m.Team1, Goals: m.User1Goals}
	side2 := Participation{User: m.User2, Team: m.Team2, Goals: m.User2Goals}

	switch userID {
	case m.User1ID:
		return Projection{Own: side1, Rival: side2}, nil
	case m.User2ID:
		return Projection{Own: side2, Rival: side1}, nil
	}
	return Projection{}, ErrInvalidParticipant
}

// SideJSON is one side of a match on the wire.
type SideJSON struct {
	ID    uint            `json:"id"`
	Name  string          `json:"name"`
	Team  league.TeamJSON `json:"team"`
	Goals int             `json:"goals"`
}

// MatchJSON is the wire shape of a history item. Date is creation time in
// unix seconds and is omitted on endpoints that do not carry it.
type MatchJSON struct {
	ID    uint     `json:"id"`
	Date  int64    `json:"date,omitempty"`
	User1 SideJSON `json:"user1"`
	User2 SideJSON `json:"user2"`
}

// VersusJSON is the cumulative record against a single rival.
type VersusJSON struct {
	RivalName     string `json:"rivalName"`
	Won           int    `json:"won"`
	Tied          int    `json:"tied"`
	Lost          int    `json:"lost"`
	GoalsMade     int    `json:"goalsMade"`
	GoalsReceived int    `json:"goalsReceived"`
}

// StatsJSON is the /stats payload.
type StatsJSON struct {
	RecentMatches []MatchJSON  `json:"recentMatches"`
	Versus        []VersusJSON `json:"versus"`
}

// APIJSON renders the match in its storage side order.
func (m *Match) APIJSON(withDate bool) MatchJSON {
	j := MatchJSON{
		ID: m.ID,
		User1: SideJSON{
			ID:    m.User1.ID,
			Name:  m.User1.Name,
			Team:  m.Team1.APIJSON(),
			Goals: m.User1Goals,
		},
		User2: SideJSON{
			ID:    m.User2.ID,
			Name:  m.User2.Name,
			Team:  m.Team2.APIJSON(),
			Goals: m.User2Goals,
		},
	}
	if withDate {
		j.Date = m.CreatedAt.Unix()
	}
	return j
}
