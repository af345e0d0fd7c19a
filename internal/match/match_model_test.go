package match

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/juanedi/fifatum/internal/league"
	"github.com/juanedi/fifatum/internal/user"
)

func testUser(id uint, name string) user.User {
	return user.User{Model: gorm.Model{ID: id}, Name: name}
}

func testTeam(id uint, name string) league.Team {
	return league.Team{Model: gorm.Model{ID: id}, Name: name}
}

func testMatch(id uint, at time.Time, u1 user.User, t1 league.Team, g1 int, u2 user.User, t2 league.Team, g2 int) Match {
	return Match{
		Model:       gorm.Model{ID: id, CreatedAt: at},
		User1ID:     u1.ID,
		User1TeamID: t1.ID,
		User1Goals:  g1,
		User2ID:     u2.ID,
		User2TeamID: t2.ID,
		User2Goals:  g2,
		User1:       u1,
		Team1:       t1,
		User2:       u2,
		Team2:       t2,
	}
}

func TestProjectFromEitherSide(t *testing.T) {
	john := testUser(1, "John")
	mike := testUser(2, "Mike")
	t1 := testTeam(10, "Team 1")
	t2 := testTeam(20, "Team 2")

	m := testMatch(1, time.Now(), john, t1, 3, mike, t2, 1)

	asJohn, err := m.Project(john.ID)
	require.NoError(t, err)
	assert.Equal(t, john.ID, asJohn.Own.User.ID)
	assert.Equal(t, t1.ID, asJohn.Own.Team.ID)
	assert.Equal(t, 3, asJohn.Own.Goals)
	assert.Equal(t, mike.ID, asJohn.Rival.User.ID)
	assert.Equal(t, 1, asJohn.Rival.Goals)

	asMike, err := m.Project(mike.ID)
	require.NoError(t, err)

	// The two projections are swaps of each other.
	assert.Equal(t, asJohn.Own, asMike.Rival)
	assert.Equal(t, asJohn.Rival, asMike.Own)
}

func TestProjectRejectsNonParticipant(t *testing.T) {
	m := testMatch(1, time.Now(),
		testUser(1, "John"), testTeam(10, "Team 1"), 3,
		testUser(2, "Mike"), testTeam(20, "Team 2"), 1,
	)

	_, err := m.Project(99)
	assert.ErrorIs(t, err, ErrInvalidParticipant)
}

func TestAPIJSONKeepsStorageSideOrder(t *testing.T) {
	at := time.Date(2016, 11, 19, 22, 0, 0, 0, time.UTC)
	m := testMatch(7, at,
		testUser(1, "John"), testTeam(10, "Team 1"), 3,
		testUser(2, "Mike"), testTeam(20, "Team 2"), 1,
	)

	j := m.APIJSON(true)
	assert.Equal(t, uint(7), j.ID)
	assert.Equal(t, at.Unix(), j.Date)
	assert.Equal(t, "John", j.User1.Name)
	assert.Equal(t, "Team 1", j.User1.Team.Name)
	assert.Equal(t, 3, j.User1.Goals)
	assert.Equal(t, "Mike", j.User2.Name)
	assert.Equal(t, 1, j.User2.Goals)

	assert.Zero(t, m.APIJSON(false).Date)
}
