package roster

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/juanedi/fifatum/internal/league"
)

type fakeLeagueRepo struct {
	leagues []league.League
	teams   []league.Team
}

func (f *fakeLeagueRepo) GetAllLeagues() ([]league.League, error) {
	return f.leagues, nil
}

func (f *fakeLeagueRepo) FindLeagueByName(name string) (*league.League, error) {
	for i := range f.leagues {
		if f.leagues[i].Name == name {
			return &f.leagues[i], nil
		}
	}
	return nil, nil
}

func (f *fakeLeagueRepo) CreateLeague(l *league.League) error {
	l.ID = uint(len(f.leagues) + 1)
	f.leagues = append(f.leagues, *l)
	return nil
}

func (f *fakeLeagueRepo) CreateTeam(t *league.Team) error {
	t.ID = uint(len(f.teams) + 1)
	f.teams = append(f.teams, *t)
	return nil
}

func (f *fakeLeagueRepo) GetTeamByID(id uint) (*league.Team, error) {
	for i := range f.teams {
		if f.teams[i].ID == id {
			return &f.teams[i], nil
		}
	}
	return nil, nil
}

func TestImportCreatesLeaguesAndTeams(t *testing.T) {
	repo := &fakeLeagueRepo{}

	err := Import(repo, strings.NewReader(`{
		"Premier League": ["Arsenal", "Chelsea"],
		"LaLiga": ["Barcelona"]
	}`))
	require.NoError(t, err)

	require.Len(t, repo.leagues, 2)
	require.Len(t, repo.teams, 3)

	laliga, err := repo.FindLeagueByName("LaLiga")
	require.NoError(t, err)
	require.NotNil(t, laliga)

	var laligaTeams []string
	for _, team := range repo.teams {
		if team.LeagueID == laliga.ID {
			laligaTeams = append(laligaTeams, team.Name)
		}
	}
	assert.Equal(t, []string{"Barcelona"}, laligaTeams)
}

func TestImportSkipsExistingLeagues(t *testing.T) {
	repo := &fakeLeagueRepo{
		leagues: []league.League{{Model: gorm.Model{ID: 1}, Name: "Premier League"}},
	}

	err := Import(repo, strings.NewReader(`{"Premier League": ["Arsenal"]}`))
	require.NoError(t, err)

	assert.Len(t, repo.leagues, 1)
	assert.Empty(t, repo.teams)
}

func TestImportRejectsMalformedData(t *testing.T) {
	err := Import(&fakeLeagueRepo{}, strings.NewReader(`not json`))
	assert.Error(t, err)
}

func TestParseRosters(t *testing.T) {
	html := `
	<html><body>
	<div class="article-detail">
		<div class="eas-b2">
			<h3>Premier League</h3>
			<div>
				<p>Arsenal</p>
				<p>Chelsea</p>
				<p>  </p>
			</div>
			<h3>LaLiga</h3>
			<div>
				<p>Barcelona</p>
			</div>
		</div>
	</div>
	</body></html>`

	rosters, err := parseRosters(strings.NewReader(html))
	require.NoError(t, err)

	assert.Equal(t, map[string][]string{
		"Premier League": {"Arsenal", "Chelsea"},
		"LaLiga":         {"Barcelona"},
	}, rosters)
}
