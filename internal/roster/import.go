package roster

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"github.com/juanedi/fifatum/internal/league"
)

// Import reads a roster document mapping league names to team names and
// mirrors it into the store. Leagues already present are skipped whole, so
// re-running an import never duplicates teams.
func Import(repo league.LeagueRepository, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read roster data: %w", err)
	}

	var rosters map[string][]string
	if err := json.Unmarshal(data, &rosters); err != nil {
		return fmt.Errorf("failed to parse roster data: %w", err)
	}

	// Stable import order for logs and ids.
	names := make([]string, 0, len(rosters))
	for name := range rosters {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		existing, err := repo.FindLeagueByName(name)
		if err != nil {
			return fmt.Errorf("failed to look up league %q: %w", name, err)
		}
		if existing != nil {
			log.Printf("roster: league %q already imported, skipping", name)
			continue
		}

		l := &league.League{Name: name}
		if err := repo.CreateLeague(l); err != nil {
			return fmt.Errorf("failed to create league %q: %w", name, err)
		}
		log.Printf("roster: importing league %q (%d teams)", name, len(rosters[name]))

		for _, teamName := range rosters[name] {
			t := &league.Team{Name: teamName, LeagueID: l.ID}
			if err := repo.CreateTeam(t); err != nil {
				return fmt.Errorf("failed to create team %q in league %q: %w", teamName, name, err)
			}
		}
	}

	return nil
}

// ImportFile runs Import against a roster JSON file on disk.
func ImportFile(repo league.LeagueRepository, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open roster file %s: %w", path, err)
	}
	defer f.Close()
	return Import(repo, f)
}
