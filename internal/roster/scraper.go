package roster

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// TeamsURL is the EA article listing every FIFA 17 league and team.
const TeamsURL = "https://www.easports.com/fifa/news/2016/fifa-17-leagues-and-teams"

// Scrape downloads the EA leagues page and writes the roster JSON document
// the importer consumes.
func Scrape(outPath string) error {
	resp, err := http.Get(TeamsURL)
	if err != nil {
		return fmt.Errorf("failed to download %s: %w", TeamsURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s fetching %s", resp.Status, TeamsURL)
	}

	rosters, err := parseRosters(resp.Body)
	if err != nil {
		return err
	}

	buf, err := json.MarshalIndent(rosters, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode roster data: %w", err)
	}

	if err := os.WriteFile(outPath, buf, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	return nil
}

// parseRosters extracts the league -> teams mapping from the article HTML.
// Each league is an h3 heading followed by an element whose paragraphs name
// the teams.
func parseRosters(r io.Reader) (map[string][]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	rosters := make(map[string][]string)

	doc.Find(".article-detail .eas-b2 h3").Each(func(_ int, heading *goquery.Selection) {
		leagueName := strings.TrimSpace(heading.Text())
		if leagueName == "" {
			return
		}

		var teams []string
		heading.Next().Find("p").Each(func(_ int, p *goquery.Selection) {
			name := strings.TrimSpace(p.Text())
			if name != "" {
				teams = append(teams, name)
			}
		})

		rosters[leagueName] = teams
	})

	return rosters, nil
}
