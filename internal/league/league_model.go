package league

import "gorm.io/gorm"

// League groups the teams of one competition.
type League struct {
	gorm.Model
	Name  string `gorm:"uniqueIndex;not null" json:"name"`
	Teams []Team `json:"teams"`
}

// Team is a selectable side within a league. Rosters never change at
// runtime; they are only written by the importer.
type Team struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	LeagueID uint   `gorm:"index;not null" json:"league_id"`
}

// TeamJSON is the public wire shape of a team.
type TeamJSON struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// LeagueJSON is the public wire shape of a league with its roster.
type LeagueJSON struct {
	ID    uint       `json:"id"`
	Name  string     `json:"name"`
	Teams []TeamJSON `json:"teams"`
}

func (t *Team) APIJSON() TeamJSON {
	return TeamJSON{ID: t.ID, Name: t.Name}
}

func (l *League) APIJSON() LeagueJSON {
	teams := make([]TeamJSON, 0, len(l.Teams))
	for i := range l.Teams {
		teams = append(teams, l.Teams[i].APIJSON())
	}
	return LeagueJSON{ID: l.ID, Name: l.Name, Teams: teams}
}
