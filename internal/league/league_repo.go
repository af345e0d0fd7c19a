package league

import (
	"errors"

	"gorm.io/gorm"
)

// LeagueRepository defines persistence for leagues and their rosters.
type LeagueRepository interface {
	GetAllLeagues() ([]League, error)
	FindLeagueByName(name string) (*League, error)
	CreateLeague(league *League) error
	CreateTeam(team *Team) error
	GetTeamByID(id uint) (*Team, error)
}

type leagueRepository struct {
	db *gorm.DB
}

// NewLeagueRepository creates a new instance of LeagueRepository.
func NewLeagueRepository(db *gorm.DB) LeagueRepository {
	return &leagueRepository{db: db}
}

func (r *leagueRepository) GetAllLeagues() ([]League, error) {
	var leagues []League
	err := r.db.Preload("Teams", func(db *gorm.DB) *gorm.DB {
		return db.Order("teams.name ASC")
	}).Order("name ASC").Find(&leagues).Error
	return leagues, err
}

func (r *leagueRepository) FindLeagueByName(name string) (*League, error) {
	var league League
	err := r.db.Where("name = ?", name).First(&league).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &league, nil
}

func (r *leagueRepository) CreateLeague(league *League) error {
	return r.db.Create(league).Error
}

func (r *leagueRepository) CreateTeam(team *Team) error {
	return r.db.Create(team).Error
}

func (r *leagueRepository) GetTeamByID(id uint) (*Team, error) {
	var team Team
	err := r.db.First(&team, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}
