package domain

import "time"

type Project struct {
	ID           string
	Title        string
	Description  string
	TechStack    []string
	ImageURL     string
	LiveURL      string
	GithubURL    string
	Featured     bool
	DisplayOrder int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Skill struct {
	ID           string
	Name         string
	Category     string
	Proficiency  int
	DisplayOrder int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Achievement struct {
	ID           string
	Title        string
	Description  string
	Organization string
	AchievedOn   *time.Time
	URL          string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
