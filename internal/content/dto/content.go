package dto

import (
	"time"
)

type ProjectInput struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	TechStack    []string `json:"tech_stack"`
	LiveURL      string   `json:"live_url"`
	GithubURL    string   `json:"github_url"`
	Featured     bool     `json:"featured"`
	DisplayOrder int      `json:"display_order"`
}

type ProjectOutput struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	TechStack    []string  `json:"tech_stack"`
	ImageURL     string    `json:"image_url"`
	LiveURL      string    `json:"live_url"`
	GithubURL    string    `json:"github_url"`
	Featured     bool      `json:"featured"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type SkillInput struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	Proficiency  int    `json:"proficiency"`
	DisplayOrder int    `json:"display_order"`
}

type SkillOutput struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Proficiency  int    `json:"proficiency"`
	DisplayOrder int    `json:"display_order"`
}

type AchievementInput struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Organization string     `json:"organization"`
	AchievedOn   *time.Time `json:"achieved_on,omitempty"`
	URL          string     `json:"url"`
}

type AchievementOutput struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Organization string     `json:"organization"`
	AchievedOn   *time.Time `json:"achieved_on,omitempty"`
	URL          string     `json:"url"`
}
