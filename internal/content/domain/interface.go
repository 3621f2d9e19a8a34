package domain

//go:generate mockgen -destination=../../mocks/mock_content_repository.go -package=mocks github.com/Sonai2004/My-Portfolio/internal/content/domain ContentRepository

import (
	"context"
)

type ContentRepository interface {
	ListProjects(ctx context.Context) ([]Project, error)
	GetProject(ctx context.Context, id string) (*Project, error)
	CreateProject(ctx context.Context, p *Project) error
	UpdateProject(ctx context.Context, p *Project) error
	SetProjectImage(ctx context.Context, id, imageURL string) error
	DeleteProject(ctx context.Context, id string) error

	ListSkills(ctx context.Context) ([]Skill, error)
	CreateSkill(ctx context.Context, s *Skill) error
	UpdateSkill(ctx context.Context, s *Skill) error
	DeleteSkill(ctx context.Context, id string) error

	ListAchievements(ctx context.Context) ([]Achievement, error)
	CreateAchievement(ctx context.Context, a *Achievement) error
	UpdateAchievement(ctx context.Context, a *Achievement) error
	DeleteAchievement(ctx context.Context, id string) error
}
