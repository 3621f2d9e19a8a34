package service

import (
	"context"
	"time"

	"github.com/Sonai2004/My-Portfolio/internal/content/domain"
	"github.com/Sonai2004/My-Portfolio/internal/content/dto"
	apperrors "github.com/Sonai2004/My-Portfolio/internal/errors"
	"github.com/google/uuid"
)

type ContentService struct {
	repo domain.ContentRepository
}

func NewContentService(repo domain.ContentRepository) *ContentService {
	return &ContentService{repo: repo}
}

func (s *ContentService) ListProjects(ctx context.Context) ([]dto.ProjectOutput, error) {
	projects, err := s.repo.ListProjects(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ProjectOutput, 0, len(projects))
	for i := range projects {
		out = append(out, toProjectOutput(&projects[i]))
	}
	return out, nil
}

func (s *ContentService) GetProject(ctx context.Context, id string) (*dto.ProjectOutput, error) {
	p, err := s.repo.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperrors.ErrNotFound
	}

	out := toProjectOutput(p)
	return &out, nil
}

func (s *ContentService) CreateProject(ctx context.Context, input dto.ProjectInput) (*dto.ProjectOutput, error) {
	now := time.Now()
	p := &domain.Project{
		ID:           uuid.New().String(),
		Title:        input.Title,
		Description:  input.Description,
		TechStack:    input.TechStack,
		LiveURL:      input.LiveURL,
		GithubURL:    input.GithubURL,
		Featured:     input.Featured,
		DisplayOrder: input.DisplayOrder,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if p.TechStack == nil {
		p.TechStack = []string{}
	}

	if err := s.repo.CreateProject(ctx, p); err != nil {
		return nil, err
	}

	out := toProjectOutput(p)
	return &out, nil
}

func (s *ContentService) UpdateProject(ctx context.Context, id string, input dto.ProjectInput) error {
	p := &domain.Project{
		ID:           id,
		Title:        input.Title,
		Description:  input.Description,
		TechStack:    input.TechStack,
		LiveURL:      input.LiveURL,
		GithubURL:    input.GithubURL,
		Featured:     input.Featured,
		DisplayOrder: input.DisplayOrder,
	}
	if p.TechStack == nil {
		p.TechStack = []string{}
	}

	return s.repo.UpdateProject(ctx, p)
}

func (s *ContentService) SetProjectImage(ctx context.Context, id, imageURL string) error {
	return s.repo.SetProjectImage(ctx, id, imageURL)
}

func (s *ContentService) DeleteProject(ctx context.Context, id string) error {
	return s.repo.DeleteProject(ctx, id)
}

func (s *ContentService) ListSkills(ctx context.Context) ([]dto.SkillOutput, error) {
	skills, err := s.repo.ListSkills(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.SkillOutput, 0, len(skills))
	for _, sk := range skills {
		out = append(out, dto.SkillOutput{
			ID:           sk.ID,
			Name:         sk.Name,
			Category:     sk.Category,
			Proficiency:  sk.Proficiency,
			DisplayOrder: sk.DisplayOrder,
		})
	}
	return out, nil
}

func (s *ContentService) CreateSkill(ctx context.Context, input dto.SkillInput) (*dto.SkillOutput, error) {
	now := time.Now()
	sk := &domain.Skill{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Category:     input.Category,
		Proficiency:  input.Proficiency,
		DisplayOrder: input.DisplayOrder,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.CreateSkill(ctx, sk); err != nil {
		return nil, err
	}

	return &dto.SkillOutput{
		ID:           sk.ID,
		Name:         sk.Name,
		Category:     sk.Category,
		Proficiency:  sk.Proficiency,
		DisplayOrder: sk.DisplayOrder,
	}, nil
}

func (s *ContentService) UpdateSkill(ctx context.Context, id string, input dto.SkillInput) error {
	return s.repo.UpdateSkill(ctx, &domain.Skill{
		ID:           id,
		Name:         input.Name,
		Category:     input.Category,
		Proficiency:  input.Proficiency,
		DisplayOrder: input.DisplayOrder,
	})
}

func (s *ContentService) DeleteSkill(ctx context.Context, id string) error {
	return s.repo.DeleteSkill(ctx, id)
}

func (s *ContentService) ListAchievements(ctx context.Context) ([]dto.AchievementOutput, error) {
	achievements, err := s.repo.ListAchievements(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AchievementOutput, 0, len(achievements))
	for _, a := range achievements {
		out = append(out, dto.AchievementOutput{
			ID:           a.ID,
			Title:        a.Title,
			Description:  a.Description,
			Organization: a.Organization,
			AchievedOn:   a.AchievedOn,
			URL:          a.URL,
		})
	}
	return out, nil
}

func (s *ContentService) CreateAchievement(ctx context.Context, input dto.AchievementInput) (*dto.AchievementOutput, error) {
	now := time.Now()
	a := &domain.Achievement{
		ID:           uuid.New().String(),
		Title:        input.Title,
		Description:  input.Description,
		Organization: input.Organization,
		AchievedOn:   input.AchievedOn,
		URL:          input.URL,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.CreateAchievement(ctx, a); err != nil {
		return nil, err
	}

	return &dto.AchievementOutput{
		ID:           a.ID,
		Title:        a.Title,
		Description:  a.Description,
		Organization: a.Organization,
		AchievedOn:   a.AchievedOn,
		URL:          a.URL,
	}, nil
}

func (s *ContentService) UpdateAchievement(ctx context.Context, id string, input dto.AchievementInput) error {
	return s.repo.UpdateAchievement(ctx, &domain.Achievement{
		ID:           id,
		Title:        input.Title,
		Description:  input.Description,
		Organization: input.Organization,
		AchievedOn:   input.AchievedOn,
		URL:          input.URL,
	})
}

func (s *ContentService) DeleteAchievement(ctx context.Context, id string) error {
	return s.repo.DeleteAchievement(ctx, id)
}

func toProjectOutput(p *domain.Project) dto.ProjectOutput {
	return dto.ProjectOutput{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		TechStack:    p.TechStack,
		ImageURL:     p.ImageURL,
		LiveURL:      p.LiveURL,
		GithubURL:    p.GithubURL,
		Featured:     p.Featured,
		DisplayOrder: p.DisplayOrder,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
