package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Sonai2004/My-Portfolio/internal/content/domain"
	"github.com/Sonai2004/My-Portfolio/internal/content/dto"
	"github.com/Sonai2004/My-Portfolio/internal/content/service"
	apperrors "github.com/Sonai2004/My-Portfolio/internal/errors"
	"github.com/Sonai2004/My-Portfolio/internal/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentService_Projects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockContentRepository(ctrl)
	s := service.NewContentService(mockRepo)
	ctx := context.Background()

	t.Run("create fills id and defaults tech stack", func(t *testing.T) {
		var created *domain.Project
		mockRepo.EXPECT().CreateProject(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *domain.Project) error {
				created = p
				return nil
			})

		out, err := s.CreateProject(ctx, dto.ProjectInput{Title: "Portfolio Site"})
		require.NoError(t, err)

		assert.NotEmpty(t, created.ID)
		assert.Equal(t, created.ID, out.ID)
		assert.NotNil(t, out.TechStack)
		assert.Empty(t, out.TechStack)
	})

	t.Run("get not found", func(t *testing.T) {
		mockRepo.EXPECT().GetProject(gomock.Any(), "ghost").Return(nil, nil)

		_, err := s.GetProject(ctx, "ghost")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("get success", func(t *testing.T) {
		mockRepo.EXPECT().GetProject(gomock.Any(), "p-1").
			Return(&domain.Project{ID: "p-1", Title: "Portfolio Site", TechStack: []string{"Go", "Postgres"}}, nil)

		out, err := s.GetProject(ctx, "p-1")
		require.NoError(t, err)
		assert.Equal(t, []string{"Go", "Postgres"}, out.TechStack)
	})

	t.Run("list propagates repository error", func(t *testing.T) {
		mockRepo.EXPECT().ListProjects(gomock.Any()).Return(nil, errors.New("db error"))

		_, err := s.ListProjects(ctx)
		assert.Error(t, err)
	})

	t.Run("update unknown project", func(t *testing.T) {
		mockRepo.EXPECT().UpdateProject(gomock.Any(), gomock.Any()).Return(apperrors.ErrNotFound)

		err := s.UpdateProject(ctx, "ghost", dto.ProjectInput{Title: "Renamed"})
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("set image", func(t *testing.T) {
		mockRepo.EXPECT().SetProjectImage(gomock.Any(), "p-1", "/uploads/p-1.png").Return(nil)

		assert.NoError(t, s.SetProjectImage(ctx, "p-1", "/uploads/p-1.png"))
	})
}

func TestContentService_Skills(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockContentRepository(ctrl)
	s := service.NewContentService(mockRepo)
	ctx := context.Background()

	t.Run("create", func(t *testing.T) {
		mockRepo.EXPECT().CreateSkill(gomock.Any(), gomock.Any()).Return(nil)

		out, err := s.CreateSkill(ctx, dto.SkillInput{Name: "Go", Category: "backend", Proficiency: 5})
		require.NoError(t, err)
		assert.NotEmpty(t, out.ID)
		assert.Equal(t, "Go", out.Name)
	})

	t.Run("list", func(t *testing.T) {
		mockRepo.EXPECT().ListSkills(gomock.Any()).
			Return([]domain.Skill{{ID: "s-1", Name: "Go"}, {ID: "s-2", Name: "Postgres"}}, nil)

		out, err := s.ListSkills(ctx)
		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.Equal(t, "Postgres", out[1].Name)
	})

	t.Run("delete unknown skill", func(t *testing.T) {
		mockRepo.EXPECT().DeleteSkill(gomock.Any(), "ghost").Return(apperrors.ErrNotFound)

		assert.ErrorIs(t, s.DeleteSkill(ctx, "ghost"), apperrors.ErrNotFound)
	})
}

func TestContentService_Achievements(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockContentRepository(ctrl)
	s := service.NewContentService(mockRepo)
	ctx := context.Background()

	t.Run("create", func(t *testing.T) {
		mockRepo.EXPECT().CreateAchievement(gomock.Any(), gomock.Any()).Return(nil)

		out, err := s.CreateAchievement(ctx, dto.AchievementInput{
			Title:        "Best Capstone Project",
			Organization: "University",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, out.ID)
	})

	t.Run("update", func(t *testing.T) {
		var updated *domain.Achievement
		mockRepo.EXPECT().UpdateAchievement(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a *domain.Achievement) error {
				updated = a
				return nil
			})

		err := s.UpdateAchievement(ctx, "a-1", dto.AchievementInput{Title: "Renamed"})
		require.NoError(t, err)
		assert.Equal(t, "a-1", updated.ID)
		assert.Equal(t, "Renamed", updated.Title)
	})
}
