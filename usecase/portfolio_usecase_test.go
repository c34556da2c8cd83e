package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"portfolio-site/domain/model"
	"portfolio-site/usecase"
)

type MockPortfolioRepo struct {
	mock.Mock
}

func (m *MockPortfolioRepo) GetFilmProjects(ctx context.Context) ([]model.Project, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockPortfolioRepo) GetOtherProjects(ctx context.Context) ([]model.Project, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockPortfolioRepo) GetCV(ctx context.Context) ([]model.TimelineEntry, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.TimelineEntry), args.Error(1)
}

func (m *MockPortfolioRepo) GetSkills(ctx context.Context) ([]model.Skill, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Skill), args.Error(1)
}

func (m *MockPortfolioRepo) GetSocials(ctx context.Context) ([]model.Social, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Social), args.Error(1)
}

func TestGetFilmProjects_SortedNewestFirst(t *testing.T) {
	mockRepo := new(MockPortfolioRepo)
	mockRepo.On("GetFilmProjects", mock.Anything).Return([]model.Project{
		{ID: "old", Date: "2022-03"},
		{ID: "new", Date: "2024-11"},
		{ID: "mid", Date: "2023-07"},
	}, nil)

	uc := usecase.NewPortfolioUseCase(mockRepo)

	projects, err := uc.GetFilmProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 3)
	assert.Equal(t, "new", projects[0].ID)
	assert.Equal(t, "mid", projects[1].ID)
	assert.Equal(t, "old", projects[2].ID)
}

func TestGetProjectByID_SearchesBothLists(t *testing.T) {
	mockRepo := new(MockPortfolioRepo)
	mockRepo.On("GetFilmProjects", mock.Anything).Return([]model.Project{{ID: "film-1"}}, nil)
	mockRepo.On("GetOtherProjects", mock.Anything).Return([]model.Project{{ID: "other-1"}}, nil)

	uc := usecase.NewPortfolioUseCase(mockRepo)

	project, err := uc.GetProjectByID(context.Background(), "other-1")
	require.NoError(t, err)
	assert.Equal(t, "other-1", project.ID)

	_, err = uc.GetProjectByID(context.Background(), "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, usecase.ErrProjectNotFound)
}
