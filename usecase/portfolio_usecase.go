package usecase

import (
	"context"
	"errors"
	"fmt"

	"portfolio-site/domain/model"
	"portfolio-site/domain/repository"
)

// ErrProjectNotFound is returned when no project matches the requested ID.
var ErrProjectNotFound = errors.New("project not found")

// IPortfolioUseCase serves the static half of the site: project lists, the
// CV timeline, skills and social links, all loaded from local JSON files.
type IPortfolioUseCase interface {
	GetFilmProjects(ctx context.Context) ([]model.Project, error)
	GetOtherProjects(ctx context.Context) ([]model.Project, error)
	GetProjectByID(ctx context.Context, projectID string) (*model.Project, error)
	GetCV(ctx context.Context) ([]model.TimelineEntry, error)
	GetSkills(ctx context.Context) ([]model.Skill, error)
	GetSocials(ctx context.Context) ([]model.Social, error)
}

type PortfolioUseCase struct {
	portfolioRepo repository.IPortfolio
}

func NewPortfolioUseCase(portfolioRepo repository.IPortfolio) IPortfolioUseCase {
	return &PortfolioUseCase{portfolioRepo: portfolioRepo}
}

// GetFilmProjects returns film projects newest first.
func (uc *PortfolioUseCase) GetFilmProjects(ctx context.Context) ([]model.Project, error) {
	projects, err := uc.portfolioRepo.GetFilmProjects(ctx)
	if err != nil {
		return nil, err
	}
	model.SortProjectsByDateDesc(projects)
	return projects, nil
}

// GetOtherProjects returns non-film projects newest first.
func (uc *PortfolioUseCase) GetOtherProjects(ctx context.Context) ([]model.Project, error) {
	projects, err := uc.portfolioRepo.GetOtherProjects(ctx)
	if err != nil {
		return nil, err
	}
	model.SortProjectsByDateDesc(projects)
	return projects, nil
}

// GetProjectByID searches film and other projects for the given ID.
func (uc *PortfolioUseCase) GetProjectByID(ctx context.Context, projectID string) (*model.Project, error) {
	films, err := uc.portfolioRepo.GetFilmProjects(ctx)
	if err != nil {
		return nil, err
	}
	others, err := uc.portfolioRepo.GetOtherProjects(ctx)
	if err != nil {
		return nil, err
	}
	for _, list := range [][]model.Project{films, others} {
		for i := range list {
			if list[i].ID == projectID {
				return &list[i], nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, projectID)
}

func (uc *PortfolioUseCase) GetCV(ctx context.Context) ([]model.TimelineEntry, error) {
	return uc.portfolioRepo.GetCV(ctx)
}

func (uc *PortfolioUseCase) GetSkills(ctx context.Context) ([]model.Skill, error) {
	return uc.portfolioRepo.GetSkills(ctx)
}

func (uc *PortfolioUseCase) GetSocials(ctx context.Context) ([]model.Social, error) {
	return uc.portfolioRepo.GetSocials(ctx)
}
