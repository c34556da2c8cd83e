package repository

import (
	"context"

	"portfolio-site/domain/model"
)

// IPortfolio loads the static portfolio content (JSON data files).
type IPortfolio interface {
	GetFilmProjects(ctx context.Context) ([]model.Project, error)
	GetOtherProjects(ctx context.Context) ([]model.Project, error)
	GetCV(ctx context.Context) ([]model.TimelineEntry, error)
	GetSkills(ctx context.Context) ([]model.Skill, error)
	GetSocials(ctx context.Context) ([]model.Social, error)
}
