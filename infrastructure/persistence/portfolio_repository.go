package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"portfolio-site/domain/model"
	"portfolio-site/domain/repository"
	"portfolio-site/infrastructure/logger"
)

// PortfolioRepository loads the static JSON content files. The files are
// opaque input data maintained by hand; a missing file yields an empty list
// rather than an error so pages still render their other sections.
type PortfolioRepository struct {
	dataDir string
}

func NewPortfolioRepository(dataDir string) repository.IPortfolio {
	return &PortfolioRepository{dataDir: dataDir}
}

func loadList[T any](dir, filename string) ([]T, error) {
	path := filepath.Join(dir, filename)
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.GetLogger().WithField("path", path).Warn("Data file not found; returning empty list")
			return []T{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filename, err)
	}
	return items, nil
}

func (r *PortfolioRepository) GetFilmProjects(_ context.Context) ([]model.Project, error) {
	return loadList[model.Project](r.dataDir, "filmprojects.json")
}

func (r *PortfolioRepository) GetOtherProjects(_ context.Context) ([]model.Project, error) {
	return loadList[model.Project](r.dataDir, "otherprojects.json")
}

func (r *PortfolioRepository) GetCV(_ context.Context) ([]model.TimelineEntry, error) {
	return loadList[model.TimelineEntry](r.dataDir, "cv.json")
}

func (r *PortfolioRepository) GetSkills(_ context.Context) ([]model.Skill, error) {
	return loadList[model.Skill](r.dataDir, "skills.json")
}

func (r *PortfolioRepository) GetSocials(_ context.Context) ([]model.Social, error) {
	return loadList[model.Social](r.dataDir, "socials.json")
}
