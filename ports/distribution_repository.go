package ports

import (
	"context"

	"github.com/savthe/prediction-confidence/models"
)

// DistributionRepository persists named distribution configurations.
type DistributionRepository interface {
	Create(ctx context.Context, d *models.Distribution) error
	GetByName(ctx context.Context, name string) (*models.Distribution, error)
	List(ctx context.Context) ([]*models.Distribution, error)
	Delete(ctx context.Context, name string) error
}

// SampleReader loads observed values for distribution calibration.
type SampleReader interface {
	ReadSamples(column string) ([]float64, error)
}
