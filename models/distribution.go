package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/savthe/prediction-confidence/domain/confidence"
	"github.com/savthe/prediction-confidence/domain/dist"
)

// Distribution is a persisted, named distribution configuration. Rows are
// written once at registration and never mutated.
type Distribution struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Mean      float64   `db:"mean" json:"mean"`
	Stdev     float64   `db:"stdev" json:"stdev"`
	Lower     float64   `db:"lower_bound" json:"lower"`
	Upper     float64   `db:"upper_bound" json:"upper"`
	Points    int       `db:"points" json:"points"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// NewDistribution returns a named distribution spanning the standard support
// at the default resolution.
func NewDistribution(name string, p dist.Params) *Distribution {
	cfg := confidence.NewConfig(p)
	return &Distribution{
		ID:        uuid.New(),
		Name:      name,
		Mean:      cfg.Params.Mean,
		Stdev:     cfg.Params.Stdev,
		Lower:     cfg.Lower,
		Upper:     cfg.Upper,
		Points:    cfg.Points,
		CreatedAt: time.Now().UTC(),
	}
}

// Config converts the stored row into a buildable table configuration.
func (d *Distribution) Config() confidence.Config {
	return confidence.Config{
		Params: dist.Params{Mean: d.Mean, Stdev: d.Stdev},
		Lower:  d.Lower,
		Upper:  d.Upper,
		Points: d.Points,
	}
}

// Validate checks the row describes a buildable configuration.
func (d *Distribution) Validate() error {
	return d.Config().Validate()
}
