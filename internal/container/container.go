package container

import (
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/savthe/prediction-confidence/adapters/postgres"
	"github.com/savthe/prediction-confidence/app"
	"github.com/savthe/prediction-confidence/internal"
	"github.com/savthe/prediction-confidence/internal/config"
	"github.com/savthe/prediction-confidence/internal/errors"
	"github.com/savthe/prediction-confidence/ports"
)

// Container holds all application dependencies and manages their lifecycle
type Container struct {
	Config *config.Config

	// Infrastructure. DB is nil when persistence is not configured.
	DB *sqlx.DB

	// Repositories
	DistributionRepo ports.DistributionRepository

	// Services
	Confidence *app.ConfidenceService
}

// New creates a new dependency injection container
func New(cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}
	log := internal.NewLogger("container")

	if cfg.Database.URL != "" {
		db, err := sqlx.Connect("postgres", cfg.Database.URL)
		if err != nil {
			return nil, errors.Wrap(err, "failed to connect to database")
		}
		c.DB = db
		c.DistributionRepo = postgres.NewDistributionRepository(db)
		log.Info("database connected, named distributions enabled")
	} else {
		log.Info("no DATABASE_URL, serving the default distribution only")
	}

	svc, err := app.NewConfidenceService(c.DistributionRepo, cfg.TableConfig())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create confidence service")
	}
	c.Confidence = svc

	return c, nil
}

// Close releases held resources
func (c *Container) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
