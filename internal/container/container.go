package container

import (
	"context"
	"log"

	"github.com/jmoiron/sqlx"

	"cropadvisor/adapters/classifier"
	"cropadvisor/adapters/postgres"
	"cropadvisor/adapters/tabular"
	"cropadvisor/domain/refdata"
	"cropadvisor/internal/advisor"
	"cropadvisor/internal/config"
	"cropadvisor/internal/errors"
	"cropadvisor/internal/location"
	"cropadvisor/internal/rules"
	"cropadvisor/ports"
)

// Container holds all application dependencies and manages their lifecycle.
// Everything is loaded once in Load and immutable afterwards, so concurrent
// request handlers can share it without locking.
type Container struct {
	Config *config.Config

	DB *sqlx.DB

	Frame      *refdata.Frame
	Classifier ports.CropClassifier
	Villages   ports.VillageIndex
	Markets    ports.MarketDirectory

	Advisor *advisor.Advisor
}

// New creates a container for the given configuration.
func New(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, errors.ConfigInvalid("config cannot be nil")
	}
	return &Container{Config: cfg}, nil
}

// Load initializes every startup artifact. Model and reference dataset
// failures abort initialization; the village map and market table degrade
// to empty tables with a warning.
func (c *Container) Load(ctx context.Context) error {
	model, err := classifier.LoadFromFile(c.Config.Data.ModelPath)
	if err != nil {
		return errors.Wrap(err, "failed to load trained model")
	}
	c.Classifier = model
	log.Printf("[container] Loaded model with %d classes, %d features",
		len(model.Classes()), len(model.Schema().Features))

	source, err := c.referenceSource()
	if err != nil {
		return err
	}
	frame, err := source.Load(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load reference dataset")
	}
	c.Frame = frame
	log.Printf("[container] Loaded reference dataset: %d rows", frame.Len())

	villages := tabular.LoadVillageIndex(c.Config.Data.VillageMapPath)
	c.Villages = villages
	log.Printf("[container] Village index: %d entries", villages.Len())

	markets := tabular.LoadMarketDirectory(c.Config.Data.MarketPath)
	c.Markets = markets
	log.Printf("[container] Market directory: %d entries", markets.Len())

	c.Advisor = advisor.New(
		c.Frame,
		c.Classifier,
		location.NewResolver(c.Villages),
		rules.NewMarketEngine(c.Markets),
		advisor.WithHomeState(c.Config.Data.HomeState),
	)

	log.Printf("[container] Initialization complete")
	return nil
}

func (c *Container) referenceSource() (ports.ReferenceSource, error) {
	switch c.Config.Data.Source {
	case config.SourcePostgres:
		db, err := sqlx.Connect("postgres", c.Config.Database.URL)
		if err != nil {
			return nil, errors.Wrap(err, "failed to connect to database")
		}
		if err := db.Ping(); err != nil {
			return nil, errors.Wrap(err, "database connection test failed")
		}
		c.DB = db
		return postgres.NewReferenceSource(db, c.Config.Data.ReferenceTable), nil
	default:
		return tabular.NewReferenceSource(c.Config.Data.ReferencePath), nil
	}
}

// Close releases held resources.
func (c *Container) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
