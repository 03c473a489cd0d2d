package app

import (
	"context"
	"fmt"

	"github.com/jbeshir/internship-recommender/internal/datasources"
	"github.com/jbeshir/internship-recommender/internal/datasources/memory"
	"github.com/jbeshir/internship-recommender/internal/datasources/mysql"
	"github.com/jbeshir/internship-recommender/internal/datasources/postgres"
)

// Datasource drivers selectable with DATASOURCE_DRIVER.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// SetupDatasetRepository connects to the data store named by driver, reading
// its connection settings from the environment. The returned function
// releases the connection.
func SetupDatasetRepository(
	ctx context.Context, driver string,
) (datasources.DatasetRepository, func(), error) {
	switch driver {
	case DriverMySQL:
		db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to MySQL: %w", err)
		}
		return mysql.New(db), func() { _ = db.Close() }, nil
	case DriverPostgres:
		pool, err := postgres.Connect(ctx, MustGetEnvAsString(ctx, "POSTGRES_URI"))
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to PostgreSQL: %w", err)
		}
		return postgres.New(pool), pool.Close, nil
	case DriverMemory:
		repo, err := memory.Load(MustGetEnvAsString(ctx, "MEMORY_DATASET_PATH"))
		if err != nil {
			return nil, nil, fmt.Errorf("loading in-memory dataset: %w", err)
		}
		return repo, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("%w [%s]", datasources.ErrUnknownDriver, driver)
	}
}
