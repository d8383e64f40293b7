package cli

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Alp4ka/pagetable"
	"github.com/Alp4ka/pagetable/internal/config"
	"github.com/Alp4ka/pagetable/source"
)

// newSource builds the configured record source. In-memory and HTTP sources
// are sorted after loading, SQL sources sort in the query.
func newSource(cfg config.Config) (source.Source[source.User], error) {
	if cfg.IsSQL() {
		return newGormSource(cfg)
	}

	orderings, err := parseSort(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Source == config.SourceHTTP {
		return sorted(source.NewHTTP[source.User](cfg.URL, source.WithTimeout(cfg.FetchTimeout)), orderings), nil
	}

	return sorted(source.NewStatic(source.SeedUsers(cfg.Seed)), orderings), nil
}

// newGormSource opens the configured database. The sort is validated before
// any connection is made.
func newGormSource(cfg config.Config) (*source.Gorm[source.User], error) {
	orderings, err := parseSort(cfg)
	if err != nil {
		return nil, err
	}

	db, err := openDB(cfg)
	if err != nil {
		return nil, err
	}

	s := source.NewGorm[source.User](db, orderings...)
	if cfg.Table != "" {
		s = s.WithTable(cfg.Table)
	}

	return s, nil
}

func parseSort(cfg config.Config) (pagetable.Orderings, error) {
	orderings, err := pagetable.ParseSort(cfg.Sort, source.UserColumns)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", config.KeySort, err)
	}

	return orderings, nil
}

func sorted(src source.Source[source.User], orderings pagetable.Orderings) source.Source[source.User] {
	if len(orderings) == 0 {
		return src
	}

	return source.NewSorted(src, source.UserGetters, orderings...)
}

func openDB(cfg config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Source {
	case config.SourceMySQL:
		dialector = mysql.Open(cfg.DSN)
	default:
		dialector = postgres.Open(cfg.DSN)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("cannot open %s database: %w", cfg.Source, err)
	}

	return db, nil
}
