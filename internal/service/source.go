package service

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jask/dpselect/internal/catalog"
	"github.com/jask/dpselect/internal/config"
	"github.com/jask/dpselect/internal/database"
	"github.com/jask/dpselect/internal/database/repository"
	"github.com/jask/dpselect/internal/logging"
)

// SourceFor opens the product source named by cfg.Catalog.Backend. The closer releases
// the database for the sqlite backend.
func SourceFor(cfg config.Config) (ProductSource, io.Closer, error) {
	switch cfg.Catalog.Backend {
	case config.BackendIndex:
		cat, err := catalog.LoadFile(cfg.Catalog.File)
		if err != nil {
			return nil, nil, err
		}
		src := NewIndexSource(cat)
		logging.Debug("catalog indexed", "file", cfg.Catalog.File, "data_products", src.Index.Len())
		return src, io.NopCloser(nil), nil
	case config.BackendSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("mkdir db dir: %w", err)
		}
		if err := database.RunMigrations(cfg.Database.Path); err != nil {
			return nil, nil, err
		}
		db, err := database.Open(cfg.Database.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("open db: %w", err)
		}
		return repository.NewDataProductRepo(db), db, nil
	default:
		return nil, nil, fmt.Errorf("unknown catalog backend %q", cfg.Catalog.Backend)
	}
}
