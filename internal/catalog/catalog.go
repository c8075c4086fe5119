// Package catalog records parse runs in a local SQLite database so past
// results can be listed and compared without re-parsing.
package catalog

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Run is one recorded invocation of the parser over one source file.
type Run struct {
	ID          string `gorm:"primaryKey"`
	File        string
	SourceSHA   string // hex SHA-256 of the source text
	Tokens      int
	Statements  int
	Diagnostics int
	Fatal       bool
	Error       string // fatal error text, empty on success
	DurationUS  int64  // wall time in microseconds
	CreatedAt   time.Time
}

type Catalog struct {
	db *gorm.DB
}

// Open opens (or creates) the database at path and migrates the schema.
func Open(path string) (*Catalog, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening catalog %s: %w", path, err)
	}
	if err := db.AutoMigrate(&Run{}); err != nil {
		return nil, fmt.Errorf("migrating catalog: %w", err)
	}
	return &Catalog{db: db}, nil
}

// Record stores the run, assigning its ID and timestamp.
func (c *Catalog) Record(run Run) (Run, error) {
	run.ID = uuid.New().String()
	run.CreatedAt = time.Now()
	if err := c.db.Create(&run).Error; err != nil {
		return Run{}, fmt.Errorf("recording run: %w", err)
	}
	return run, nil
}

// Recent returns up to n runs, newest first.
func (c *Catalog) Recent(n int) ([]Run, error) {
	var runs []Run
	if err := c.db.Order("created_at DESC").Limit(n).Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	return runs, nil
}

func (c *Catalog) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
