package levels

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/paarad/27-backroom-generator/pkg/backroom"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	_ "modernc.org/sqlite"
)

var _ backroom.Store = (*Store)(nil)

// Store handles storage and retrieval of levels using GORM
type Store struct {
	db     *gorm.DB
	logger *zap.Logger
}

// MySQL returns a dialector for a MySQL DSN
func MySQL(dsn string) gorm.Dialector {
	return mysql.Open(dsn)
}

// SQLite returns a dialector for a SQLite database file backed by the pure Go driver
func SQLite(path string) gorm.Dialector {
	return sqlite.Dialector{
		DriverName: "sqlite",
		DSN:        path,
	}
}

// Open connects to a database. now stamps created_at and updated_at; nil means time.Now in UTC.
func Open(dialector gorm.Dialector, now func() time.Time) (*gorm.DB, error) {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		NowFunc: now,
		Logger:  gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return db, nil
}

// NewStore creates a level store on an open connection and migrates its table
func NewStore(db *gorm.DB, logger *zap.Logger) (*Store, error) {
	store := &Store{
		db:     db,
		logger: logger.With(zap.String("component", "level_store")),
	}

	if err := store.migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate tables: %w", err)
	}

	return store, nil
}

// migrate creates or updates the required database tables
func (s *Store) migrate() error {
	return s.db.AutoMigrate(&LevelModel{})
}

// SaveLevel updates the stored level matching this one's id, or its prompt and name,
// and inserts a new row when neither matches
func (s *Store) SaveLevel(ctx context.Context, level *backroom.Level, authorName string) (backroom.SaveResult, error) {
	if err := level.Validate(); err != nil {
		return backroom.SaveResult{}, err
	}

	model := toModel(level, resolveAuthor(authorName, level))

	var result backroom.SaveResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := findExisting(tx, level)
		if err != nil {
			return fmt.Errorf("failed to check existing level: %w", err)
		}

		if existing == nil {
			model.ID = uuid.NewString()
			if err := tx.Create(model).Error; err != nil {
				return fmt.Errorf("failed to create level: %w", err)
			}
			result = backroom.SaveResult{ID: model.ID, Updated: false}
			return nil
		}

		model.ID = existing.ID
		model.CreatedAt = existing.CreatedAt
		if err := tx.Save(model).Error; err != nil {
			return fmt.Errorf("failed to update level: %w", err)
		}
		result = backroom.SaveResult{ID: model.ID, Updated: true}
		return nil
	})

	record("save", err)
	if err != nil {
		s.logger.Error("Failed to save level", zap.Error(err), zap.String("name", level.Name))
		return backroom.SaveResult{}, &backroom.Error{Kind: backroom.KindPersistenceUnavailable, Op: "save level", Err: err}
	}

	s.logger.Info("Saved level", zap.String("id", result.ID), zap.Bool("updated", result.Updated))
	return result, nil
}

// findExisting returns the row a save should update, or nil for an insert
func findExisting(tx *gorm.DB, level *backroom.Level) (*LevelModel, error) {
	var existing LevelModel

	if level.ID != "" {
		err := tx.Where("id = ?", level.ID).First(&existing).Error
		if err == nil {
			return &existing, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	err := tx.Where("prompt = ? AND name = ?", level.Prompt, level.Name).Order("created_at DESC").First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &existing, nil
}

// ListLevels returns all saved levels, newest first
func (s *Store) ListLevels(ctx context.Context) ([]*backroom.Level, error) {
	var models []LevelModel
	err := s.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&models).Error

	record("list", err)
	if err != nil {
		s.logger.Error("Failed to list levels", zap.Error(err))
		return nil, &backroom.Error{Kind: backroom.KindPersistenceUnavailable, Op: "list levels", Err: err}
	}

	levels := make([]*backroom.Level, len(models))
	for i := range models {
		levels[i] = toLevel(&models[i])
	}

	return levels, nil
}

// GetLevel retrieves a level by id, returning nil when it does not exist
func (s *Store) GetLevel(ctx context.Context, id string) (*backroom.Level, error) {
	if id == "" {
		return nil, nil
	}

	var model LevelModel
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		record("get", nil)
		return nil, nil
	}

	record("get", err)
	if err != nil {
		s.logger.Error("Failed to get level", zap.Error(err), zap.String("id", id))
		return nil, &backroom.Error{Kind: backroom.KindPersistenceUnavailable, Op: "get level", Err: err}
	}

	return toLevel(&model), nil
}

// Close closes the database connection
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB from gorm.DB: %w", err)
	}
	return sqlDB.Close()
}
