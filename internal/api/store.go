package api

import (
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/paarad/27-backroom-generator/internal/stores/levels"
	"github.com/paarad/27-backroom-generator/pkg/backroom"
	"github.com/paarad/27-backroom-generator/pkg/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Supported STORE_DRIVER values
const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// OpenStore creates the level store selected by STORE_DRIVER. The returned
// function releases the store and is safe to call once.
func OpenStore(cfg *utils.Config, logger *zap.Logger) (backroom.Store, func() error, error) {
	driver := strings.ToLower(cfg.GetWithDefault("STORE_DRIVER", DriverMySQL))
	if !cfg.Has("STORE_DRIVER") {
		logger.Info("STORE_DRIVER not set, using the default", zap.String("driver", driver))
	}

	var dialector gorm.Dialector
	switch driver {
	case DriverMemory:
		logger.Warn("Using in-memory level store, saved levels are lost on restart")
		return levels.NewInMemoryStore(nil), func() error { return nil }, nil

	case DriverSQLite:
		if err := cfg.Require("SQLITE_PATH"); err != nil {
			return nil, nil, err
		}
		dialector = levels.SQLite(cfg.Get("SQLITE_PATH"))

	case DriverMySQL:
		if err := cfg.Require("MYSQL_USER", "MYSQL_ROOT_PASSWORD", "MYSQL_HOST", "MYSQL_PORT", "MYSQL_DATABASE"); err != nil {
			return nil, nil, err
		}
		dialector = levels.MySQL(mysqlDSN(cfg))

	default:
		return nil, nil, fmt.Errorf("unsupported STORE_DRIVER %q (expected %s, %s or %s)", driver, DriverMySQL, DriverSQLite, DriverMemory)
	}

	db, err := levels.Open(dialector, nil)
	if err != nil {
		return nil, nil, err
	}

	store, err := levels.NewStore(db, logger)
	if err != nil {
		return nil, nil, err
	}

	logger.Info("Opened level store", zap.String("driver", driver))
	return store, store.Close, nil
}

// mysqlDSN builds the MySQL connection string from the configuration
func mysqlDSN(cfg *utils.Config) string {
	dbConfig := mysql.Config{
		User:                 cfg.Get("MYSQL_USER"),
		Passwd:               cfg.Get("MYSQL_ROOT_PASSWORD"),
		Net:                  "tcp",
		Addr:                 fmt.Sprintf("%s:%s", cfg.Get("MYSQL_HOST"), cfg.Get("MYSQL_PORT")),
		DBName:               cfg.Get("MYSQL_DATABASE"),
		ParseTime:            true,
		AllowNativePasswords: true,
		Params:               map[string]string{"charset": "utf8mb4"},
	}

	return dbConfig.FormatDSN()
}
