// picks the GORM driver for the dispatch journal by DBDriver; "none" runs without a journal.

package config

import (
	"log"

	"github.com/dmleach/frock/models"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	// GORM drivers (we open one depending on cfg.DBDriver).
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
)

// InitDB opens the journal database and migrates the dispatch table.
// It returns nil when the journal is disabled.
func InitDB(cfg *Config) *gorm.DB {
	dial := dialector(cfg)
	if dial == nil {
		log.Printf("[db] journal disabled (db_driver=%q)", cfg.DBDriver)
		return nil
	}

	// Warn keeps output readable; Info logs every journal insert.
	db, err := gorm.Open(dial, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("[db] connection error: %v", err)
	}

	if err := db.AutoMigrate(&models.Dispatch{}); err != nil {
		log.Fatalf("[db] automigrate error: %v", err)
	}
	log.Printf("[db] journal ready (driver=%s)", cfg.DBDriver)
	return db
}

func dialector(cfg *Config) gorm.Dialector {
	switch cfg.DBDriver {
	case "", "none":
		return nil
	case "mysql":
		if cfg.MySQLDSN == "" {
			log.Fatal("[db] mysql selected but mysql_dsn empty")
		}
		return mysql.Open(cfg.MySQLDSN)
	case "postgres":
		if cfg.PostgresDSN == "" {
			log.Fatal("[db] postgres selected but postgres_dsn empty")
		}
		return postgres.Open(cfg.PostgresDSN)
	case "sqlite":
		// SQLite only needs a file path; the file is created if missing.
		return sqlite.Open(cfg.SQLitePath)
	case "sqlserver":
		if cfg.SQLServerDSN == "" {
			log.Fatal("[db] sqlserver selected but sqlserver_dsn empty")
		}
		return sqlserver.Open(cfg.SQLServerDSN)
	default:
		log.Fatalf("[db] unknown DBDriver: %s", cfg.DBDriver)
	}
	return nil
}
