package configs

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/23CSE311-SeeFood/seeFood-Backend/entity"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// ConnectDB opens the store the whole process shares. Constraint errors are
// translated to gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated.
func ConnectDB(cfg *Config, log *slog.Logger) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg.DBDriver, cfg.DBSource)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger: newGormLogger(log, cfg.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.DBDriver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.DBDriver == DriverSQLite {
		// one writer; also keeps a :memory: database on a single connection
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping %s: %w", cfg.DBDriver, err)
	}
	log.Info("database connected", "driver", cfg.DBDriver)
	return db, nil
}

func dialectorFor(driver, source string) (gorm.Dialector, error) {
	switch driver {
	case DriverSQLite:
		return sqlite.Open(withSQLiteForeignKeys(source)), nil
	case DriverPostgres:
		return postgres.Open(source), nil
	case DriverMySQL:
		return mysql.Open(source), nil
	}
	return nil, fmt.Errorf("unsupported driver %q", driver)
}

// sqlite only enforces foreign keys when asked to, per connection.
func withSQLiteForeignKeys(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=on"
}

// newGormLogger sends gorm's output through the process logger so every
// line shares its format. SQL traces are debug records, the rest warnings.
func newGormLogger(log *slog.Logger, level string) logger.Interface {
	recordLevel := slog.LevelWarn
	if level == "debug" {
		recordLevel = slog.LevelDebug
	}
	return logger.New(slog.NewLogLogger(log.Handler(), recordLevel), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormLogLevel(level),
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

func gormLogLevel(level string) logger.LogLevel {
	switch level {
	case "debug":
		return logger.Info
	case "error":
		return logger.Silent
	}
	return logger.Warn
}

// SetupDatabase migrates the schema.
func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Canteen{}, &entity.Item{},
		&entity.Student{},
	)
}

// CloseDB drains the connection pool.
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
