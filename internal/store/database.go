package store

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/foodipy/foodipy/config"
)

// record is the single key/value table the database driver lives in.
type record struct {
	Key   string `gorm:"primaryKey;size:255"`
	Value []byte
}

func (record) TableName() string { return "records" }

// databaseDriver stores every collection as one row in a records table.
// The SQL dialect is selected by DB_DRIVER, same as any other Foodipy
// database setting.
type databaseDriver struct {
	db *gorm.DB
}

func newDatabaseDriver() (Driver, error) {
	dialector, err := buildDialector(config.DatabaseDriver(), config.DatabaseDSN())
	if err != nil {
		return nil, fmt.Errorf("store/database: build dialector: %w", err)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent), // pkg/logger owns the output
	})
	if err != nil {
		return nil, fmt.Errorf("store/database: open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("store/database: get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(5)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("store/database: ping: %w", err)
	}

	if err := db.AutoMigrate(&record{}); err != nil {
		return nil, fmt.Errorf("store/database: migrate: %w", err)
	}

	return &databaseDriver{db: db}, nil
}

func buildDialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "sqlite":
		return sqlite.Open(dsn), nil
	case "postgres":
		return postgres.Open(dsn), nil
	case "mysql":
		return mysql.Open(dsn), nil
	case "sqlserver":
		return sqlserver.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (supported: sqlite, postgres, mysql, sqlserver)", driver)
	}
}

func (d *databaseDriver) Get(key string) ([]byte, error) {
	var rec record
	err := d.db.First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoRecord
	}
	if err != nil {
		return nil, fmt.Errorf("store/database: get %s: %w", key, err)
	}
	return rec.Value, nil
}

func (d *databaseDriver) Put(key string, value []byte) error {
	rec := record{Key: key, Value: value}
	err := d.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("store/database: put %s: %w", key, err)
	}
	return nil
}

func (d *databaseDriver) Delete(key string) error {
	if err := d.db.Delete(&record{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("store/database: delete %s: %w", key, err)
	}
	return nil
}

func (d *databaseDriver) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
