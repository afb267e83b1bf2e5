package config

import (
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func ConnectDB(dbFile string) (*gorm.DB, error) {
	// busy_timeout=5000 (wait 5s)
	// journal_mode=WAL (allow concurrent reads/writes)
	dsn := dbFile + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		PrepareStmt: true,
		Logger:      logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})

	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// a single writer keeps sqlite free of lock contention
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}
