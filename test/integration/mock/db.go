package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/habit-tracker/backend/internal/integration/persistence/model"
)

var once sync.Once
var db *Db

// Db wraps a shared in-memory SQLite connection for integration tests.
type Db struct {
	DbConn *gorm.DB
	models []any
}

// NewDb opens (once) the shared in-memory database with the full
// schema migrated. Scenarios share the connection and call Reset
// between runs.
func NewDb() *Db {
	once.Do(func() {
		db = open()
	})
	return db
}

func open() *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	newDb := &Db{
		DbConn: dbConn,
		models: []any{
			&model.TrackerRecordModel{},
			&model.TrackerModel{},
			&model.CategoryModel{},
		},
	}

	if err := dbConn.AutoMigrate(newDb.models...); err != nil {
		panic(fmt.Sprintf("failed to migrate test database. err: %s", err.Error()))
	}

	return newDb
}

// Reset removes every row, children before parents, so scenarios start
// from an empty store.
func (d *Db) Reset() error {
	for _, m := range d.models {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error
		if err != nil {
			return fmt.Errorf("failed to reset table for model %T: %w", m, err)
		}
	}
	return nil
}
