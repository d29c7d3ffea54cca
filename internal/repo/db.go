package repo

import (
	"GopherMarket/internal/model"
	"errors"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// InitDB открывает соединение со стором и прогоняет миграции.
// DSN с "postgres://" или "host=" — Postgres, иначе путь к файлу SQLite.
// TranslateError включён, чтобы нарушение уникальности приходило как
// gorm.ErrDuplicatedKey.
func InitDB(dsn string) (*gorm.DB, error) {
	var dial gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") || strings.Contains(dsn, "host=") {
		dial = postgres.Open(dsn)
	} else {
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	}

	db, err := gorm.Open(dial, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&model.User{}, &model.Item{}, &model.CartEntry{}); err != nil {
		return nil, err
	}
	return db, nil
}

// translateDuplicate дотягивает нарушение уникальности до gorm.ErrDuplicatedKey.
// Переводчик ошибок gorm знает только mattn-драйвер, ошибки modernc
// приходят нетранслированными.
func translateDuplicate(err error) error {
	var se *sqlite.Error
	if errors.As(err, &se) && se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
		return gorm.ErrDuplicatedKey
	}
	return err
}
