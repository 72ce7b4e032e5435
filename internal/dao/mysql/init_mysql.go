// Package mysql opens the database connection, migrates the schema and
// builds the repository aggregate. The handle is injected downward from
// main rather than held as package state.
package mysql

import (
	"fmt"

	"kind_contact_server/internal/config"
	"kind_contact_server/internal/dao/mysql/repository"
	"kind_contact_server/internal/model"

	mysqldriver "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Init connects to MySQL, runs AutoMigrate for every entity and returns
// the repository aggregate together with the raw handle (main closes it
// on shutdown).
func Init(conf *config.MysqlConfig) (*repository.Repositories, *gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		conf.User,
		conf.Password,
		conf.Host,
		conf.Port,
		conf.DatabaseName,
	)

	db, err := gorm.Open(mysqldriver.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, nil, fmt.Errorf("open mysql: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, nil, err
	}

	return repository.NewRepositories(db), db, nil
}

// Migrate creates or updates every table. Shared with the sqlite-backed
// tests so both paths run the identical schema.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.Contact{},
		&model.Phone{},
		&model.Email{},
		&model.Address{},
		&model.Note{},
		&model.NoteMapping{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
