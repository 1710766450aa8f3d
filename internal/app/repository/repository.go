package repository

import (
	"context"
	"errors"
	"fmt"

	"boatyard/internal/app/ds"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	// ErrStorage - любая ошибка хранилища (соединение, выполнение запроса)
	ErrStorage = errors.New("storage failure")
	// ErrBoatNotFound - лодка с таким id не найдена
	ErrBoatNotFound = errors.New("boat not found")
)

type Repository struct {
	db *gorm.DB
}

func New(dsn string) (*Repository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, storageErr(err)
	}
	return NewWithDB(db), nil
}

// NewWithDB - репозиторий поверх уже открытого соединения
func NewWithDB(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) DB() *gorm.DB {
	return r.db
}

// Ping - проверка доступности БД
func (r *Repository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return storageErr(err)
	}
	return storageErr(sqlDB.PingContext(ctx))
}

// Migrate - создание таблиц. Модели передаются одним вызовом,
// gorm сам упорядочивает их по внешним ключам (включая таблицу связи).
func (r *Repository) Migrate() error {
	if err := r.db.SetupJoinTable(&ds.Boat{}, "Classifications", &ds.BoatClassification{}); err != nil {
		return storageErr(err)
	}
	if err := r.db.SetupJoinTable(&ds.Classification{}, "Boats", &ds.BoatClassification{}); err != nil {
		return storageErr(err)
	}
	err := r.db.AutoMigrate(
		&ds.Captain{},
		&ds.Classification{},
		&ds.Boat{},
		&ds.BoatClassification{},
	)
	if err != nil {
		return storageErr(fmt.Errorf("auto migrate: %w", err))
	}
	return nil
}

func storageErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrStorage) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrStorage, err)
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
