package db

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")

type GormDB struct {
	db *gorm.DB
}

func NewGormDB(dsn string) (*GormDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &GormDB{
		db: db,
	}, nil
}

// FromGorm wraps an already opened connection.
func FromGorm(db *gorm.DB) *GormDB {
	return &GormDB{db: db}
}

func (f *GormDB) MigrateModels(models ...any) error {
	err := f.db.AutoMigrate(models...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// SaveToTable inserts records, a pointer to a slice of models. Rows that
// collide with a unique index are skipped.
func (f *GormDB) SaveToTable(ctx context.Context, records any) error {
	v := reflect.ValueOf(records)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("records type must be pointer to a slice: %T", records)
	}
	if v.Elem().Len() == 0 {
		return nil
	}

	err := f.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(records).Error
	if err != nil {
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

func (f *GormDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.db.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

// GetAllByAny loads every row where at least one of columns equals value,
// sorted by order.
func (f *GormDB) GetAllByAny(ctx context.Context, columns []string, value any, order string, dest any) error {
	if len(columns) == 0 {
		return errors.New("no columns to match")
	}

	clauses := make([]string, len(columns))
	args := make([]any, len(columns))
	for i, c := range columns {
		clauses[i] = fmt.Sprintf("%s = ?", c)
		args[i] = value
	}

	tx := f.db.WithContext(ctx).Where(strings.Join(clauses, " OR "), args...)
	if order != "" {
		tx = tx.Order(order)
	}
	if err := tx.Find(dest).Error; err != nil {
		return fmt.Errorf("getting records by %s: %w", strings.Join(columns, ", "), err)
	}
	return nil
}
