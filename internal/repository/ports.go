package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateModels(models ...any) error
	SaveToTable(ctx context.Context, records any) error
	GetAllByAny(ctx context.Context, columns []string, value any, order string, dest any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
}
