package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"staybook/infras/otel"
	"staybook/infras/postgres"
	"staybook/internal/domains/vender/model"
	gDto "staybook/shared/dto"
	gRepo "staybook/shared/repository"
)

type Vendor interface {
	Insert(ctx context.Context, model model.Vendor) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Vendor, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Vendor]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Vendor {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Vendor](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
