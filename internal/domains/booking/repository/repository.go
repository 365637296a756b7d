package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"staybook/infras/otel"
	"staybook/infras/postgres"
	"staybook/internal/domains/booking/model"
	"staybook/shared/constant"
	gDto "staybook/shared/dto"
	"staybook/shared/logger"
	gRepo "staybook/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateAffected(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
	Summarize(ctx context.Context, filter gDto.FilterGroup) (model.Summaries, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Summarize groups the matching bookings by status. Revenue only counts paid bookings.
func (r *repositoryImpl) Summarize(ctx context.Context, filter gDto.FilterGroup) (model.Summaries, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Summarize")
	defer scope.End()

	where, args := r.BuildWhereClause(ctx, filter)
	args["paid_status"] = model.PaymentPaid

	query := fmt.Sprintf(`SELECT booking_status,
		COUNT(id) AS bookings,
		COALESCE(SUM(total_amount) FILTER (WHERE payment_status = :paid_status), 0) AS revenue,
		COALESCE(SUM(number_of_rooms), 0) AS rooms
		FROM %s %s GROUP BY booking_status`, model.TableName, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var rows model.Summaries

	prepare, err := r.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return rows, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	if err = prepare.SelectContext(ctx, &rows, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return rows, fmt.Errorf("failed to summarize bookings: %w", err)
	}

	return rows, nil
}
