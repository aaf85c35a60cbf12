package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"lendit/infras/otel"
	"lendit/infras/postgres"
	"lendit/internal/domains/booking/model"
	"lendit/shared/constant"
	gDto "lendit/shared/dto"
	gRepo "lendit/shared/repository"
	"lendit/shared/timezone"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateStatus(ctx context.Context, id string, from, to model.Status, modifiedBy string) (bool, error)
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

// UpdateStatus moves a booking into the given status. When `from` is set the
// update only applies while the booking still holds that status, and the
// return value reports whether this writer won the transition. The filter
// argument is aliased so it cannot collide with the updated status column.
func (r *repositoryImpl) UpdateStatus(ctx context.Context, id string, from, to model.Status, modifiedBy string) (bool, error) {
	filters := []any{
		gDto.Filter{Field: model.FieldID, Value: id, Operator: gDto.FilterOperatorEq, Table: model.TableName},
	}

	if from != "" {
		filters = append(filters, gDto.Filter{
			ArgName:  "status_from",
			Field:    model.FieldStatus,
			Value:    string(from),
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	mod := map[string]any{
		model.FieldStatus:        string(to),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: modifiedBy,
	}

	affected, err := r.UpdateReturningCount(ctx, mod, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  filters,
	})
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}
