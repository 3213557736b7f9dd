package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"cowork/infras/otel"
	"cowork/infras/postgres"
	"cowork/internal/domains/reservation/model"
	"cowork/shared/constant"
	gDto "cowork/shared/dto"
	gRepo "cowork/shared/repository"
	"time"

	"github.com/jmoiron/sqlx"
)

type Reservation interface {
	// InsertExclusive stores reservation unless its slot is already taken and returns the new folio.
	InsertExclusive(ctx context.Context, reservation model.Reservation) (int64, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Reservation, error)
	Update(ctx context.Context, mod map[string]any, filter gDto.FilterGroup) (int64, error)
	GetDetail(ctx context.Context, filter gDto.FilterGroup) (model.ReservationDetail, error)
	GetDetails(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.ReservationDetail, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	detail gRepo.Repository[model.ReservationDetail]
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldFolio, db, otel),
		detail:     gRepo.NewRepository[model.ReservationDetail](model.EntityName, model.TableName, model.FieldFolio, db, otel),
	}
}

// InsertExclusive serializes writers of the same slot with an advisory lock, re-checks the slot and
// inserts in one transaction. A lost race on the unique constraint is reported as ErrShiftOccupied.
func (r *repositoryImpl) InsertExclusive(ctx context.Context, reservation model.Reservation) (folio int64, err error) {
	err = r.WithTx(ctx, func(sqltx *sqlx.Tx) error {
		if err := r.LockTx(ctx, sqltx, reservation.SlotKey()); err != nil {
			return err
		}

		taken, err := r.ExistTx(ctx, sqltx, SlotFilter(reservation.RoomID, reservation.Date, reservation.Shift))
		if err != nil {
			return err
		}

		if taken {
			return model.ErrShiftOccupied
		}

		folio, err = r.InsertTx(ctx, sqltx, reservation)

		return err
	})

	if gRepo.IsUniqueViolation(err) {
		return 0, model.ErrShiftOccupied
	}

	if err != nil {
		return 0, err
	}

	return folio, nil
}

func (r *repositoryImpl) GetDetail(ctx context.Context, filter gDto.FilterGroup) (model.ReservationDetail, error) {
	return r.detail.Get(ctx, filter)
}

func (r *repositoryImpl) GetDetails(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.ReservationDetail, error) {
	return r.detail.GetAll(ctx, params, filter)
}

func dateValue(date time.Time) string {
	return date.Format(constant.StorageDateLayout)
}

// SlotFilter matches the reservation holding the (room, date, shift) slot.
func SlotFilter(roomID int64, date time.Time, shift model.Shift) gDto.FilterGroup {
	return gDto.And(
		gDto.Filter{Field: model.FieldRoomID, Value: roomID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		gDto.Filter{Field: model.FieldDate, Value: dateValue(date), Operator: gDto.FilterOperatorEq, Table: model.TableName},
		gDto.Filter{Field: model.FieldShift, Value: string(shift), Operator: gDto.FilterOperatorEq, Table: model.TableName},
	)
}

// RoomDateFilter matches every reservation of a room on date.
func RoomDateFilter(roomID int64, date time.Time) gDto.FilterGroup {
	return gDto.And(
		gDto.Filter{Field: model.FieldRoomID, Value: roomID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		gDto.Filter{Field: model.FieldDate, Value: dateValue(date), Operator: gDto.FilterOperatorEq, Table: model.TableName},
	)
}

func DateFilter(date time.Time) gDto.FilterGroup {
	return gDto.And(
		gDto.Filter{Field: model.FieldDate, Value: dateValue(date), Operator: gDto.FilterOperatorEq, Table: model.TableName},
	)
}

// DateRangeFilter matches reservations from start to end, both inclusive.
func DateRangeFilter(start, end time.Time) gDto.FilterGroup {
	return gDto.And(
		gDto.Filter{
			Field:    model.FieldDate,
			Value:    gDto.Between(dateValue(start), dateValue(end)),
			Operator: gDto.FilterOperatorBetween,
			Table:    model.TableName,
		},
	)
}

// FolioFilter matches one folio, optionally restricted to a date range when both bounds are set.
func FolioFilter(folio int64, start, end time.Time) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{Field: model.FieldFolio, Value: folio, Operator: gDto.FilterOperatorEq, Table: model.TableName},
	}

	if !start.IsZero() && !end.IsZero() {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldDate,
			Value:    gDto.Between(dateValue(start), dateValue(end)),
			Operator: gDto.FilterOperatorBetween,
			Table:    model.TableName,
		})
	}

	return gDto.And(filters...)
}
