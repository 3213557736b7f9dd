package model

import "cowork/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID       = "id"
	FieldName     = "name"
	FieldCapacity = "capacity"
)

type Room struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`
	Capacity int    `db:"capacity"`
	model.Metadata
}
