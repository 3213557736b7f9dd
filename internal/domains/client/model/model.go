package model

import (
	"cowork/shared/model"
	"strings"
)

const (
	TableName  = "clients"
	EntityName = "client"

	FieldID        = "id"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
)

type Client struct {
	ID        int64  `db:"id"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	model.Metadata
}

// FullName is the "first last" display name shown on reservations.
func (c Client) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}
