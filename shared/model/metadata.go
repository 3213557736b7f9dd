package model

import "time"

type Metadata struct {
	CreatedAt time.Time `db:"created_at"`
}
