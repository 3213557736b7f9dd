package model

import (
	clientModel "cowork/internal/domains/client/model"
	roomModel "cowork/internal/domains/room/model"
	"cowork/shared/constant"
	"cowork/shared/model"
	"fmt"
	"strings"
	"time"
)

const (
	TableName  = "room_reservations"
	EntityName = "reservation"

	FieldFolio     = "folio"
	FieldClientID  = "client_id"
	FieldRoomID    = "room_id"
	FieldDate      = "reservation_date"
	FieldShift     = "shift"
	FieldEventName = "event_name"
)

type Shift string

const (
	ShiftMorning   Shift = "morning"
	ShiftAfternoon Shift = "afternoon"
	ShiftEvening   Shift = "evening"
)

// Shifts lists every shift in daily order.
var Shifts = []Shift{ShiftMorning, ShiftAfternoon, ShiftEvening}

func (s Shift) IsValid() bool {
	return s.Order() >= 0
}

// Order is the position of s within the day, or -1 for an unknown shift.
func (s Shift) Order() int {
	switch s {
	case ShiftMorning:
		return 0
	case ShiftAfternoon:
		return 1
	case ShiftEvening:
		return 2
	default:
		return -1
	}
}

// ShiftOrderExpression sorts rows by shift in daily order.
var ShiftOrderExpression = fmt.Sprintf(
	"CASE %[1]s.%[2]s WHEN '%[3]s' THEN 0 WHEN '%[4]s' THEN 1 WHEN '%[5]s' THEN 2 END",
	TableName, FieldShift, ShiftMorning, ShiftAfternoon, ShiftEvening,
)

type Reservation struct {
	Folio     int64     `db:"folio"`
	ClientID  int64     `db:"client_id"`
	RoomID    int64     `db:"room_id"`
	Date      time.Time `db:"reservation_date"`
	Shift     Shift     `db:"shift"`
	EventName string    `db:"event_name"`
	model.Metadata
}

// SlotKey identifies the (room, date, shift) slot a reservation occupies.
func (r Reservation) SlotKey() string {
	return fmt.Sprintf("%s:%d:%s:%s", roomModel.EntityName, r.RoomID, r.Date.Format(constant.StorageDateLayout), r.Shift)
}

// ReservationDetail is a reservation joined with its client and room display data.
type ReservationDetail struct {
	Reservation
	ClientFirstName string `column:"first_name" db:"client_first_name" table:"clients"`
	ClientLastName  string `column:"last_name"  db:"client_last_name"  table:"clients"`
	RoomName        string `column:"name"       db:"room_name"         table:"rooms"`
}

func (ReservationDetail) GetJoinQuery() string {
	return fmt.Sprintf(
		"JOIN %[1]s ON %[1]s.%[2]s = %[3]s.%[4]s JOIN %[5]s ON %[5]s.%[6]s = %[3]s.%[7]s",
		clientModel.TableName, clientModel.FieldID, TableName, FieldClientID,
		roomModel.TableName, roomModel.FieldID, FieldRoomID,
	)
}

func (d ReservationDetail) ClientName() string {
	return strings.TrimSpace(d.ClientFirstName + " " + d.ClientLastName)
}
