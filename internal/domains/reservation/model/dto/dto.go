package dto

import (
	"cowork/internal/domains/reservation/model"
	"cowork/shared/constant"
	gDto "cowork/shared/dto"
	"time"
)

type ValidateDateRequest struct {
	Date             string `json:"date"              validate:"required"`
	AcceptSubstitute bool   `json:"accept_substitute"`
}

type ValidateDateResponse struct {
	Date        string `json:"date"`
	Weekday     string `json:"weekday"`
	Substituted bool   `json:"substituted"`
}

type CreateReservationRequest struct {
	ClientID         int64       `json:"client_id"         validate:"gt=0"`
	RoomID           int64       `json:"room_id"           validate:"gt=0"`
	Date             string      `json:"date"              validate:"required"`
	Shift            model.Shift `json:"shift"             validate:"required,enum"`
	EventName        string      `json:"event_name"        validate:"max=200"`
	AcceptSubstitute bool        `json:"accept_substitute"`
}

type UpdateEventNameRequest struct {
	EventName string `json:"event_name" validate:"max=200"`
	Start     string `json:"start"`
	End       string `json:"end"`
}

type ReservationResponse struct {
	Folio      int64  `json:"folio"`
	ClientID   int64  `json:"client_id"`
	ClientName string `json:"client_name,omitempty"`
	RoomID     int64  `json:"room_id"`
	RoomName   string `json:"room_name,omitempty"`
	Date       string `json:"date"`
	Shift      string `json:"shift"`
	EventName  string `json:"event_name"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(mod model.Reservation) {
	r.Folio = mod.Folio
	r.ClientID = mod.ClientID
	r.RoomID = mod.RoomID
	r.Date = mod.Date.Format(constant.InputDateLayout)
	r.Shift = string(mod.Shift)
	r.EventName = mod.EventName
	r.Metadata.FromModel(mod.Metadata)
}

func (r *ReservationResponse) FromDetail(detail model.ReservationDetail) {
	r.FromModel(detail.Reservation)
	r.ClientName = detail.ClientName()
	r.RoomName = detail.RoomName
}

func FromDetails(details []model.ReservationDetail) []ReservationResponse {
	res := make([]ReservationResponse, len(details))
	for i, detail := range details {
		res[i].FromDetail(detail)
	}

	return res
}

type FreeShiftsResponse struct {
	RoomID     int64         `json:"room_id"`
	Date       string        `json:"date"`
	FreeShifts []model.Shift `json:"free_shifts"`
}

type RoomAvailability struct {
	RoomID     int64         `json:"room_id"`
	RoomName   string        `json:"room_name"`
	Capacity   int           `json:"capacity"`
	FreeShifts []model.Shift `json:"free_shifts"`
}

type AvailabilityResponse struct {
	Date  string             `json:"date"`
	Rooms []RoomAvailability `json:"rooms"`
}

// ReportRow is one reservation in an exported day report.
type ReportRow struct {
	Folio     int64  `json:"folio"`
	Client    string `json:"client"`
	Room      string `json:"room"`
	Shift     string `json:"shift"`
	EventName string `json:"event_name"`
}

type Report struct {
	Date         string      `json:"date"`
	Reservations []ReportRow `json:"reservations"`
}

func (r *Report) FromDetails(date time.Time, details []model.ReservationDetail) {
	r.Date = date.Format(constant.InputDateLayout)

	r.Reservations = make([]ReportRow, len(details))
	for i, detail := range details {
		r.Reservations[i] = ReportRow{
			Folio:     detail.Folio,
			Client:    detail.ClientName(),
			Room:      detail.RoomName,
			Shift:     string(detail.Shift),
			EventName: detail.EventName,
		}
	}
}

type ExportResponse struct {
	URL   string `json:"url"`
	Count int    `json:"count"`
}

// ReservationEvent is the payload published after a reservation is created or renamed.
type ReservationEvent struct {
	EventID    string    `json:"event_id"`
	Folio      int64     `json:"folio"`
	RoomID     int64     `json:"room_id"`
	ClientID   int64     `json:"client_id"`
	Date       string    `json:"date"`
	Shift      string    `json:"shift"`
	EventName  string    `json:"event_name"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (e *ReservationEvent) FromModel(eventID string, mod model.Reservation, occurredAt time.Time) {
	e.EventID = eventID
	e.Folio = mod.Folio
	e.RoomID = mod.RoomID
	e.ClientID = mod.ClientID
	e.Date = mod.Date.Format(constant.StorageDateLayout)
	e.Shift = string(mod.Shift)
	e.EventName = mod.EventName
	e.OccurredAt = occurredAt
}
