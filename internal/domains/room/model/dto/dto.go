package dto

import (
	"cowork/internal/domains/room/model"
	"cowork/shared"
	gDto "cowork/shared/dto"
	gModel "cowork/shared/model"
	"cowork/shared/timezone"
	"strings"
)

type CreateRoomRequest struct {
	Name     string `json:"name"     validate:"required,alphaspace,max=100"`
	Capacity int    `json:"capacity" validate:"gt=0"`
}

func (c *CreateRoomRequest) ToModel() model.Room {
	return model.Room{
		Name:     strings.TrimSpace(c.Name),
		Capacity: c.Capacity,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
		},
	}
}

type RoomResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.Capacity = model.Capacity
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
