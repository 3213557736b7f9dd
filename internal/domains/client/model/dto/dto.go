package dto

import (
	"cowork/internal/domains/client/model"
	"cowork/shared"
	gDto "cowork/shared/dto"
	gModel "cowork/shared/model"
	"cowork/shared/timezone"
	"strings"
)

type CreateClientRequest struct {
	FirstName string `json:"first_name" validate:"required,alphaspace,max=100"`
	LastName  string `json:"last_name"  validate:"required,alphaspace,max=100"`
}

func (c *CreateClientRequest) ToModel() model.Client {
	return model.Client{
		FirstName: strings.TrimSpace(c.FirstName),
		LastName:  strings.TrimSpace(c.LastName),
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
		},
	}
}

type ClientResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
	gDto.Metadata
}

func (r *ClientResponse) FromModel(model model.Client) {
	r.ID = model.ID
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.FullName = model.FullName()
	r.Metadata.FromModel(model.Metadata)
}

type GetClientsResponse struct {
	Clients   []ClientResponse `json:"clients"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetClientsResponse) FromModels(models []model.Client, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Clients = make([]ClientResponse, len(models))
	for i, mod := range models {
		r.Clients[i].FromModel(mod)
	}
}
