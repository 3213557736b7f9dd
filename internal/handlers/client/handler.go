package client

import (
	"cowork/infras/otel"
	"cowork/internal/domains/client/model/dto"
	"cowork/internal/domains/client/service"
	"cowork/shared/constant"
	gDto "cowork/shared/dto"
	"cowork/shared/validator"
	"cowork/transport/http/request"
	"cowork/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Client
	otel    otel.Otel
}

func New(service service.Client, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/clients", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateClient)
		routerGroup.Get("/", handler.GetClients)
		routerGroup.Get("/{id}", handler.GetClientByID)
	})
}

// CreateClient registers a new client.
// @Summary Register a client
// @Description First and last name accept letters and spaces only.
// @Tags Client
// @Accept json
// @Produce json
// @Param request body dto.CreateClientRequest true "Client"
// @Success 201 {object} response.Data[dto.ClientResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clients [post]
func (handler *Handler) CreateClient(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateClient")
	defer scope.End()

	req := dto.CreateClientRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	client, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create client")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Client created successfully")

	response.WithJSON(w, http.StatusCreated, client)
}

// GetClients lists clients ordered by last name.
// @Summary Get all clients
// @Tags Client
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetClientsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/clients [get]
func (handler *Handler) GetClients(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetClients")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	clients, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get clients")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, clients)
}

// GetClientByID retrieves a client by its ID.
// @Summary Get a client by ID
// @Tags Client
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {object} response.Data[dto.ClientResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clients/{id} [get]
func (handler *Handler) GetClientByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetClientByID")
	defer scope.End()

	id, err := request.IDParam(r, constant.RequestParamID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	client, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to get client by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, client)
}
