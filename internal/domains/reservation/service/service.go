package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"cowork/config"
	"cowork/infras/kafka"
	"cowork/infras/otel"
	"cowork/infras/s3"
	clientModel "cowork/internal/domains/client/model"
	clientRepository "cowork/internal/domains/client/repository"
	"cowork/internal/domains/reservation/model"
	"cowork/internal/domains/reservation/model/dto"
	"cowork/internal/domains/reservation/policy"
	"cowork/internal/domains/reservation/repository"
	roomModel "cowork/internal/domains/room/model"
	roomRepository "cowork/internal/domains/room/repository"
	"cowork/shared"
	"cowork/shared/constant"
	gDto "cowork/shared/dto"
	"cowork/shared/timezone"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	reportDirectory = "reports"

	dateOrdering  = "room_reservations.reservation_date, room_reservations.folio"
	roomsOrdering = "rooms.id"
)

var shiftOrdering = model.ShiftOrderExpression + ", room_reservations.folio"

type Reservation interface {
	ValidateDate(ctx context.Context, req dto.ValidateDateRequest) (dto.ValidateDateResponse, error)
	ListFreeShifts(ctx context.Context, roomID int64, date string) (dto.FreeShiftsResponse, error)
	IsFree(ctx context.Context, roomID int64, date time.Time, shift model.Shift) (bool, error)
	ListAvailability(ctx context.Context, date string) (dto.AvailabilityResponse, error)
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	UpdateEventName(ctx context.Context, folio int64, req dto.UpdateEventNameRequest) (dto.ReservationResponse, error)
	FindByDate(ctx context.Context, date string) ([]dto.ReservationResponse, error)
	FindByDateRange(ctx context.Context, start, end string) ([]dto.ReservationResponse, error)
	Export(ctx context.Context, date string) (dto.ExportResponse, error)
}

type serviceImpl struct {
	repo       repository.Reservation
	clientRepo clientRepository.Client
	roomRepo   roomRepository.Room
	validator  policy.Validator
	clock      timezone.Clock
	kafka      kafka.Client
	s3         s3.S3
	cfg        *config.Config
	otel       otel.Otel
}

func New(
	repo repository.Reservation,
	clientRepo clientRepository.Client,
	roomRepo roomRepository.Room,
	clock timezone.Clock,
	kafka kafka.Client,
	s3 s3.S3,
	cfg *config.Config,
	otel otel.Otel,
) Reservation {
	return &serviceImpl{
		repo:       repo,
		clientRepo: clientRepo,
		roomRepo:   roomRepo,
		validator:  policy.FromConfig(cfg),
		clock:      clock,
		kafka:      kafka,
		s3:         s3,
		cfg:        cfg,
		otel:       otel,
	}
}

func confirmation(accept bool) policy.Confirm {
	if accept {
		return policy.Accept
	}

	return policy.Decline
}

func (s *serviceImpl) ValidateDate(ctx context.Context, req dto.ValidateDateRequest) (res dto.ValidateDateResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.ValidateDate")
	defer scope.End()
	defer scope.TraceIfError(err)

	decision, err := s.validator.Decide(req.Date, s.clock.Now(), confirmation(req.AcceptSubstitute))
	if err != nil {
		return res, err
	}

	res.Date = policy.FormatDate(decision.Date)
	res.Weekday = decision.Date.Weekday().String()
	res.Substituted = decision.Substituted

	return res, nil
}

// parseDay reads a MM-DD-YYYY date, an empty value meaning today. No booking policy is applied.
func (s *serviceImpl) parseDay(raw string) (time.Time, error) {
	if strings.TrimSpace(raw) == constant.Empty {
		return policy.Today(s.clock.Now()), nil
	}

	return policy.ParseDate(raw)
}

func freeShifts(occupied map[model.Shift]bool) []model.Shift {
	free := []model.Shift{}

	for _, shift := range model.Shifts {
		if !occupied[shift] {
			free = append(free, shift)
		}
	}

	return free
}

func (s *serviceImpl) ListFreeShifts(ctx context.Context, roomID int64, date string) (res dto.FreeShiftsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.ListFreeShifts")
	defer scope.End()
	defer scope.TraceIfError(err)

	day, err := policy.ParseDate(date)
	if err != nil {
		return res, err
	}

	scope.SetAttributes(map[string]any{
		constant.OtelRoomAttributeKey: roomID,
		constant.OtelDateAttributeKey: day,
	})

	exist, err := s.roomRepo.Exist(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Int64("roomID", roomID).Msg("failed to check room")

		return res, fmt.Errorf("failed to check room: %w", err)
	}

	if !exist {
		return res, model.ErrUnknownRoom
	}

	reservations, err := s.repo.GetAll(ctx, gDto.QueryParams{}, repository.RoomDateFilter(roomID, day), model.FieldShift)
	if err != nil {
		log.Error().Err(err).Int64("roomID", roomID).Msg("failed to get room reservations")

		return res, fmt.Errorf("failed to get room reservations: %w", err)
	}

	occupied := map[model.Shift]bool{}
	for _, reservation := range reservations {
		occupied[reservation.Shift] = true
	}

	res.RoomID = roomID
	res.Date = policy.FormatDate(day)
	res.FreeShifts = freeShifts(occupied)

	return res, nil
}

// IsFree always reads the store. Create repeats the same check inside its transaction.
func (s *serviceImpl) IsFree(ctx context.Context, roomID int64, date time.Time, shift model.Shift) (free bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.IsFree")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !shift.IsValid() {
		return false, model.ErrInvalidShift
	}

	taken, err := s.repo.Exist(ctx, repository.SlotFilter(roomID, date, shift))
	if err != nil {
		log.Error().Err(err).Int64("roomID", roomID).Msg("failed to check slot")

		return false, fmt.Errorf("failed to check slot: %w", err)
	}

	return !taken, nil
}

func (s *serviceImpl) ListAvailability(ctx context.Context, date string) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.ListAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	day, err := policy.ParseDate(date)
	if err != nil {
		return res, err
	}

	rooms, err := s.roomRepo.GetAll(ctx, gDto.Ordered(roomsOrdering, gDto.SortDirAsc), gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	reservations, err := s.repo.GetAll(ctx, gDto.QueryParams{}, repository.DateFilter(day), model.FieldRoomID, model.FieldShift)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	occupied := map[int64]map[model.Shift]bool{}
	for _, reservation := range reservations {
		if occupied[reservation.RoomID] == nil {
			occupied[reservation.RoomID] = map[model.Shift]bool{}
		}

		occupied[reservation.RoomID][reservation.Shift] = true
	}

	res.Date = policy.FormatDate(day)
	res.Rooms = []dto.RoomAvailability{}

	for _, room := range rooms {
		free := freeShifts(occupied[room.ID])
		if len(free) == 0 {
			continue
		}

		res.Rooms = append(res.Rooms, dto.RoomAvailability{
			RoomID:     room.ID,
			RoomName:   room.Name,
			Capacity:   room.Capacity,
			FreeShifts: free,
		})
	}

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !req.Shift.IsValid() {
		return res, model.ErrInvalidShift
	}

	date, err := s.validator.Validate(req.Date, s.clock.Now(), confirmation(req.AcceptSubstitute))
	if err != nil {
		return res, err
	}

	scope.SetAttributes(map[string]any{
		constant.OtelRoomAttributeKey:  req.RoomID,
		constant.OtelDateAttributeKey:  date,
		constant.OtelShiftAttributeKey: string(req.Shift),
	})

	client, err := s.clientRepo.Get(ctx, shared.FilterByID(req.ClientID, clientModel.FieldID, clientModel.TableName))
	if err != nil {
		log.Error().Err(err).Int64("clientID", req.ClientID).Msg("failed to get client")

		return res, fmt.Errorf("failed to get client: %w", err)
	}

	if client.ID == 0 {
		return res, model.ErrUnknownClient
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Int64("roomID", req.RoomID).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == 0 {
		return res, model.ErrUnknownRoom
	}

	eventName := strings.TrimSpace(req.EventName)
	if eventName == constant.Empty {
		return res, model.ErrBlankEventName
	}

	reservation := model.Reservation{
		ClientID:  client.ID,
		RoomID:    room.ID,
		Date:      date,
		Shift:     req.Shift,
		EventName: eventName,
	}
	reservation.CreatedAt = s.clock.Now()

	reservation.Folio, err = s.repo.InsertExclusive(ctx, reservation)
	if err != nil {
		log.Error().Err(err).Str("slot", reservation.SlotKey()).Msg("failed to insert reservation")

		return res, fmt.Errorf("failed to create reservation: %w", err)
	}

	scope.SetAttribute(constant.OtelFolioAttributeKey, reservation.Folio)

	res.FromDetail(model.ReservationDetail{
		Reservation:     reservation,
		ClientFirstName: client.FirstName,
		ClientLastName:  client.LastName,
		RoomName:        room.Name,
	})

	s.publish(ctx, s.cfg.Kafka.Topics.ReservationCreated, reservation)

	return res, nil
}

// parseRange reads the optional edit range. Both bounds or neither must be given.
func parseRange(start, end string) (from, to time.Time, err error) {
	hasStart := strings.TrimSpace(start) != constant.Empty
	hasEnd := strings.TrimSpace(end) != constant.Empty

	if !hasStart && !hasEnd {
		return from, to, nil
	}

	if hasStart != hasEnd {
		return from, to, model.ErrIncompleteRange
	}

	if from, err = policy.ParseDate(start); err != nil {
		return from, to, err
	}

	if to, err = policy.ParseDate(end); err != nil {
		return from, to, err
	}

	return from, to, nil
}

func (s *serviceImpl) UpdateEventName(ctx context.Context, folio int64, req dto.UpdateEventNameRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.UpdateEventName")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelFolioAttributeKey, folio)

	from, to, err := parseRange(req.Start, req.End)
	if err != nil {
		return res, err
	}

	detail, err := s.repo.GetDetail(ctx, repository.FolioFilter(folio, from, to))
	if err != nil {
		log.Error().Err(err).Int64("folio", folio).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if detail.Folio == 0 {
		return res, model.ErrFolioNotFound
	}

	eventName := strings.TrimSpace(req.EventName)
	if eventName == constant.Empty {
		return res, model.ErrBlankEventName
	}

	if detail.EventName == eventName {
		res.FromDetail(detail)

		return res, nil
	}

	affected, err := s.repo.Update(ctx, map[string]any{model.FieldEventName: eventName}, repository.FolioFilter(folio, time.Time{}, time.Time{}))
	if err != nil {
		log.Error().Err(err).Int64("folio", folio).Msg("failed to update reservation")

		return res, fmt.Errorf("failed to update reservation: %w", err)
	}

	if affected == 0 {
		return res, model.ErrFolioNotFound
	}

	detail.EventName = eventName
	res.FromDetail(detail)

	s.publish(ctx, s.cfg.Kafka.Topics.ReservationRenamed, detail.Reservation)

	return res, nil
}

func (s *serviceImpl) findByDate(ctx context.Context, day time.Time) ([]model.ReservationDetail, error) {
	details, err := s.repo.GetDetails(ctx, gDto.Ordered(shiftOrdering, constant.Empty), repository.DateFilter(day))
	if err != nil {
		log.Error().Err(err).Time("date", day).Msg("failed to get reservations by date")

		return nil, fmt.Errorf("failed to get reservations by date: %w", err)
	}

	return details, nil
}

func (s *serviceImpl) FindByDate(ctx context.Context, date string) (res []dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.FindByDate")
	defer scope.End()
	defer scope.TraceIfError(err)

	day, err := s.parseDay(date)
	if err != nil {
		return nil, err
	}

	details, err := s.findByDate(ctx, day)
	if err != nil {
		return nil, err
	}

	return dto.FromDetails(details), nil
}

func (s *serviceImpl) FindByDateRange(ctx context.Context, start, end string) (res []dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.FindByDateRange")
	defer scope.End()
	defer scope.TraceIfError(err)

	from, err := s.parseDay(start)
	if err != nil {
		return nil, err
	}

	to, err := s.parseDay(end)
	if err != nil {
		return nil, err
	}

	if from.After(to) {
		return []dto.ReservationResponse{}, nil
	}

	details, err := s.repo.GetDetails(ctx, gDto.Ordered(dateOrdering, constant.Empty), repository.DateRangeFilter(from, to))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations by range")

		return nil, fmt.Errorf("failed to get reservations by range: %w", err)
	}

	return dto.FromDetails(details), nil
}

func (s *serviceImpl) Export(ctx context.Context, date string) (res dto.ExportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Export")
	defer scope.End()
	defer scope.TraceIfError(err)

	day, err := s.parseDay(date)
	if err != nil {
		return res, err
	}

	details, err := s.findByDate(ctx, day)
	if err != nil {
		return res, err
	}

	if len(details) == 0 {
		return res, model.ErrNoReservations
	}

	var report dto.Report
	report.FromDetails(day, details)

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return res, fmt.Errorf("failed to marshal report: %w", err)
	}

	fileName := fmt.Sprintf("report_%s.json", policy.FormatDate(day))

	res.URL, err = s.s3.UploadFileBytes(ctx, constant.Empty, reportDirectory, fileName, constant.ContentTypeJSON, data)
	if err != nil {
		log.Error().Err(err).Str("fileName", fileName).Msg("failed to upload report")

		return res, fmt.Errorf("failed to upload report: %w", err)
	}

	res.Count = len(details)

	return res, nil
}

// publish sends a reservation event in the background. Delivery is best effort.
func (s *serviceImpl) publish(ctx context.Context, topic string, reservation model.Reservation) {
	occurredAt := s.clock.Now()

	go func() {
		c := context.WithoutCancel(ctx)

		var event dto.ReservationEvent
		event.FromModel(uuid.NewString(), reservation, occurredAt)

		message := kafka.Message{
			Key:   strconv.FormatInt(reservation.Folio, 10),
			Value: event,
		}

		if err := s.kafka.SendMessages(c, topic, message); err != nil {
			log.Error().Err(err).Str("topic", topic).Int64("folio", reservation.Folio).Msg("failed to publish reservation event")
		}
	}()
}
