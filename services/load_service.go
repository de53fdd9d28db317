package services

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/openhaul/loadboard/dto"
	"github.com/openhaul/loadboard/events"
	"github.com/openhaul/loadboard/models"
	"github.com/openhaul/loadboard/repositories"
	"github.com/openhaul/loadboard/types"
	"github.com/openhaul/loadboard/utils"
)

var (
	ErrLoadNotFound      = errors.New("load not found")
	ErrLoadAlreadyBooked = errors.New("load is already booked")
	ErrLoadNotBooked     = errors.New("load is not booked")
	ErrNotLoadOwner      = errors.New("only the posting shipper may modify this load")
)

type LoadService struct {
	repos *repositories.Repos
	hub   *events.Hub
}

func NewLoadService(repos *repositories.Repos, hub *events.Hub) *LoadService {
	if hub == nil {
		hub = events.Board
	}
	return &LoadService{repos: repos, hub: hub}
}

func (s *LoadService) PostLoad(c *gin.Context, shipperID uint, input dto.CreateLoadDTO) (models.Load, error) {
	load := models.Load{
		Reference:   uuid.NewString(),
		ShipperID:   shipperID,
		Origin:      input.Origin,
		Destination: input.Destination,
		Equipment:   input.Equipment,
		WeightLbs:   input.WeightLbs,
		RateCents:   input.RateCents,
		PickupDate:  input.PickupDate,
	}

	if err := s.repos.Load.CreateLoad(&load); err != nil {
		return models.Load{}, err
	}

	utils.LogAuditWithConsole(c, "create", "load", fmt.Sprintf("l_id=%d", load.LID), nil, load, "", s.repos.Audit)
	s.hub.Publish(events.Event{Type: events.LoadPosted, LoadID: load.LID, Reference: load.Reference, Payload: load})

	return load, nil
}

func (s *LoadService) GetLoad(id uint) (models.Load, error) {
	load, err := s.repos.Load.GetLoadByID(id)
	if err != nil {
		return models.Load{}, ErrLoadNotFound
	}
	return load, nil
}

func (s *LoadService) GetLoadByReference(ref string) (models.Load, error) {
	load, err := s.repos.Load.GetLoadByReference(ref)
	if err != nil {
		return models.Load{}, ErrLoadNotFound
	}
	return load, nil
}

func (s *LoadService) ListLoads(query dto.ListLoadsQuery) ([]models.Load, error) {
	params := repositories.LoadQueryParams{
		AvailableOnly: query.Available,
		Equipment:     query.Equipment,
		Origin:        query.Origin,
		Destination:   query.Destination,
		Limit:         query.Limit,
	}
	if query.Page > 1 && query.Limit > 0 {
		params.Offset = (query.Page - 1) * query.Limit
	}
	return s.repos.Load.ListLoads(params)
}

func (s *LoadService) UpdateLoad(c *gin.Context, id uint, actor *types.Claims, input dto.UpdateLoadDTO) (models.Load, error) {
	load, err := s.repos.Load.GetLoadByID(id)
	if err != nil {
		return models.Load{}, ErrLoadNotFound
	}

	if load.ShipperID != actor.UserID && actor.Role != string(models.UserRoleAdmin) {
		return models.Load{}, ErrNotLoadOwner
	}
	if load.Booked {
		return models.Load{}, ErrLoadAlreadyBooked
	}

	oldLoad := load

	if input.Origin != nil {
		load.Origin = *input.Origin
	}
	if input.Destination != nil {
		load.Destination = *input.Destination
	}
	if input.Equipment != nil {
		load.Equipment = *input.Equipment
	}
	if input.WeightLbs != nil {
		load.WeightLbs = *input.WeightLbs
	}
	if input.RateCents != nil {
		load.RateCents = *input.RateCents
	}
	if input.PickupDate != nil {
		load.PickupDate = *input.PickupDate
	}

	if err := s.repos.Load.UpdateLoad(&load); err != nil {
		return models.Load{}, err
	}

	utils.LogAuditWithConsole(c, "update", "load", fmt.Sprintf("l_id=%d", load.LID), oldLoad, load, "", s.repos.Audit)
	return load, nil
}

// BookLoad assigns the load to the carrier. The booked flag flips in a
// single guarded update, so of two concurrent bookings exactly one
// wins and the other gets ErrLoadAlreadyBooked.
func (s *LoadService) BookLoad(c *gin.Context, id uint, carrierID uint) (models.Load, error) {
	ok, err := s.repos.Load.MarkBooked(id, carrierID)
	if err != nil {
		return models.Load{}, err
	}
	if !ok {
		if _, err := s.repos.Load.GetLoadByID(id); err != nil {
			return models.Load{}, ErrLoadNotFound
		}
		return models.Load{}, ErrLoadAlreadyBooked
	}

	load, err := s.repos.Load.GetLoadByID(id)
	if err != nil {
		return models.Load{}, err
	}

	utils.LogAuditWithConsole(c, "book", "load", fmt.Sprintf("l_id=%d", load.LID), nil, load, "", s.repos.Audit)
	s.hub.Publish(events.Event{Type: events.LoadBooked, LoadID: load.LID, Reference: load.Reference, Payload: load})

	return load, nil
}

func (s *LoadService) ReleaseLoad(c *gin.Context, id uint, actor *types.Claims) (models.Load, error) {
	load, err := s.repos.Load.GetLoadByID(id)
	if err != nil {
		return models.Load{}, ErrLoadNotFound
	}
	if !load.Booked {
		return models.Load{}, ErrLoadNotBooked
	}

	holder := load.CarrierID != nil && *load.CarrierID == actor.UserID
	owner := load.ShipperID == actor.UserID
	if !holder && !owner && actor.Role != string(models.UserRoleAdmin) {
		return models.Load{}, ErrNotLoadOwner
	}

	ok, err := s.repos.Load.MarkReleased(id)
	if err != nil {
		return models.Load{}, err
	}
	if !ok {
		return models.Load{}, ErrLoadNotBooked
	}

	load, err = s.repos.Load.GetLoadByID(id)
	if err != nil {
		return models.Load{}, err
	}

	utils.LogAuditWithConsole(c, "release", "load", fmt.Sprintf("l_id=%d", load.LID), nil, load, "", s.repos.Audit)
	s.hub.Publish(events.Event{Type: events.LoadReleased, LoadID: load.LID, Reference: load.Reference, Payload: load})

	return load, nil
}

func (s *LoadService) DeleteLoad(c *gin.Context, id uint, actor *types.Claims) error {
	load, err := s.repos.Load.GetLoadByID(id)
	if err != nil {
		return ErrLoadNotFound
	}

	if load.ShipperID != actor.UserID && actor.Role != string(models.UserRoleAdmin) {
		return ErrNotLoadOwner
	}
	if load.Booked {
		return ErrLoadAlreadyBooked
	}

	if err := s.repos.Load.DeleteLoad(id); err != nil {
		return err
	}

	utils.LogAuditWithConsole(c, "delete", "load", fmt.Sprintf("l_id=%d", load.LID), load, nil, "", s.repos.Audit)
	s.hub.Publish(events.Event{Type: events.LoadRemoved, LoadID: load.LID, Reference: load.Reference})

	return nil
}
