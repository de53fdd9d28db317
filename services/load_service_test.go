package services

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/openhaul/loadboard/dto"
	"github.com/openhaul/loadboard/events"
	"github.com/openhaul/loadboard/models"
	"github.com/openhaul/loadboard/repositories"
	"github.com/openhaul/loadboard/repositories/mock_repositories"
	"github.com/openhaul/loadboard/types"
	"github.com/openhaul/loadboard/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLoadServiceMocks(t *testing.T) (*LoadService, *mock_repositories.MockLoadRepo, *events.Hub, *gin.Context) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockLoad := mock_repositories.NewMockLoadRepo(ctrl)
	mockAudit := mock_repositories.NewMockAuditRepo(ctrl)
	repos := &repositories.Repos{
		Load:  mockLoad,
		Audit: mockAudit,
	}

	oldLog := utils.LogAuditWithConsole
	utils.LogAuditWithConsole = func(c *gin.Context, action, resourceType, resourceID string, oldData, newData interface{}, msg string, repos repositories.AuditRepo) {
	}
	t.Cleanup(func() { utils.LogAuditWithConsole = oldLog })

	hub := events.NewHub()
	svc := NewLoadService(repos, hub)

	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	return svc, mockLoad, hub, c
}

func TestPostLoad_Success(t *testing.T) {
	svc, mockLoad, hub, c := setupLoadServiceMocks(t)

	sub := hub.Subscribe()
	t.Cleanup(func() { hub.Unsubscribe(sub) })

	mockLoad.EXPECT().CreateLoad(gomock.Any()).DoAndReturn(func(l *models.Load) error {
		l.LID = 1
		return nil
	})

	load, err := svc.PostLoad(c, 5, dto.CreateLoadDTO{
		Origin:      "Chicago, IL",
		Destination: "Dallas, TX",
		Equipment:   string(models.EquipmentDryVan),
		RateCents:   185000,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(5), load.ShipperID)
	assert.NotEmpty(t, load.Reference)
	assert.False(t, load.Booked)

	select {
	case msg := <-sub:
		assert.Contains(t, string(msg), events.LoadPosted)
	default:
		t.Fatal("expected a board event")
	}
}

func TestBookLoad_Success(t *testing.T) {
	svc, mockLoad, hub, c := setupLoadServiceMocks(t)

	sub := hub.Subscribe()
	t.Cleanup(func() { hub.Unsubscribe(sub) })

	carrierID := uint(7)
	booked := models.Load{LID: 1, Reference: "ref-1", Booked: true, CarrierID: &carrierID}

	mockLoad.EXPECT().MarkBooked(uint(1), carrierID).Return(true, nil)
	mockLoad.EXPECT().GetLoadByID(uint(1)).Return(booked, nil)

	load, err := svc.BookLoad(c, 1, carrierID)
	require.NoError(t, err)
	assert.True(t, load.Booked)
	assert.Equal(t, carrierID, *load.CarrierID)

	select {
	case msg := <-sub:
		assert.Contains(t, string(msg), events.LoadBooked)
	default:
		t.Fatal("expected a board event")
	}
}

func TestBookLoad_AlreadyBooked(t *testing.T) {
	svc, mockLoad, _, c := setupLoadServiceMocks(t)

	mockLoad.EXPECT().MarkBooked(uint(1), uint(7)).Return(false, nil)
	mockLoad.EXPECT().GetLoadByID(uint(1)).Return(models.Load{LID: 1, Booked: true}, nil)

	_, err := svc.BookLoad(c, 1, 7)
	assert.Equal(t, ErrLoadAlreadyBooked, err)
}

func TestBookLoad_NotFound(t *testing.T) {
	svc, mockLoad, _, c := setupLoadServiceMocks(t)

	mockLoad.EXPECT().MarkBooked(uint(9), uint(7)).Return(false, nil)
	mockLoad.EXPECT().GetLoadByID(uint(9)).Return(models.Load{}, assert.AnError)

	_, err := svc.BookLoad(c, 9, 7)
	assert.Equal(t, ErrLoadNotFound, err)
}

func TestUpdateLoad_NotOwner(t *testing.T) {
	svc, mockLoad, _, c := setupLoadServiceMocks(t)

	mockLoad.EXPECT().GetLoadByID(uint(1)).Return(models.Load{LID: 1, ShipperID: 5}, nil)

	actor := &types.Claims{UserID: 2, Role: string(models.UserRoleShipper)}
	_, err := svc.UpdateLoad(c, 1, actor, dto.UpdateLoadDTO{})
	assert.Equal(t, ErrNotLoadOwner, err)
}

func TestUpdateLoad_RejectedWhenBooked(t *testing.T) {
	svc, mockLoad, _, c := setupLoadServiceMocks(t)

	mockLoad.EXPECT().GetLoadByID(uint(1)).Return(models.Load{LID: 1, ShipperID: 5, Booked: true}, nil)

	actor := &types.Claims{UserID: 5, Role: string(models.UserRoleShipper)}
	_, err := svc.UpdateLoad(c, 1, actor, dto.UpdateLoadDTO{})
	assert.Equal(t, ErrLoadAlreadyBooked, err)
}

func TestReleaseLoad_NotBooked(t *testing.T) {
	svc, mockLoad, _, c := setupLoadServiceMocks(t)

	mockLoad.EXPECT().GetLoadByID(uint(1)).Return(models.Load{LID: 1, ShipperID: 5}, nil)

	actor := &types.Claims{UserID: 5, Role: string(models.UserRoleShipper)}
	_, err := svc.ReleaseLoad(c, 1, actor)
	assert.Equal(t, ErrLoadNotBooked, err)
}

func TestDeleteLoad_RejectedWhenBooked(t *testing.T) {
	svc, mockLoad, _, c := setupLoadServiceMocks(t)

	mockLoad.EXPECT().GetLoadByID(uint(1)).Return(models.Load{LID: 1, ShipperID: 5, Booked: true}, nil)

	actor := &types.Claims{UserID: 5, Role: string(models.UserRoleShipper)}
	err := svc.DeleteLoad(c, 1, actor)
	assert.Equal(t, ErrLoadAlreadyBooked, err)
}

func TestDeleteLoad_AdminOverridesOwnership(t *testing.T) {
	svc, mockLoad, _, c := setupLoadServiceMocks(t)

	mockLoad.EXPECT().GetLoadByID(uint(1)).Return(models.Load{LID: 1, ShipperID: 5}, nil)
	mockLoad.EXPECT().DeleteLoad(uint(1)).Return(nil)

	actor := &types.Claims{UserID: 99, Role: string(models.UserRoleAdmin)}
	err := svc.DeleteLoad(c, 1, actor)
	assert.NoError(t, err)
}
