package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openhaul/loadboard/dto"
	"github.com/openhaul/loadboard/response"
	"github.com/openhaul/loadboard/services"
	"github.com/openhaul/loadboard/utils"
)

type LoadHandler struct {
	svc *services.LoadService
}

func NewLoadHandler(svc *services.LoadService) *LoadHandler {
	return &LoadHandler{svc: svc}
}

func loadErrStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrLoadNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrLoadAlreadyBooked), errors.Is(err, services.ErrLoadNotBooked):
		return http.StatusConflict
	case errors.Is(err, services.ErrNotLoadOwner):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// ListLoads godoc
// @Summary List loads on the board
// @Tags loads
// @Security BearerAuth
// @Produce json
// @Param available query bool false "Only unbooked loads"
// @Param equipment query string false "Equipment type filter"
// @Success 200 {array} models.Load
// @Failure 500 {object} response.ErrorResponse
// @Router /loads [get]
func (h *LoadHandler) ListLoads(c *gin.Context) {
	var query dto.ListLoadsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid query"})
		return
	}

	loads, err := h.svc.ListLoads(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, loads)
}

// GetLoadByID godoc
// @Summary Get one load
// @Tags loads
// @Security BearerAuth
// @Produce json
// @Param id path int true "Load ID"
// @Success 200 {object} models.Load
// @Failure 404 {object} response.ErrorResponse
// @Router /loads/{id} [get]
func (h *LoadHandler) GetLoadByID(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid load id"})
		return
	}

	load, err := h.svc.GetLoad(id)
	if err != nil {
		c.JSON(loadErrStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, load)
}

// PostLoad godoc
// @Summary Post a load to the board
// @Tags loads
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body dto.CreateLoadDTO true "Load details"
// @Success 201 {object} response.LoadResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /loads [post]
func (h *LoadHandler) PostLoad(c *gin.Context) {
	var input dto.CreateLoadDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	load, err := h.svc.PostLoad(c, userID, input)
	if err != nil {
		c.JSON(loadErrStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.LoadResponse{Message: "Load posted", Load: load})
}

// UpdateLoad godoc
// @Summary Update an unbooked load
// @Tags loads
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Load ID"
// @Param input body dto.UpdateLoadDTO true "Fields to change"
// @Success 200 {object} response.LoadResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /loads/{id} [put]
func (h *LoadHandler) UpdateLoad(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid load id"})
		return
	}

	var input dto.UpdateLoadDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	load, err := h.svc.UpdateLoad(c, id, claims, input)
	if err != nil {
		c.JSON(loadErrStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.LoadResponse{Message: "Load updated", Load: load})
}

// BookLoad godoc
// @Summary Book an available load
// @Tags loads
// @Security BearerAuth
// @Produce json
// @Param id path int true "Load ID"
// @Success 200 {object} response.LoadResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Load is already booked"
// @Router /loads/{id}/book [post]
func (h *LoadHandler) BookLoad(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid load id"})
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	load, err := h.svc.BookLoad(c, id, userID)
	if err != nil {
		c.JSON(loadErrStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.LoadResponse{Message: "Load booked", Load: load})
}

// ReleaseLoad godoc
// @Summary Put a booked load back on the board
// @Tags loads
// @Security BearerAuth
// @Produce json
// @Param id path int true "Load ID"
// @Success 200 {object} response.LoadResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /loads/{id}/release [post]
func (h *LoadHandler) ReleaseLoad(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid load id"})
		return
	}

	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	load, err := h.svc.ReleaseLoad(c, id, claims)
	if err != nil {
		c.JSON(loadErrStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.LoadResponse{Message: "Load released", Load: load})
}

// DeleteLoad godoc
// @Summary Delete an unbooked load
// @Tags loads
// @Security BearerAuth
// @Produce json
// @Param id path int true "Load ID"
// @Success 200 {object} response.MessageResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /loads/{id} [delete]
func (h *LoadHandler) DeleteLoad(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid load id"})
		return
	}

	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.svc.DeleteLoad(c, id, claims); err != nil {
		c.JSON(loadErrStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Load deleted"})
}
