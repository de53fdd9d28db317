package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/openhaul/loadboard/db"
	"github.com/openhaul/loadboard/db/migrations"
	"github.com/openhaul/loadboard/response"
)

type AdminHandler struct{}

func NewAdminHandler() *AdminHandler {
	return &AdminHandler{}
}

// GetSchemaStatus godoc
// @Summary Applied schema revisions
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.SchemaStatusResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /admin/schema [get]
func (h *AdminHandler) GetSchemaStatus(c *gin.Context) {
	sqlDB, err := db.DB.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	records, err := db.MigrationRecords(sqlDB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	head, err := migrations.Head()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	resp := response.SchemaStatusResponse{Head: head}
	for _, r := range records {
		resp.Applied = append(resp.Applied, response.SchemaRevision{
			Revision:  r.Id,
			AppliedAt: r.AppliedAt.UTC().Format(time.RFC3339),
		})
	}
	resp.UpToDate = len(resp.Applied) > 0 && resp.Applied[len(resp.Applied)-1].Revision == head

	c.JSON(http.StatusOK, resp)
}
