package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openhaul/loadboard/response"
	"github.com/openhaul/loadboard/services"
	"github.com/openhaul/loadboard/utils"
)

type DocumentHandler struct {
	svc *services.DocumentService
}

func NewDocumentHandler(svc *services.DocumentService) *DocumentHandler {
	return &DocumentHandler{svc: svc}
}

func documentErrStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrDocumentNotFound), errors.Is(err, services.ErrLoadNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// UploadDocument godoc
// @Summary Attach a document to a load
// @Tags documents
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Load ID"
// @Param file formData file true "Document file"
// @Success 201 {object} response.DocumentResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /loads/{id}/documents [post]
func (h *DocumentHandler) UploadDocument(c *gin.Context) {
	loadID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid load id"})
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	doc, err := h.svc.AttachDocument(c.Request.Context(), loadID, userID, fileHeader.Filename, contentType, file, fileHeader.Size)
	if err != nil {
		c.JSON(documentErrStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.DocumentResponse{Message: "Document uploaded", Document: doc})
}

// ListDocuments godoc
// @Summary List documents attached to a load
// @Tags documents
// @Security BearerAuth
// @Produce json
// @Param id path int true "Load ID"
// @Success 200 {array} models.LoadDocument
// @Failure 404 {object} response.ErrorResponse
// @Router /loads/{id}/documents [get]
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	loadID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid load id"})
		return
	}

	docs, err := h.svc.ListDocuments(loadID)
	if err != nil {
		c.JSON(documentErrStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, docs)
}

// DownloadDocument godoc
// @Summary Redirect to a presigned document download
// @Tags documents
// @Security BearerAuth
// @Param id path int true "Document ID"
// @Success 307
// @Failure 404 {object} response.ErrorResponse
// @Router /documents/{id}/download [get]
func (h *DocumentHandler) DownloadDocument(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid document id"})
		return
	}

	u, err := h.svc.PresignDocument(c.Request.Context(), id)
	if err != nil {
		c.JSON(documentErrStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, u.String())
}

// DeleteDocument godoc
// @Summary Delete a document
// @Tags documents
// @Security BearerAuth
// @Param id path int true "Document ID"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /documents/{id} [delete]
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid document id"})
		return
	}

	if err := h.svc.DeleteDocument(c.Request.Context(), id); err != nil {
		c.JSON(documentErrStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Document deleted"})
}
