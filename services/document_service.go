package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/openhaul/loadboard/models"
	"github.com/openhaul/loadboard/repositories"
	"github.com/openhaul/loadboard/utils"
)

var ErrDocumentNotFound = errors.New("document not found")

const presignExpiry = 15 * time.Minute

type DocumentService struct {
	repos *repositories.Repos
}

func NewDocumentService(repos *repositories.Repos) *DocumentService {
	return &DocumentService{repos: repos}
}

// AttachDocument stores the file in the document bucket and records it
// against the load.
func (s *DocumentService) AttachDocument(ctx context.Context, loadID uint, uploadedBy uint, fileName, contentType string, content io.Reader, size int64) (models.LoadDocument, error) {
	if _, err := s.repos.Load.GetLoadByID(loadID); err != nil {
		return models.LoadDocument{}, ErrLoadNotFound
	}

	objectKey := fmt.Sprintf("loads/%d/%s%s", loadID, uuid.NewString(), path.Ext(fileName))
	if err := utils.UploadObject(ctx, objectKey, contentType, content, size); err != nil {
		return models.LoadDocument{}, err
	}

	doc := models.LoadDocument{
		LoadID:      loadID,
		FileName:    fileName,
		ObjectKey:   objectKey,
		ContentType: contentType,
		SizeBytes:   size,
		UploadedBy:  uploadedBy,
	}

	if err := s.repos.Document.CreateDocument(&doc); err != nil {
		// keep the bucket consistent with the table
		_ = utils.DeleteObject(ctx, objectKey)
		return models.LoadDocument{}, err
	}

	return doc, nil
}

func (s *DocumentService) ListDocuments(loadID uint) ([]models.LoadDocument, error) {
	if _, err := s.repos.Load.GetLoadByID(loadID); err != nil {
		return nil, ErrLoadNotFound
	}
	return s.repos.Document.ListDocumentsByLoadID(loadID)
}

// PresignDocument hands back a short-lived download URL.
func (s *DocumentService) PresignDocument(ctx context.Context, id uint) (*url.URL, error) {
	doc, err := s.repos.Document.GetDocumentByID(id)
	if err != nil {
		return nil, ErrDocumentNotFound
	}
	return utils.PresignDownload(ctx, doc.ObjectKey, presignExpiry)
}

func (s *DocumentService) DeleteDocument(ctx context.Context, id uint) error {
	doc, err := s.repos.Document.GetDocumentByID(id)
	if err != nil {
		return ErrDocumentNotFound
	}

	if err := utils.DeleteObject(ctx, doc.ObjectKey); err != nil {
		return err
	}
	return s.repos.Document.DeleteDocument(id)
}
