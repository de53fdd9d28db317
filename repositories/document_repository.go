package repositories

import (
	"github.com/openhaul/loadboard/db"
	"github.com/openhaul/loadboard/models"
)

type DocumentRepo interface {
	GetDocumentByID(id uint) (models.LoadDocument, error)
	ListDocumentsByLoadID(loadID uint) ([]models.LoadDocument, error)
	CreateDocument(doc *models.LoadDocument) error
	DeleteDocument(id uint) error
}

type DBDocumentRepo struct{}

func (r *DBDocumentRepo) GetDocumentByID(id uint) (models.LoadDocument, error) {
	var doc models.LoadDocument
	if err := db.DB.First(&doc, id).Error; err != nil {
		return models.LoadDocument{}, err
	}
	return doc, nil
}

func (r *DBDocumentRepo) ListDocumentsByLoadID(loadID uint) ([]models.LoadDocument, error) {
	var docs []models.LoadDocument
	err := db.DB.Where("load_id = ?", loadID).Order("create_at ASC").Find(&docs).Error
	return docs, err
}

func (r *DBDocumentRepo) CreateDocument(doc *models.LoadDocument) error {
	return db.DB.Create(doc).Error
}

func (r *DBDocumentRepo) DeleteDocument(id uint) error {
	return db.DB.Delete(&models.LoadDocument{}, id).Error
}
