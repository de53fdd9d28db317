package repositories

import (
	"time"

	"github.com/openhaul/loadboard/db"
	"github.com/openhaul/loadboard/models"
)

type LoadQueryParams struct {
	AvailableOnly bool
	ShipperID     *uint
	CarrierID     *uint
	Equipment     *string
	Origin        *string
	Destination   *string
	PickupAfter   *time.Time
	Limit         int
	Offset        int
}

type LoadRepo interface {
	GetLoadByID(id uint) (models.Load, error)
	GetLoadByReference(ref string) (models.Load, error)
	ListLoads(params LoadQueryParams) ([]models.Load, error)
	CreateLoad(load *models.Load) error
	UpdateLoad(load *models.Load) error
	DeleteLoad(id uint) error
	MarkBooked(id uint, carrierID uint) (bool, error)
	MarkReleased(id uint) (bool, error)
}

type DBLoadRepo struct{}

func (r *DBLoadRepo) GetLoadByID(id uint) (models.Load, error) {
	var load models.Load
	if err := db.DB.First(&load, id).Error; err != nil {
		return models.Load{}, err
	}
	return load, nil
}

func (r *DBLoadRepo) GetLoadByReference(ref string) (models.Load, error) {
	var load models.Load
	if err := db.DB.Where("reference = ?", ref).First(&load).Error; err != nil {
		return models.Load{}, err
	}
	return load, nil
}

func (r *DBLoadRepo) ListLoads(params LoadQueryParams) ([]models.Load, error) {
	var loads []models.Load
	query := db.DB.Model(&models.Load{})

	if params.AvailableOnly {
		query = query.Where("booked = ?", false)
	}
	if params.ShipperID != nil {
		query = query.Where("shipper_id = ?", *params.ShipperID)
	}
	if params.CarrierID != nil {
		query = query.Where("carrier_id = ?", *params.CarrierID)
	}
	if params.Equipment != nil {
		query = query.Where("equipment = ?", *params.Equipment)
	}
	if params.Origin != nil {
		query = query.Where("origin = ?", *params.Origin)
	}
	if params.Destination != nil {
		query = query.Where("destination = ?", *params.Destination)
	}
	if params.PickupAfter != nil {
		query = query.Where("pickup_date >= ?", *params.PickupAfter)
	}

	query = query.Order("pickup_date ASC")
	if params.Limit > 0 {
		query = query.Limit(params.Limit)
	}
	if params.Offset > 0 {
		query = query.Offset(params.Offset)
	}

	err := query.Find(&loads).Error
	return loads, err
}

func (r *DBLoadRepo) CreateLoad(load *models.Load) error {
	return db.DB.Create(load).Error
}

func (r *DBLoadRepo) UpdateLoad(load *models.Load) error {
	return db.DB.Save(load).Error
}

func (r *DBLoadRepo) DeleteLoad(id uint) error {
	return db.DB.Delete(&models.Load{}, id).Error
}

// MarkBooked flips an available load to booked in one statement so two
// carriers cannot win the same load. Returns false when the load was
// already booked or does not exist.
func (r *DBLoadRepo) MarkBooked(id uint, carrierID uint) (bool, error) {
	res := db.DB.Model(&models.Load{}).
		Where("l_id = ? AND booked = ?", id, false).
		Updates(map[string]interface{}{"booked": true, "carrier_id": carrierID})
	return res.RowsAffected > 0, res.Error
}

// MarkReleased puts a booked load back on the board.
func (r *DBLoadRepo) MarkReleased(id uint) (bool, error) {
	res := db.DB.Model(&models.Load{}).
		Where("l_id = ? AND booked = ?", id, true).
		Updates(map[string]interface{}{"booked": false, "carrier_id": nil})
	return res.RowsAffected > 0, res.Error
}
