package curvepoint

import (
	"errors"

	"github.com/poseidontrading/poseidon/internal/types"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("curve point not found")

type Database struct {
	db *gorm.DB
}

func NewDatabase(db *gorm.DB) *Database {
	return &Database{db: db}
}

func (d *Database) CreateCurvePoint(point *types.CurvePoint) error {
	return d.db.Create(point).Error
}

func (d *Database) GetCurvePoint(id uint) (*types.CurvePoint, error) {
	var point types.CurvePoint
	if err := d.db.First(&point, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &point, nil
}

func (d *Database) GetAllCurvePoints() ([]types.CurvePoint, error) {
	var points []types.CurvePoint
	if err := d.db.Order("id").Find(&points).Error; err != nil {
		return nil, err
	}
	return points, nil
}

// UpdateCurvePoint overwrites the mutable fields of an existing point.
// CreationDate is an insert-time audit stamp and is carried over unchanged.
func (d *Database) UpdateCurvePoint(point *types.CurvePoint) error {
	existing, err := d.GetCurvePoint(point.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	point.CreationDate = existing.CreationDate
	return d.db.Save(point).Error
}

func (d *Database) DeleteCurvePoint(id uint) error {
	result := d.db.Delete(&types.CurvePoint{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
