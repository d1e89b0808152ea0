package rating

import (
	"errors"

	"github.com/poseidontrading/poseidon/internal/types"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("rating not found")

type Database struct {
	db *gorm.DB
}

func NewDatabase(db *gorm.DB) *Database {
	return &Database{db: db}
}

func (d *Database) CreateRating(rating *types.Rating) error {
	return d.db.Create(rating).Error
}

func (d *Database) GetRating(id uint) (*types.Rating, error) {
	var rating types.Rating
	if err := d.db.First(&rating, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rating, nil
}

func (d *Database) GetAllRatings() ([]types.Rating, error) {
	var ratings []types.Rating
	if err := d.db.Order("id").Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

func (d *Database) UpdateRating(rating *types.Rating) error {
	existing, err := d.GetRating(rating.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	return d.db.Save(rating).Error
}

func (d *Database) DeleteRating(id uint) error {
	result := d.db.Delete(&types.Rating{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
