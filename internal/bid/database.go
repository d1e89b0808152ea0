package bid

import (
	"errors"

	"github.com/poseidontrading/poseidon/internal/types"
	"gorm.io/gorm"
)

// ErrNotFound is returned when an update or delete targets an id that does
// not exist.
var ErrNotFound = errors.New("bid not found")

type Database struct {
	db *gorm.DB
}

func NewDatabase(db *gorm.DB) *Database {
	return &Database{db: db}
}

func (d *Database) CreateBid(bid *types.Bid) error {
	return d.db.Create(bid).Error
}

func (d *Database) GetBid(id uint) (*types.Bid, error) {
	var bid types.Bid
	if err := d.db.First(&bid, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bid, nil
}

func (d *Database) GetAllBids() ([]types.Bid, error) {
	var bids []types.Bid
	if err := d.db.Order("id").Find(&bids).Error; err != nil {
		return nil, err
	}
	return bids, nil
}

// UpdateBid overwrites all mutable fields of an existing bid. Save would
// insert a fresh row for an unknown id, so existence is checked first.
func (d *Database) UpdateBid(bid *types.Bid) error {
	existing, err := d.GetBid(bid.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	bid.CreatedAt = existing.CreatedAt
	return d.db.Save(bid).Error
}

func (d *Database) DeleteBid(id uint) error {
	result := d.db.Delete(&types.Bid{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
