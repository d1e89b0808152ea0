package trade

import (
	"errors"

	"github.com/poseidontrading/poseidon/internal/types"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("trade not found")

type Database struct {
	db *gorm.DB
}

func NewDatabase(db *gorm.DB) *Database {
	return &Database{db: db}
}

func (d *Database) CreateTrade(trade *types.Trade) error {
	return d.db.Create(trade).Error
}

func (d *Database) GetTrade(id uint) (*types.Trade, error) {
	var trade types.Trade
	if err := d.db.First(&trade, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trade, nil
}

func (d *Database) GetAllTrades() ([]types.Trade, error) {
	var trades []types.Trade
	if err := d.db.Order("id").Find(&trades).Error; err != nil {
		return nil, err
	}
	return trades, nil
}

func (d *Database) UpdateTrade(trade *types.Trade) error {
	existing, err := d.GetTrade(trade.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	trade.CreatedAt = existing.CreatedAt
	return d.db.Save(trade).Error
}

func (d *Database) DeleteTrade(id uint) error {
	result := d.db.Delete(&types.Trade{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
