package rulename

import (
	"errors"

	"github.com/poseidontrading/poseidon/internal/types"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("rule name not found")

type Database struct {
	db *gorm.DB
}

func NewDatabase(db *gorm.DB) *Database {
	return &Database{db: db}
}

func (d *Database) CreateRuleName(rule *types.RuleName) error {
	return d.db.Create(rule).Error
}

func (d *Database) GetRuleName(id uint) (*types.RuleName, error) {
	var rule types.RuleName
	if err := d.db.First(&rule, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rule, nil
}

func (d *Database) GetAllRuleNames() ([]types.RuleName, error) {
	var rules []types.RuleName
	if err := d.db.Order("id").Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

func (d *Database) UpdateRuleName(rule *types.RuleName) error {
	existing, err := d.GetRuleName(rule.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	return d.db.Save(rule).Error
}

func (d *Database) DeleteRuleName(id uint) error {
	result := d.db.Delete(&types.RuleName{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
