package rulename

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/poseidontrading/poseidon/internal/database"
	"github.com/poseidontrading/poseidon/internal/types"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestRuleNameCRUD(t *testing.T) {
	svc := NewService(testDB(t))

	in := &types.RuleName{
		Name:        "LowLiquidity",
		Description: "Flags securities trading under volume floor",
		Json:        `{"volume_floor": 1000}`,
		SQLStr:      "SELECT * FROM trade WHERE buy_quantity < 1000",
	}
	require.NoError(t, svc.CreateRuleName(in))
	require.NotZero(t, in.ID)

	got, err := svc.GetRuleName(in.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "LowLiquidity", got.Name)

	got.Description = "Flags thin books"
	require.NoError(t, svc.UpdateRuleName(got))

	got, err = svc.GetRuleName(in.ID)
	require.NoError(t, err)
	assert.Equal(t, "Flags thin books", got.Description)

	require.NoError(t, svc.DeleteRuleName(in.ID))
	got, err = svc.GetRuleName(in.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRuleNameNotFoundCases(t *testing.T) {
	svc := NewService(testDB(t))

	assert.ErrorIs(t, svc.UpdateRuleName(&types.RuleName{ID: 999, Name: "x"}), ErrNotFound)
	assert.ErrorIs(t, svc.DeleteRuleName(999), ErrNotFound)
}

func TestRuleNameFormRoundtrip(t *testing.T) {
	form := Form{Name: "LowLiquidity", SQLPart: "buy_quantity < 1000"}
	rule, errs := form.ToEntity()
	assert.Empty(t, errs)
	assert.Equal(t, "LowLiquidity", rule.Name)

	back := FormFromEntity(*rule)
	assert.Equal(t, form, back)
}
