package trade

import (
	"github.com/poseidontrading/poseidon/internal/types"
	"github.com/poseidontrading/poseidon/pkg/display"
	"github.com/poseidontrading/poseidon/pkg/forms"
)

// Form holds the raw submitted values of the trade add/update form. A trade
// may carry a buy side, a sell side, or both.
type Form struct {
	Account      string `form:"account" binding:"required,max=30"`
	Type         string `form:"type" binding:"required,max=30"`
	BuyQuantity  string `form:"buyQuantity" binding:"max=20"`
	SellQuantity string `form:"sellQuantity" binding:"max=20"`
	BuyPrice     string `form:"buyPrice" binding:"max=20"`
	SellPrice    string `form:"sellPrice" binding:"max=20"`
	TradeDate    string `form:"tradeDate" binding:"max=25"`
	Security     string `form:"security" binding:"max=125"`
	Status       string `form:"status" binding:"max=10"`
	Trader       string `form:"trader" binding:"max=125"`
	Benchmark    string `form:"benchmark" binding:"max=125"`
	Book         string `form:"book" binding:"max=125"`
}

// ToEntity converts the form into a Trade, collecting per-field messages for
// any value that does not parse.
func (f Form) ToEntity() (*types.Trade, map[string]string) {
	errs := make(map[string]string)

	trade := &types.Trade{
		Account:      f.Account,
		Type:         f.Type,
		BuyQuantity:  forms.Float(f.BuyQuantity, "BuyQuantity", true, errs),
		SellQuantity: forms.Float(f.SellQuantity, "SellQuantity", true, errs),
		BuyPrice:     forms.Float(f.BuyPrice, "BuyPrice", true, errs),
		SellPrice:    forms.Float(f.SellPrice, "SellPrice", true, errs),
		TradeDate:    forms.Date(f.TradeDate, "TradeDate", errs),
		Security:     f.Security,
		Status:       f.Status,
		Trader:       f.Trader,
		Benchmark:    f.Benchmark,
		Book:         f.Book,
	}
	return trade, errs
}

// FormFromEntity pre-populates the update form from a stored trade.
func FormFromEntity(t types.Trade) Form {
	return Form{
		Account:      t.Account,
		Type:         t.Type,
		BuyQuantity:  display.FloatValue(t.BuyQuantity),
		SellQuantity: display.FloatValue(t.SellQuantity),
		BuyPrice:     display.FloatValue(t.BuyPrice),
		SellPrice:    display.FloatValue(t.SellPrice),
		TradeDate:    display.DateValue(t.TradeDate),
		Security:     t.Security,
		Status:       t.Status,
		Trader:       t.Trader,
		Benchmark:    t.Benchmark,
		Book:         t.Book,
	}
}

// View is the display projection of a trade for the list page.
type View struct {
	ID           uint
	Account      string
	Type         string
	BuyQuantity  string
	SellQuantity string
	BuyPrice     string
	SellPrice    string
	TradeDate    string
	Security     string
	Status       string
}

func NewView(t types.Trade) View {
	return View{
		ID:           t.ID,
		Account:      t.Account,
		Type:         t.Type,
		BuyQuantity:  display.Amount(t.BuyQuantity),
		SellQuantity: display.Amount(t.SellQuantity),
		BuyPrice:     display.Amount(t.BuyPrice),
		SellPrice:    display.Amount(t.SellPrice),
		TradeDate:    display.Date(t.TradeDate),
		Security:     t.Security,
		Status:       t.Status,
	}
}

func NewViews(trades []types.Trade) []View {
	views := make([]View, 0, len(trades))
	for _, t := range trades {
		views = append(views, NewView(t))
	}
	return views
}
