package bid

import (
	"github.com/poseidontrading/poseidon/internal/types"
	"github.com/poseidontrading/poseidon/pkg/display"
	"github.com/poseidontrading/poseidon/pkg/forms"
)

// Form holds the raw submitted values of the bid add/update form. Numeric
// fields stay strings here; ToEntity performs the explicit conversion so a
// bad value becomes a field message instead of a binding failure.
type Form struct {
	Account     string `form:"account" binding:"required,max=30"`
	Type        string `form:"type" binding:"required,max=30"`
	BidQuantity string `form:"bidQuantity" binding:"max=20"`
	AskQuantity string `form:"askQuantity" binding:"max=20"`
	Bid         string `form:"bid" binding:"max=20"`
	Ask         string `form:"ask" binding:"max=20"`
	Benchmark   string `form:"benchmark" binding:"max=125"`
	Commentary  string `form:"commentary" binding:"max=125"`
	Security    string `form:"security" binding:"max=125"`
	Status      string `form:"status" binding:"max=10"`
	Trader      string `form:"trader" binding:"max=125"`
	Book        string `form:"book" binding:"max=125"`
}

// ToEntity converts the form into a Bid, collecting per-field messages for
// any value that does not parse. The entity is only meaningful when the
// returned map is empty.
func (f Form) ToEntity() (*types.Bid, map[string]string) {
	errs := make(map[string]string)

	bid := &types.Bid{
		Account:     f.Account,
		Type:        f.Type,
		BidQuantity: forms.Float(f.BidQuantity, "BidQuantity", true, errs),
		AskQuantity: forms.Float(f.AskQuantity, "AskQuantity", true, errs),
		Bid:         forms.Float(f.Bid, "Bid", false, errs),
		Ask:         forms.Float(f.Ask, "Ask", false, errs),
		Benchmark:   f.Benchmark,
		Commentary:  f.Commentary,
		Security:    f.Security,
		Status:      f.Status,
		Trader:      f.Trader,
		Book:        f.Book,
	}
	return bid, errs
}

// FormFromEntity pre-populates the update form from a stored bid.
func FormFromEntity(b types.Bid) Form {
	return Form{
		Account:     b.Account,
		Type:        b.Type,
		BidQuantity: display.FloatValue(b.BidQuantity),
		AskQuantity: display.FloatValue(b.AskQuantity),
		Bid:         display.FloatValue(b.Bid),
		Ask:         display.FloatValue(b.Ask),
		Benchmark:   b.Benchmark,
		Commentary:  b.Commentary,
		Security:    b.Security,
		Status:      b.Status,
		Trader:      b.Trader,
		Book:        b.Book,
	}
}

// View is the display projection of a bid for the list page.
type View struct {
	ID          uint
	Account     string
	Type        string
	BidQuantity string
	AskQuantity string
	Bid         string
	Ask         string
	Security    string
	Status      string
}

// NewView projects a bid for rendering. Optional amounts are fixed to two
// decimals or shown as the placeholder.
func NewView(b types.Bid) View {
	return View{
		ID:          b.ID,
		Account:     b.Account,
		Type:        b.Type,
		BidQuantity: display.Amount(b.BidQuantity),
		AskQuantity: display.Amount(b.AskQuantity),
		Bid:         display.Amount(b.Bid),
		Ask:         display.Amount(b.Ask),
		Security:    b.Security,
		Status:      b.Status,
	}
}

// NewViews projects a slice of bids, tolerating a nil input.
func NewViews(bids []types.Bid) []View {
	views := make([]View, 0, len(bids))
	for _, b := range bids {
		views = append(views, NewView(b))
	}
	return views
}
