package curvepoint

import (
	"strconv"

	"github.com/poseidontrading/poseidon/internal/types"
	"github.com/poseidontrading/poseidon/pkg/display"
	"github.com/poseidontrading/poseidon/pkg/forms"
)

// Form holds the raw submitted values of the curve point add/update form.
type Form struct {
	CurveID  string `form:"curveId" binding:"required,max=20"`
	AsOfDate string `form:"asOfDate" binding:"max=25"`
	Term     string `form:"term" binding:"required,max=20"`
	Value    string `form:"value" binding:"required,max=20"`
}

// ToEntity converts the form into a CurvePoint, collecting per-field
// messages for values that do not parse.
func (f Form) ToEntity() (*types.CurvePoint, map[string]string) {
	errs := make(map[string]string)

	point := &types.CurvePoint{
		CurveID:  forms.RequiredInt(f.CurveID, "CurveID", errs),
		AsOfDate: forms.Date(f.AsOfDate, "AsOfDate", errs),
		Term:     forms.Float(f.Term, "Term", true, errs),
		Value:    forms.Float(f.Value, "Value", false, errs),
	}
	return point, errs
}

// FormFromEntity pre-populates the update form from a stored point.
func FormFromEntity(p types.CurvePoint) Form {
	return Form{
		CurveID:  strconv.Itoa(p.CurveID),
		AsOfDate: display.DateValue(p.AsOfDate),
		Term:     display.FloatValue(p.Term),
		Value:    display.FloatValue(p.Value),
	}
}

// View is the display projection of a curve point for the list page.
type View struct {
	ID           uint
	CurveID      int
	AsOfDate     string
	Term         string
	Value        string
	CreationDate string
}

func NewView(p types.CurvePoint) View {
	return View{
		ID:           p.ID,
		CurveID:      p.CurveID,
		AsOfDate:     display.Date(p.AsOfDate),
		Term:         display.Amount(p.Term),
		Value:        display.Amount(p.Value),
		CreationDate: display.Timestamp(p.CreationDate),
	}
}

func NewViews(points []types.CurvePoint) []View {
	views := make([]View, 0, len(points))
	for _, p := range points {
		views = append(views, NewView(p))
	}
	return views
}
