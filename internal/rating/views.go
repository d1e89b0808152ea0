package rating

import (
	"github.com/poseidontrading/poseidon/internal/types"
	"github.com/poseidontrading/poseidon/pkg/display"
	"github.com/poseidontrading/poseidon/pkg/forms"
)

// Form holds the raw submitted values of the rating add/update form. The
// three agency labels are independent scales, so no cross-field checks.
type Form struct {
	MoodysRating string `form:"moodysRating" binding:"max=125"`
	SandPRating  string `form:"sandPRating" binding:"max=125"`
	FitchRating  string `form:"fitchRating" binding:"max=125"`
	OrderNumber  string `form:"orderNumber" binding:"max=10"`
}

// ToEntity converts the form into a Rating, collecting per-field messages
// for values that do not parse. A lower order number means better credit
// quality; negatives are rejected.
func (f Form) ToEntity() (*types.Rating, map[string]string) {
	errs := make(map[string]string)

	rating := &types.Rating{
		MoodysRating: f.MoodysRating,
		SandPRating:  f.SandPRating,
		FitchRating:  f.FitchRating,
		OrderNumber:  forms.Int(f.OrderNumber, "OrderNumber", errs),
	}
	return rating, errs
}

// FormFromEntity pre-populates the update form from a stored rating.
func FormFromEntity(r types.Rating) Form {
	return Form{
		MoodysRating: r.MoodysRating,
		SandPRating:  r.SandPRating,
		FitchRating:  r.FitchRating,
		OrderNumber:  display.IntValue(r.OrderNumber),
	}
}

// View is the display projection of a rating for the list page.
type View struct {
	ID           uint
	MoodysRating string
	SandPRating  string
	FitchRating  string
	OrderNumber  string
}

func NewView(r types.Rating) View {
	return View{
		ID:           r.ID,
		MoodysRating: r.MoodysRating,
		SandPRating:  r.SandPRating,
		FitchRating:  r.FitchRating,
		OrderNumber:  display.Int(r.OrderNumber),
	}
}

func NewViews(ratings []types.Rating) []View {
	views := make([]View, 0, len(ratings))
	for _, r := range ratings {
		views = append(views, NewView(r))
	}
	return views
}
