package rulename

import (
	"github.com/poseidontrading/poseidon/internal/types"
)

// Form holds the raw submitted values of the rule name add/update form. All
// fields are free text; only the name is mandatory.
type Form struct {
	Name        string `form:"name" binding:"required,max=125"`
	Description string `form:"description" binding:"max=125"`
	Json        string `form:"json" binding:"max=125"`
	Template    string `form:"template" binding:"max=512"`
	SQLStr      string `form:"sqlStr" binding:"max=125"`
	SQLPart     string `form:"sqlPart" binding:"max=125"`
}

// ToEntity converts the form into a RuleName. The error map is always empty
// today; it is kept for symmetry with the other entity forms.
func (f Form) ToEntity() (*types.RuleName, map[string]string) {
	rule := &types.RuleName{
		Name:        f.Name,
		Description: f.Description,
		Json:        f.Json,
		Template:    f.Template,
		SQLStr:      f.SQLStr,
		SQLPart:     f.SQLPart,
	}
	return rule, map[string]string{}
}

// FormFromEntity pre-populates the update form from a stored rule.
func FormFromEntity(r types.RuleName) Form {
	return Form{
		Name:        r.Name,
		Description: r.Description,
		Json:        r.Json,
		Template:    r.Template,
		SQLStr:      r.SQLStr,
		SQLPart:     r.SQLPart,
	}
}

// View is the display projection of a rule name for the list page.
type View struct {
	ID          uint
	Name        string
	Description string
	Json        string
	Template    string
	SQLStr      string
	SQLPart     string
}

func NewView(r types.RuleName) View {
	return View{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Json:        r.Json,
		Template:    r.Template,
		SQLStr:      r.SQLStr,
		SQLPart:     r.SQLPart,
	}
}

func NewViews(rules []types.RuleName) []View {
	views := make([]View, 0, len(rules))
	for _, r := range rules {
		views = append(views, NewView(r))
	}
	return views
}
