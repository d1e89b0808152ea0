package curvepoint

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/poseidontrading/poseidon/internal/database"
	"github.com/poseidontrading/poseidon/internal/types"
	"github.com/poseidontrading/poseidon/web"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func val(v float64) *float64 { return &v }

func TestCurvePointCreateSetsCreationDate(t *testing.T) {
	svc := NewService(testDB(t))

	in := &types.CurvePoint{CurveID: 10, Term: val(1), Value: val(3.38)}
	require.NoError(t, svc.CreateCurvePoint(in))

	got, err := svc.GetCurvePoint(in.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.CreationDate.IsZero())
	assert.Equal(t, 10, got.CurveID)
}

func TestCurvePointUpdatePreservesCreationDate(t *testing.T) {
	svc := NewService(testDB(t))

	in := &types.CurvePoint{CurveID: 10, Term: val(1), Value: val(3.38)}
	require.NoError(t, svc.CreateCurvePoint(in))

	created, err := svc.GetCurvePoint(in.ID)
	require.NoError(t, err)

	asOf := time.Date(2026, time.January, 2, 9, 0, 0, 0, time.UTC)
	updated := &types.CurvePoint{ID: in.ID, CurveID: 11, AsOfDate: &asOf, Term: val(2), Value: val(3.5)}
	require.NoError(t, svc.UpdateCurvePoint(updated))

	got, err := svc.GetCurvePoint(in.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 11, got.CurveID)
	assert.Equal(t, 2.0, *got.Term)
	assert.True(t, got.CreationDate.Equal(created.CreationDate))
}

func TestCurvePointUpdateUnknownID(t *testing.T) {
	svc := NewService(testDB(t))

	err := svc.UpdateCurvePoint(&types.CurvePoint{ID: 999, CurveID: 1, Term: val(1), Value: val(1)})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCurvePointDeleteUnknownIDLeavesStoreUnchanged(t *testing.T) {
	svc := NewService(testDB(t))

	in := &types.CurvePoint{CurveID: 10, Term: val(1), Value: val(3.38)}
	require.NoError(t, svc.CreateCurvePoint(in))

	assert.ErrorIs(t, svc.DeleteCurvePoint(999), ErrNotFound)

	points, err := svc.GetAllCurvePoints()
	require.NoError(t, err)
	assert.Len(t, points, 1)
}

func TestCurvePointFormToEntity(t *testing.T) {
	tests := []struct {
		name    string
		form    Form
		wantErr []string
	}{
		{
			name: "valid",
			form: Form{CurveID: "10", AsOfDate: "2026-01-02T09:00", Term: "1", Value: "3.38"},
		},
		{
			name:    "missing curve id",
			form:    Form{CurveID: "", Term: "1", Value: "3.38"},
			wantErr: []string{"CurveID"},
		},
		{
			name:    "bad term and date",
			form:    Form{CurveID: "10", AsOfDate: "yesterday", Term: "soon", Value: "3.38"},
			wantErr: []string{"Term", "AsOfDate"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := tt.form.ToEntity()
			for _, field := range tt.wantErr {
				assert.Contains(t, errs, field)
			}
			if len(tt.wantErr) == 0 {
				assert.Empty(t, errs)
			}
		})
	}
}

func TestDeleteUnknownCurvePointRedirectsWithError(t *testing.T) {
	svc := NewService(testDB(t))
	h := NewGinHandlers(svc)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetHTMLTemplate(web.Templates())
	r.GET("/curvePoint/delete/:id", h.DeleteHandler())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/curvePoint/delete/999", nil))

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/curvePoint/list", rec.Header().Get("Location"))

	var flash string
	for _, c := range rec.Result().Cookies() {
		if c.Name == "flash_error" {
			flash, _ = url.QueryUnescape(c.Value)
		}
	}
	assert.Equal(t, "Curve point 999 not found", flash)

	points, err := svc.GetAllCurvePoints()
	require.NoError(t, err)
	assert.Empty(t, points)
}
