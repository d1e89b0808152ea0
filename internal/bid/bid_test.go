package bid

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

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

func testRouter(h *GinHandlers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetHTMLTemplate(web.Templates())
	r.GET("/bid/list", h.ListHandler())
	r.GET("/bid/add", h.AddFormHandler())
	r.POST("/bid/validate", h.ValidateHandler())
	r.GET("/bid/update/:id", h.UpdateFormHandler())
	r.POST("/bid/update/:id", h.UpdateHandler())
	r.GET("/bid/delete/:id", h.DeleteHandler())
	return r
}

func postForm(r *gin.Engine, path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func flashCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) string {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == name && c.MaxAge >= 0 {
			v, err := url.QueryUnescape(c.Value)
			require.NoError(t, err)
			return v
		}
	}
	return ""
}

func qty(v float64) *float64 { return &v }

func TestBidCreateThenGet(t *testing.T) {
	svc := NewService(testDB(t))

	in := &types.Bid{Account: "ACC1", Type: "Buy", BidQuantity: qty(10.5), Trader: "jdoe"}
	require.NoError(t, svc.CreateBid(in))
	require.NotZero(t, in.ID)

	got, err := svc.GetBid(in.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "ACC1", got.Account)
	assert.Equal(t, "Buy", got.Type)
	require.NotNil(t, got.BidQuantity)
	assert.Equal(t, 10.5, *got.BidQuantity)
	assert.Equal(t, "jdoe", got.Trader)
}

func TestBidUpdateOverwritesFields(t *testing.T) {
	svc := NewService(testDB(t))

	in := &types.Bid{Account: "ACC1", Type: "Buy", BidQuantity: qty(10.5)}
	require.NoError(t, svc.CreateBid(in))

	updated := &types.Bid{ID: in.ID, Account: "ACC2", Type: "Sell", BidQuantity: qty(3)}
	require.NoError(t, svc.UpdateBid(updated))

	got, err := svc.GetBid(in.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "ACC2", got.Account)
	assert.Equal(t, "Sell", got.Type)
	assert.Equal(t, 3.0, *got.BidQuantity)
}

func TestBidUpdateUnknownID(t *testing.T) {
	svc := NewService(testDB(t))

	err := svc.UpdateBid(&types.Bid{ID: 999, Account: "ACC1", Type: "Buy"})
	assert.ErrorIs(t, err, ErrNotFound)

	bids, err := svc.GetAllBids()
	require.NoError(t, err)
	assert.Empty(t, bids)
}

func TestBidDelete(t *testing.T) {
	svc := NewService(testDB(t))

	in := &types.Bid{Account: "ACC1", Type: "Buy"}
	require.NoError(t, svc.CreateBid(in))
	require.NoError(t, svc.DeleteBid(in.ID))

	got, err := svc.GetBid(in.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.ErrorIs(t, svc.DeleteBid(in.ID), ErrNotFound)
}

func TestBidViewFormatting(t *testing.T) {
	tests := []struct {
		name string
		bid  types.Bid
		want View
	}{
		{
			name: "quantities fixed to two decimals",
			bid:  types.Bid{ID: 1, Account: "ACC1", Type: "Buy", BidQuantity: qty(10.5)},
			want: View{ID: 1, Account: "ACC1", Type: "Buy", BidQuantity: "10.50", AskQuantity: "N/A", Bid: "N/A", Ask: "N/A"},
		},
		{
			name: "absent optionals render as placeholder",
			bid:  types.Bid{ID: 2, Account: "ACC2", Type: "Sell"},
			want: View{ID: 2, Account: "ACC2", Type: "Sell", BidQuantity: "N/A", AskQuantity: "N/A", Bid: "N/A", Ask: "N/A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewView(tt.bid))
		})
	}
}

func TestBidFormToEntity(t *testing.T) {
	form := Form{Account: "ACC1", Type: "Buy", BidQuantity: "abc", Ask: "-1"}

	_, errs := form.ToEntity()
	assert.Contains(t, errs, "BidQuantity")
	assert.NotContains(t, errs, "Ask") // prices may be negative

	form.BidQuantity = "-5"
	_, errs = form.ToEntity()
	assert.Contains(t, errs, "BidQuantity")
}

func TestListPageShowsFormattedRow(t *testing.T) {
	svc := NewService(testDB(t))
	require.NoError(t, svc.CreateBid(&types.Bid{Account: "ACC1", Type: "Buy", BidQuantity: qty(10.5)}))

	r := testRouter(NewGinHandlers(svc))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bid/list", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ACC1")
	assert.Contains(t, rec.Body.String(), "10.50")
}

func TestListPageEmptyState(t *testing.T) {
	r := testRouter(NewGinHandlers(NewService(testDB(t))))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bid/list", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No bids to display")
}

func TestValidateSubmitPersistsAndRedirects(t *testing.T) {
	svc := NewService(testDB(t))
	r := testRouter(NewGinHandlers(svc))

	rec := postForm(r, "/bid/validate", url.Values{
		"account":     {"ACC1"},
		"type":        {"Buy"},
		"bidQuantity": {"10.5"},
	})

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/bid/list", rec.Header().Get("Location"))
	assert.Equal(t, "Bid created successfully", flashCookie(t, rec, "flash_success"))

	bids, err := svc.GetAllBids()
	require.NoError(t, err)
	require.Len(t, bids, 1)
	assert.Equal(t, 10.5, *bids[0].BidQuantity)
}

func TestValidateSubmitRejectsMissingAccount(t *testing.T) {
	svc := NewService(testDB(t))
	r := testRouter(NewGinHandlers(svc))

	rec := postForm(r, "/bid/validate", url.Values{"type": {"Buy"}})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Account is mandatory")

	bids, err := svc.GetAllBids()
	require.NoError(t, err)
	assert.Empty(t, bids)
}

func TestUpdateFormUnknownIDRedirectsWithError(t *testing.T) {
	r := testRouter(NewGinHandlers(NewService(testDB(t))))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bid/update/42", nil))

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/bid/list", rec.Header().Get("Location"))
	assert.Equal(t, "Bid 42 not found", flashCookie(t, rec, "flash_error"))
}

func TestDeleteUnknownIDRedirectsWithError(t *testing.T) {
	svc := NewService(testDB(t))
	r := testRouter(NewGinHandlers(svc))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bid/delete/42", nil))

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "Bid 42 not found", flashCookie(t, rec, "flash_error"))
}
