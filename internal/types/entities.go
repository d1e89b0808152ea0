package types

import (
	"time"
)

// Bid is a bid-list entry. Account and Type are mandatory; the quantity and
// price columns are nullable because a bid can be captured before pricing.
type Bid struct {
	ID          uint       `gorm:"primaryKey;autoIncrement"`
	Account     string     `gorm:"size:30;not null"`
	Type        string     `gorm:"size:30;not null"`
	BidQuantity *float64   `gorm:"column:bid_quantity"`
	AskQuantity *float64   `gorm:"column:ask_quantity"`
	Bid         *float64   `gorm:"column:bid"`
	Ask         *float64   `gorm:"column:ask"`
	Benchmark   string     `gorm:"size:125"`
	Commentary  string     `gorm:"size:125"`
	Security    string     `gorm:"size:125"`
	Status      string     `gorm:"size:10"`
	Trader      string     `gorm:"size:125"`
	Book        string     `gorm:"size:125"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Bid) TableName() string {
	return "bid_list"
}

// CurvePoint is one point of a term structure. Points sharing a CurveID
// belong to the same curve; there is no enforced aggregate beyond that.
// AsOfDate is the financial validity date, CreationDate the audit timestamp
// assigned once at insert.
type CurvePoint struct {
	ID           uint       `gorm:"primaryKey;autoIncrement"`
	CurveID      int        `gorm:"column:curve_id;not null"`
	AsOfDate     *time.Time `gorm:"column:as_of_date"`
	Term         *float64
	Value        *float64
	CreationDate time.Time `gorm:"autoCreateTime"`
}

func (CurvePoint) TableName() string {
	return "curve_point"
}

// Rating carries the three agency labels for one issuer. The labels are
// independent scales and are never cross-validated against each other.
// Lower OrderNumber means better credit quality.
type Rating struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	MoodysRating string `gorm:"column:moodys_rating;size:125"`
	SandPRating  string `gorm:"column:sand_p_rating;size:125"`
	FitchRating  string `gorm:"column:fitch_rating;size:125"`
	OrderNumber  *int   `gorm:"column:order_number"`
}

func (Rating) TableName() string {
	return "rating"
}

// Trade is a booked trade. Either side's quantity/price may be absent.
type Trade struct {
	ID           uint       `gorm:"primaryKey;autoIncrement"`
	Account      string     `gorm:"size:30;not null"`
	Type         string     `gorm:"size:30;not null"`
	BuyQuantity  *float64   `gorm:"column:buy_quantity"`
	SellQuantity *float64   `gorm:"column:sell_quantity"`
	BuyPrice     *float64   `gorm:"column:buy_price"`
	SellPrice    *float64   `gorm:"column:sell_price"`
	TradeDate    *time.Time `gorm:"column:trade_date"`
	Security     string     `gorm:"size:125"`
	Status       string     `gorm:"size:10"`
	Trader       string     `gorm:"size:125"`
	Benchmark    string     `gorm:"size:125"`
	Book         string     `gorm:"size:125"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Trade) TableName() string {
	return "trade"
}

// RuleName is a named screening rule with its query fragments.
type RuleName struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"size:125;not null"`
	Description string `gorm:"size:125"`
	Json        string `gorm:"column:json;size:125"`
	Template    string `gorm:"size:512"`
	SQLStr      string `gorm:"column:sql_str;size:125"`
	SQLPart     string `gorm:"column:sql_part;size:125"`
}

func (RuleName) TableName() string {
	return "rule_name"
}

// User is a login account. Password holds a bcrypt hash, never plaintext.
type User struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"`
	Username string `gorm:"size:125;uniqueIndex;not null"`
	Password string `gorm:"size:125;not null"`
	FullName string `gorm:"column:full_name;size:125"`
	Role     string `gorm:"size:125;not null"`
}

func (User) TableName() string {
	return "users"
}
