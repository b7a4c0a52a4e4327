package order

import "github.com/shopspring/decimal"

// Status represents order lifecycle as reported by the exchange. The
// exchange is authoritative; this package never tracks transitions itself.
type Status string

const (
	StatusNew             Status = "NEW"
	StatusPartiallyFilled Status = "PARTIALLY_FILLED"
	StatusFilled          Status = "FILLED"
	StatusCanceled        Status = "CANCELED"
	StatusRejected        Status = "REJECTED"
	StatusExpired         Status = "EXPIRED"
)

// Side of an order.
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

const (
	TypeLimit      = "LIMIT"
	TimeInForceGTC = "GTC"
)

// Order is one open order from the exchange snapshot.
type Order struct {
	Symbol  string          `json:"symbol"`
	OrderID int64           `json:"orderId"`
	Status  Status          `json:"status"`
	Type    string          `json:"type"`
	Side    Side            `json:"side"`
	OrigQty decimal.Decimal `json:"origQty"`
	Price   decimal.Decimal `json:"price"`
}

// Result is the exchange's echo for a create or cancel call, reported
// verbatim. Price and quantity precision is the exchange's business; no
// local rounding is applied.
type Result struct {
	Symbol  string          `json:"symbol"`
	OrderID int64           `json:"orderId"`
	Status  Status          `json:"status"`
	Side    Side            `json:"side"`
	Price   decimal.Decimal `json:"price"`
	OrigQty decimal.Decimal `json:"origQty"`
}

// CreateRequest is a limit order to submit.
type CreateRequest struct {
	Symbol      string
	Side        Side
	Type        string
	TimeInForce string
	Quantity    decimal.Decimal
	Price       decimal.Decimal
}
