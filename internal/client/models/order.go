package models

// Order mirrors the backend order record. DeliveryTimestamp is set once the
// order is delivered; ExpectedDeliveryTimestamp only while it is in transit.
type Order struct {
	OrderID                   int      `json:"oid"`
	MenuID                    int      `json:"mid"`
	UserID                    int      `json:"uid"`
	CreationTimestamp         string   `json:"creationTimestamp"`
	Status                    string   `json:"status"`
	DeliveryLocation          Location `json:"deliveryLocation"`
	DeliveryTimestamp         *string  `json:"deliveryTimestamp,omitempty"`
	ExpectedDeliveryTimestamp *string  `json:"expectedDeliveryTimestamp,omitempty"`
	CurrentPosition           Location `json:"currentPosition"`
}

// InTransit reports whether the order has not been delivered yet.
func (o *Order) InTransit() bool {
	return o.DeliveryTimestamp == nil
}

// OrderRequest is the body of a buy request.
type OrderRequest struct {
	SessionID        string   `json:"sid"`
	DeliveryLocation Location `json:"deliveryLocation"`
}

// OrderError classifies the outcome of the last order placement for the
// order alert.
type OrderError int

const (
	OrderErrorNone OrderError = iota
	OrderErrorNotRegistered
	OrderErrorAlreadyHasActiveOrder
	OrderErrorInvalidPaymentCard
)

func (e OrderError) String() string {
	switch e {
	case OrderErrorNone:
		return "None"
	case OrderErrorNotRegistered:
		return "NotRegistered"
	case OrderErrorAlreadyHasActiveOrder:
		return "AlreadyHasActiveOrder"
	case OrderErrorInvalidPaymentCard:
		return "InvalidPaymentCard"
	default:
		return "Unknown"
	}
}
