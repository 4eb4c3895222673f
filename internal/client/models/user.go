package models

// Registration is the backend answer to a device registration.
type Registration struct {
	SessionID string `json:"sid"`
	UserID    int    `json:"uid"`
}

// UserInfo is the profile as stored on the backend. Every field but UserID
// is absent until the profile form has been submitted once.
type UserInfo struct {
	FirstName       *string `json:"firstName"`
	LastName        *string `json:"lastName"`
	CardFullName    *string `json:"cardFullName"`
	CardNumber      *string `json:"cardNumber"`
	CardExpireMonth *int    `json:"cardExpireMonth"`
	CardExpireYear  *int    `json:"cardExpireYear"`
	CardCVV         *string `json:"cardCVV"`
	UserID          int     `json:"uid"`
	LastOrderID     *int    `json:"lastOid"`
	OrderStatus     *string `json:"orderStatus"`
}

// ProfileUpdate is the body of a profile write.
type ProfileUpdate struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	CardFullName    string `json:"cardFullName"`
	CardNumber      string `json:"cardNumber"`
	CardExpireMonth int    `json:"cardExpireMonth"`
	CardExpireYear  int    `json:"cardExpireYear"`
	CardCVV         string `json:"cardCVV"`
	SessionID       string `json:"sid"`
}
