package models

// Location is a coordinate pair as exchanged with the backend.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// MenuSummary is one row of the nearby menu list. It lives only as long as
// the current in-memory list.
type MenuSummary struct {
	MenuID           int      `json:"mid"`
	Name             string   `json:"name"`
	Price            float64  `json:"price"`
	Location         Location `json:"location"`
	ImageVersion     int      `json:"imageVersion"`
	DeliveryTime     int      `json:"deliveryTime"`
	ShortDescription string   `json:"shortDescription"`
}

// MenuDetail extends MenuSummary with the long description.
type MenuDetail struct {
	MenuSummary
	LongDescription string `json:"longDescription"`
}

// ImageVersion is a cached menu image: at most one row per MenuID.
type ImageVersion struct {
	MenuID  int
	Version int
	Payload string
}
