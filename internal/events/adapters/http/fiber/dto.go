package fiber

// CreateEventRequest documents the event payload. Fields outside the
// event type's field list are dropped.
// @Description Event log DTO
type CreateEventRequest struct {
	EventType   string  `json:"eventType" example:"iap"`
	UserID      string  `json:"userId" example:"user_123"`
	GameID      string  `json:"gameId,omitempty"`
	Platform    string  `json:"platform,omitempty" example:"ios"`
	Country     string  `json:"country,omitempty" example:"TR"`
	GameVersion string  `json:"gameVersion,omitempty" example:"1.4.0"`
	Date        string  `json:"date,omitempty" example:"2026-03-15T10:00:00.000Z"`
	Placement   string  `json:"placement,omitempty"`
	ProductID   string  `json:"productId,omitempty"`
	Price       float64 `json:"price,omitempty"`
	GameLevel   int     `json:"gameLevel,omitempty"`
	Duration    int     `json:"duration,omitempty"`
	Status      string  `json:"status,omitempty"`
}

type CreateEventResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type BulkCreateEventsRequest struct {
	Events []CreateEventRequest `json:"events"`
}

type BulkCreateEventsResponse struct {
	Created    int `json:"created"`
	Duplicates int `json:"duplicates"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_event"`
	Message string `json:"message,omitempty" example:"Missing eventType field"`
}
