package domain

import (
	"time"

	"game-analytics-service/internal/pipeline"
)

type EventType string

const (
	EventRewarded EventType = "rewarded"
	EventIAP      EventType = "iap"
	EventLevel    EventType = "level"
)

// Fields lists the payload fields kept for each event type, in output order.
var Fields = map[EventType][]string{
	EventRewarded: {
		"userId", "platform", "country", "gameVersion", "level", "loggedDay",
		"date", "accountCreatedDate", "placement", "subPlacement",
	},
	EventIAP: {
		"userId", "gameId", "eventType", "placement", "subPlacement", "platform",
		"gameVersion", "level", "loggedDay", "accountCreatedDate", "date",
		"productId", "transactionId", "orderId", "purchaseState", "receipt",
		"currencyCode", "purchaseToken", "price",
	},
	EventLevel: {
		"userId", "platform", "country", "gameVersion", "loggedDay", "date",
		"accountCreatedDate", "difficulty", "duration", "gameLevel", "gameMode", "status",
	},
}

// Confirmations are the human answers per event type.
var Confirmations = map[EventType]string{
	EventRewarded: "Logged RewardedAds event",
	EventIAP:      "Logged IAP event",
	EventLevel:    "Logged LevelPlay event",
}

type Event struct {
	Type       EventType
	UserID     string
	ReceivedAt time.Time
	Data       pipeline.Value
	// DedupeKey is empty for events that carry no identity; those are never
	// treated as duplicates.
	DedupeKey string
}
