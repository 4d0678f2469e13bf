package domain

import "time"

//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

// Outcome classifies how a relay request ended
// ENUM(ok,permanent,transient,configuration)
type Outcome string

// Record is one resolution outcome kept for operators. It carries request
// metadata only; retrieved content is never stored.
type Record struct {
	ID          int64     `json:"id"`
	Link        string    `json:"link"`
	ChannelKey  string    `json:"channel_key"`
	MessageID   int       `json:"message_id"`
	Outcome     Outcome   `json:"outcome"`
	ContentKind string    `json:"content_kind,omitempty"`
	Identity    string    `json:"identity,omitempty"`
	CacheHit    bool      `json:"cache_hit"`
	RequestedBy int64     `json:"requested_by"`
	At          time.Time `json:"at"`
}
