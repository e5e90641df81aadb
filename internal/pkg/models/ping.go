package models

import "time"

// Ping is the order-ready notification record. It lives under a
// per-recipient topic keyed by order and self-expires after a fixed TTL.
type Ping struct {
	OrderID    string    `json:"order_id"`
	FromUserID string    `json:"from_user_id"`
	ToUserID   string    `json:"to_user_id"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
	IsActive   bool      `json:"is_active"`
}

// Expired reports whether the ping is past its TTL at the given instant.
// Checked defensively on receipt as well as enforced by the publisher.
func (p *Ping) Expired(now time.Time) bool {
	return !now.Before(p.ExpiresAt)
}

// PingDelivery is the payload handed to the notification delivery layer.
// Sound and haptics direct the receiving device's feedback.
type PingDelivery struct {
	Ping    Ping     `json:"ping"`
	Sound   string   `json:"sound"`
	Haptics []string `json:"haptics"`
}
