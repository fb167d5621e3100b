package domain

import "time"

// DefaultDeliverableTTL is how long a deliverable stays visible on the
// public tracking page unless the admin overrides it.
const DefaultDeliverableTTL = 30 * 24 * time.Hour

type Deliverable struct {
	ID           string
	PedidoID     string
	FileURL      string
	FileName     string
	FileType     string
	FileSize     int64
	IsFinal      bool
	DeliveredAt  time.Time
	DownloadedAt *time.Time
	ExpiresAt    time.Time
	CreatedAt    time.Time
}

// Expired reports whether the deliverable should no longer be surfaced.
func (d *Deliverable) Expired(now time.Time) bool {
	return !d.ExpiresAt.After(now)
}
