package entity

import "time"

// Supplier representa una organización que provee materiales.
type Supplier struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
