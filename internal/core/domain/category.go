package domain

import "time"

// Category groups cashbooks, e.g. "Projects" or "Shops".
type Category struct {
	CategoryID string    `json:"categoryID" db:"category_id"`
	Name       string    `json:"name" db:"name"`
	OwnerID    string    `json:"ownerID" db:"owner_id"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}
