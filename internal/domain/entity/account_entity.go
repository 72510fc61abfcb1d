package entity

import "time"

// Account is the aggregate root for the identity domain.
// Password holds a bcrypt hash and must never be serialized to a client.
type Account struct {
	ID            string
	Name          string
	Email         string
	Password      string
	Company       string
	Role          string
	WalletAddress *string
	IsActive      bool
	IsVerified    bool
	CreatedAt     time.Time
	LastLogin     *time.Time
}

// AccountStats is the admin-facing aggregate over accounts.
type AccountStats struct {
	Total    int64
	Active   int64
	Inactive int64
	ByRole   map[string]int64
}
