package company

import "time"

type Company struct {
	ID             string
	Name           string
	IdentityNumber string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
