package domain

import "time"

// Employee сотрудник салона (грумер)
type Employee struct {
	ID   int64
	Name string

	CreatedAt time.Time
	UpdatedAt time.Time
}
