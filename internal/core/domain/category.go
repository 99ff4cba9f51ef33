package domain

import "time"

type Category struct {
	ID        uint64
	UserID    uint64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
	Tasks     []Task
}
