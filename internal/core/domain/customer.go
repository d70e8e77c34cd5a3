package domain

import "time"

type Customer struct {
	ID          string
	Name        string
	Email       string
	Phone       string
	OrdersCount int
	TotalSpent  float64
	CreatedAt   time.Time
}
