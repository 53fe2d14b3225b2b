package domain

import "time"

// Address контактные данные доставки, создаются вместе с бронированием
// в одной транзакции
type Address struct {
	ID        int64
	UserID    int64
	City      string
	Street    string
	Building  string
	Apartment *string
	Phone     string
	Comment   *string
	CreatedAt time.Time
}
