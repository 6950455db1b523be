package create_booking

import "time"

// Request модель запроса на создание бронирования
// Слот идентифицируется парой (StartAt, EndAt) - ровно так, как он был
// выдан витриной слотов
type Request struct {
	StartAt time.Time
	EndAt   time.Time

	VisitorName  string
	VisitorEmail string
	VisitorPhone *string
	Notes        *string
}

// Response модель ответа на создание бронирования
type Response struct {
	ID        int64
	Reference string // Код подтверждения для посетителя

	StartAt time.Time
	EndAt   time.Time

	VisitorName  string
	VisitorEmail string
	VisitorPhone *string
	Notes        *string

	Status    string
	CreatedAt time.Time
}
