package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// BlockingStatuses статусы, удерживающие набор против пула.
// Ровно эти статусы учитываются при расчёте доступности и аллокации.
var BlockingStatuses = []BookingStatus{
	StatusNew,
	StatusAwaitingPrepayment,
	StatusPrepaid,
	StatusConfirmed,
}

// InactiveStatuses статусы, не удерживающие набор
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}
