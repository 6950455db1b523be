package domain

// Default configuration values
const (
	DefaultSlotDurationMinutes = 30
	DefaultBufferTimeMinutes   = 0
	DefaultAdvanceBookingDays  = 60
	DefaultMinNoticeHours      = 12
)

// Дефолтное недельное расписание: будни 09:00-18:00, выходные закрыты
const (
	DefaultOpenTime  = "09:00"
	DefaultCloseTime = "18:00"
)

// Business validation constants
const (
	MinSlotDurationMinutes = 15
	MaxSlotDurationMinutes = 480 // 8 hours

	MinBufferTimeMinutes = 0
	MaxBufferTimeMinutes = 120

	MinAdvanceBookingDays = 1
	MaxAdvanceBookingDays = 365 // 1 year

	MinNoticeHoursLimit = 0
	MaxNoticeHoursLimit = 168 // 1 week

	MinVisitorNameLength = 1
	MaxVisitorNameLength = 100

	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Дни недели: 0 = воскресенье, 6 = суббота (как в time.Weekday)
const (
	WeekdaySunday   = 0
	WeekdaySaturday = 6
	DaysInWeek      = 7
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses список статусов, при которых бронирование занимает слот
var ActiveStatuses = []BookingStatus{
	StatusConfirmed,
}

// CancelledStatuses список статусов отменённых бронирований
// Отменённое бронирование слот не занимает
var CancelledStatuses = []BookingStatus{
	StatusCancelledByVisitor,
	StatusCancelledByAdmin,
}
