package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"regexp"
	"time"
)

const minutesPerDay = 24 * 60

var (
	// ErrInvalidTimeFormat возвращается при некорректном формате времени (ожидается HH:MM)
	ErrInvalidTimeFormat = errors.New("invalid time string format")

	// ErrTimeOverflow возвращается, когда арифметика выходит за границы суток
	ErrTimeOverflow = errors.New("time is out of day bounds")
)

// timePattern строгий формат HH:MM (24-часовой, минутная точность)
var timePattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

// TimeString время в пределах суток с минутной точностью ("10:00", "18:30")
// Хранится как строка HH:MM, сравнивается и складывается через перевод в минуты
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts.normalize(), nil
}

// NewTimeStringFromMinutes создает TimeString из количества минут с начала суток
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= minutesPerDay {
		return "", fmt.Errorf("%w: %d minutes", ErrTimeOverflow, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// Validate проверяет, что строка соответствует формату HH:MM
func (t TimeString) Validate() error {
	if !timePattern.MatchString(string(t)) {
		return fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	return nil
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// String возвращает строковое представление HH:MM
func (t TimeString) String() string {
	return string(t.normalize())
}

// Minutes возвращает количество минут с начала суток
// Для невалидного значения возвращает 0 - валидация должна выполняться заранее
func (t TimeString) Minutes() int {
	var h, m int
	if _, err := fmt.Sscanf(string(t), "%d:%d", &h, &m); err != nil {
		return 0
	}
	return h*60 + m
}

// AddMinutes возвращает время, сдвинутое на n минут вперед
// Выход за границы суток считается ошибкой, а не переходом на следующий день
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(t.Minutes() + n)
}

// IsBefore строгое сравнение: true, если t раньше other
// Равные значения не считаются "раньше"
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter строгое сравнение: true, если t позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

// Combine совмещает время с календарным днем и возвращает полноценный instant
// Используется при генерации слотов: день + время правила = начало слота
func (t TimeString) Combine(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), t.Minutes()/60, t.Minutes()%60, 0, 0, day.Location())
}

// normalize приводит к каноничному виду с ведущим нулем ("9:00" -> "09:00")
func (t TimeString) normalize() TimeString {
	if len(t) == 4 {
		return "0" + t
	}
	return t
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t.normalize()), nil
}

// Scan реализует sql.Scanner для чтения из БД
// Поддерживает TIME колонки postgres (приходят как "10:00:00") и строки HH:MM
func (t *TimeString) Scan(src interface{}) error {
	if src == nil {
		*t = ""
		return nil
	}

	switch v := src.(type) {
	case string:
		return t.scanString(v)
	case []byte:
		return t.scanString(string(v))
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTimeFormat, src)
	}
}

func (t *TimeString) scanString(s string) error {
	// Отбрасываем секунды, если колонка типа TIME ("10:00:00")
	if len(s) == 8 && s[5] == ':' {
		s = s[:5]
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
