package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimeString возвращается при некорректном формате времени
var ErrInvalidTimeString = errors.New("invalid time string format, expected HH:MM")

// TimeString время суток в формате "HH:MM" (без даты и секунд)
// Используется для хранения времени начала слотов, смен и перерывов
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывает дату и секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString парсит строку "HH:MM" в TimeString
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		// Базы данных часто возвращают время с секундами
		t, err = time.Parse("15:04:05", s)
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
		}
	}
	return TimeString(t.Format("15:04")), nil
}

// NewTimeStringFromMinutes создает TimeString из количества минут с начала суток
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= 24*60 {
		return "", fmt.Errorf("%w: %d minutes is out of day range", ErrInvalidTimeString, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// Validate проверяет, что значение соответствует формату "HH:MM"
func (t TimeString) Validate() error {
	if _, err := time.Parse("15:04", string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsZero возвращает true, если значение не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Minutes возвращает количество минут с начала суток
// Для некорректного значения возвращает ошибку
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse("15:04", string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes возвращает новое время, сдвинутое на minutes минут вперед
// Выход за границы суток считается ошибкой (смены не пересекают полночь)
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	current, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(current + minutes)
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из БД
// Поддерживает строки, []byte и time.Time (колонки типа TIME)
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported source type %T", ErrInvalidTimeString, src)
	}
}
