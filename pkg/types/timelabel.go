package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// timeLabelLayout формат меток времени каталога слотов (12-часовой формат)
const timeLabelLayout = "03:04 PM"

// rangeSeparator разделитель в строке диапазона "09:00 AM - 10:00 AM"
const rangeSeparator = " - "

var (
	// ErrInvalidTimeLabel возвращается при некорректном формате метки времени
	ErrInvalidTimeLabel = errors.New("types: invalid time label format, expected hh:mm AM/PM")

	// ErrInvalidTimeRange возвращается при некорректном формате диапазона времени
	ErrInvalidTimeRange = errors.New("types: invalid time range format, expected \"hh:mm AM/PM - hh:mm AM/PM\"")
)

// TimeLabel метка времени слота в том виде, в котором она хранится в каталоге
// (например, "09:00 AM"). Сравнение с каталогом выполняется по точному
// совпадению строки, поэтому метка нормализуется при создании.
type TimeLabel string

// NewTimeLabelFromString парсит и нормализует метку времени
func NewTimeLabelFromString(s string) (TimeLabel, error) {
	t, err := time.Parse(timeLabelLayout, strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeLabel, s)
	}
	return TimeLabel(t.Format(timeLabelLayout)), nil
}

// String возвращает строковое представление метки
func (t TimeLabel) String() string {
	return string(t)
}

// IsZero проверяет, что метка не задана
func (t TimeLabel) IsZero() bool {
	return t == ""
}

// Validate проверяет, что метка соответствует формату каталога
func (t TimeLabel) Validate() error {
	_, err := time.Parse(timeLabelLayout, string(t))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeLabel, string(t))
	}
	return nil
}

// Minutes возвращает количество минут с начала суток
// Используется для упорядочивания слотов
func (t TimeLabel) Minutes() (int, error) {
	parsed, err := time.Parse(timeLabelLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeLabel, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// IsBefore проверяет, что метка строго раньше другой
// Некорректные метки считаются несравнимыми и возвращают false
func (t TimeLabel) IsBefore(other TimeLabel) bool {
	a, err := t.Minutes()
	if err != nil {
		return false
	}
	b, err := other.Minutes()
	if err != nil {
		return false
	}
	return a < b
}

// SplitTimeRange разбирает строку диапазона "09:00 AM - 10:00 AM"
// на нормализованные метки начала и конца
func SplitTimeRange(s string) (start, end TimeLabel, err error) {
	parts := strings.SplitN(s, rangeSeparator, 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidTimeRange, s)
	}

	start, err = NewTimeLabelFromString(parts[0])
	if err != nil {
		return "", "", err
	}

	end, err = NewTimeLabelFromString(parts[1])
	if err != nil {
		return "", "", err
	}

	if !start.IsBefore(end) {
		return "", "", fmt.Errorf("%w: start %q is not before end %q", ErrInvalidTimeRange, start, end)
	}

	return start, end, nil
}
