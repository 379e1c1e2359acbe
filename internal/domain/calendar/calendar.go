package calendar

import (
	"strconv"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
)

var ErrMalformedDate = crerr.New("malformed date")

const (
	layoutDayMonthYear      = "02/01/2006"
	layoutShortDayMonthYear = "2/1/2006"
)

var monthNames = [12]string{
	"Janeiro",
	"Fevereiro",
	"Marco",
	"Abril",
	"Maio",
	"Junho",
	"Julho",
	"Agosto",
	"Setembro",
	"Outubro",
	"Novembro",
	"Dezembro",
}

var monthAbbreviations = [12]string{
	"Jan", "Fev", "Mar", "Abr", "Mai", "Jun",
	"Jul", "Ago", "Set", "Out", "Nov", "Dez",
}

// Date is a match day with the derived month and year fields used for grouping.
type Date struct {
	Time      time.Time
	Month     time.Month
	MonthName string
	Year      string
}

// Parse reads a dd/mm/yyyy date.
func Parse(raw string) (Date, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return Date{}, crerr.Wrap(ErrMalformedDate, "date is empty")
	}

	t, err := time.Parse(layoutDayMonthYear, value)
	if err != nil {
		t, err = time.Parse(layoutShortDayMonthYear, value)
	}
	if err != nil {
		return Date{}, crerr.Wrapf(ErrMalformedDate, "parse date %q, expected dd/mm/yyyy", value)
	}

	return FromTime(t), nil
}

func FromTime(t time.Time) Date {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return Date{
		Time:      day,
		Month:     day.Month(),
		MonthName: MonthName(day.Month()),
		Year:      strconv.Itoa(day.Year()),
	}
}

func (d Date) IsZero() bool {
	return d.Time.IsZero()
}

// Key identifies the match day, used to join goal events to matches.
func (d Date) Key() string {
	return d.Time.Format("2006-01-02")
}

func (d Date) String() string {
	return d.Time.Format(layoutDayMonthYear)
}

func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return monthNames[m-1]
}

func MonthAbbreviation(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return monthAbbreviations[m-1]
}

// MonthOrder returns the month names in calendar order.
func MonthOrder() []string {
	return append([]string(nil), monthNames[:]...)
}

// ParseMonthName resolves a month name, with or without accents, or a month number.
func ParseMonthName(name string) (time.Month, bool) {
	value := strings.ToLower(strings.TrimSpace(name))
	if value == "" {
		return 0, false
	}
	value = strings.ReplaceAll(value, "ç", "c")

	if n, err := strconv.Atoi(value); err == nil {
		if n >= 1 && n <= 12 {
			return time.Month(n), true
		}
		return 0, false
	}

	for i := range monthNames {
		if value == strings.ToLower(monthNames[i]) || value == strings.ToLower(monthAbbreviations[i]) {
			return time.Month(i + 1), true
		}
	}
	return 0, false
}
