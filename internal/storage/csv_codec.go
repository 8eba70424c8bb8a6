package storage

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/julianstephens/wellday/internal/constants"
	"github.com/julianstephens/wellday/internal/models"
)

// EncodeEntry renders an entry as a log row in LogHeader column order.
func EncodeEntry(e models.DailyEntry) []string {
	return []string{
		e.Date,
		e.Mood.Symbol(),
		strconv.Itoa(e.Productivity),
		FormatDecimal(e.SleepHours),
		FormatDecimal(e.ScreenTime),
		FormatDecimal(e.WellnessScore),
		e.MicroHabit,
	}
}

// FormatDecimal writes the shortest representation that parses back to v, always
// with a fractional part ("8.0", "7.35").
func FormatDecimal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// columnIndex maps each LogHeader column to its position in header.
func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		// strip a UTF-8 BOM left by spreadsheet exports
		idx[strings.TrimPrefix(strings.TrimSpace(name), "\ufeff")] = i
	}
	for _, col := range constants.LogHeader {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("missing column %q in header", col)
		}
	}
	return idx, nil
}

// DecodeEntry parses one log row using the column positions from the header.
func DecodeEntry(record []string, idx map[string]int) (models.DailyEntry, error) {
	field := func(name string) string {
		i := idx[name]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var e models.DailyEntry
	var err error

	e.Date = field("date")
	if e.Date == "" {
		return e, fmt.Errorf("empty date")
	}
	if e.Mood, err = models.ParseMood(field("mood")); err != nil {
		return e, err
	}
	if e.Productivity, err = parseInt(field("productivity")); err != nil {
		return e, fmt.Errorf("productivity: %w", err)
	}
	if e.SleepHours, err = strconv.ParseFloat(field("sleep_hours"), 64); err != nil {
		return e, fmt.Errorf("sleep_hours: %w", err)
	}
	if e.ScreenTime, err = strconv.ParseFloat(field("screen_time"), 64); err != nil {
		return e, fmt.Errorf("screen_time: %w", err)
	}
	if e.WellnessScore, err = strconv.ParseFloat(field("wellness_score"), 64); err != nil {
		return e, fmt.Errorf("wellness_score: %w", err)
	}
	e.MicroHabit = field("micro_habit")
	return e, nil
}

// parseInt accepts "7" as well as "7.0", which some spreadsheet tools write.
func parseInt(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != float64(int(f)) {
		return 0, fmt.Errorf("%q is not a whole number", s)
	}
	return int(f), nil
}
