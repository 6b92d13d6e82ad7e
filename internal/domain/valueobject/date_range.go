package valueobject

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// DateRange covers whole UTC days. Start and End are both midnight; End is
// the last day included, so the covered instants are [Start, Until()).
type DateRange struct {
	Start time.Time
	End   time.Time
}

func ParseDateRange(start, end string) (*DateRange, error) {
	s, err := time.ParseInLocation(DateLayout, start, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("parsing start date: %w", err)
	}
	e, err := time.ParseInLocation(DateLayout, end, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("parsing end date: %w", err)
	}

	return &DateRange{
		Start: s,
		End:   e,
	}, nil
}

// Until is the exclusive upper bound: midnight after End.
func (r *DateRange) Until() time.Time {
	return r.End.AddDate(0, 0, 1)
}

func (r *DateRange) IsValid() bool {
	return !r.Start.After(r.End)
}
