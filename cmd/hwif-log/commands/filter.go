package commands

import (
	"fmt"
	"time"

	"github.com/openhwif/hwif-go/pkg/log"
)

// FilterOptions holds the raw filter flags shared by the view command.
type FilterOptions struct {
	RunID     string
	Component string
	Category  string
	TimeStart string
	TimeEnd   string
}

// Build parses the options into a log.Filter.
func (o FilterOptions) Build() (log.Filter, error) {
	filter := log.Filter{
		RunID:     o.RunID,
		Component: o.Component,
	}

	if o.Category != "" {
		c, err := log.ParseCategory(o.Category)
		if err != nil {
			return log.Filter{}, err
		}
		filter.Category = &c
	}

	if o.TimeStart != "" {
		t, err := time.Parse(time.RFC3339, o.TimeStart)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid time-start format: %w", err)
		}
		filter.TimeStart = &t
	}

	if o.TimeEnd != "" {
		t, err := time.Parse(time.RFC3339, o.TimeEnd)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid time-end format: %w", err)
		}
		filter.TimeEnd = &t
	}

	return filter, nil
}
