package builder

import (
	"errors"
	"fmt"
)

// ItemResult records the outcome of one item of a collection. Skipped is set
// when the item was intentionally not applied, for example rows for a
// sublist the form does not have.
type ItemResult struct {
	Index   int
	ID      string
	Err     error
	Skipped bool
}

// Report collects per-item outcomes for one operation call. Items holds only
// attempted items; Total is the size of the input collection.
type Report struct {
	Operation string
	Total     int
	Items     []ItemResult
	Aborted   bool
}

// Applied counts items that succeeded and were not skipped.
func (r Report) Applied() int {
	count := 0
	for _, item := range r.Items {
		if item.Err == nil && !item.Skipped {
			count++
		}
	}
	return count
}

// Failed counts items that returned an error.
func (r Report) Failed() int {
	count := 0
	for _, item := range r.Items {
		if item.Err != nil {
			count++
		}
	}
	return count
}

// Err joins every item failure, prefixed with the operation and item id.
// It returns nil when nothing failed.
func (r Report) Err() error {
	var errs []error
	for _, item := range r.Items {
		if item.Err == nil {
			continue
		}
		errs = append(errs, fmt.Errorf("%s[%d] %q: %w", r.Operation, item.Index, item.ID, item.Err))
	}
	return errors.Join(errs...)
}

// Reports is the ordered set of reports produced by Build.
type Reports []Report

// Err joins the failures of every report.
func (rs Reports) Err() error {
	var errs []error
	for _, r := range rs {
		if err := r.Err(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Failed counts failed items across all reports.
func (rs Reports) Failed() int {
	total := 0
	for _, r := range rs {
		total += r.Failed()
	}
	return total
}
