package builder

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-uibuilder/pkg/host"
	"github.com/goliatone/go-uibuilder/pkg/logging"
	"github.com/goliatone/go-uibuilder/pkg/model"
)

// PopulateSublist writes each spec's rows into the named sublist of form.
// The row index is the line number. Only keys accepted by the column matcher
// are written; others are skipped silently. A sublist the form does not have
// is skipped without error.
func (b *Builder) PopulateSublist(form host.Form, specs []model.SublistValuesSpec) (host.Form, Report) {
	report := Report{Operation: "populate", Total: len(specs)}
	if b.traceOptions {
		b.logger.Debug("sublist values", logging.Details(specs))
	}
	for i, spec := range specs {
		list, ok := form.GetSublist(spec.SublistID)
		if !ok || list == nil {
			b.logger.Debug("populate sublist", fmt.Sprintf("sublist %q not found, skipping", spec.SublistID))
			report.Items = append(report.Items, ItemResult{Index: i, ID: spec.SublistID, Skipped: true})
			continue
		}

		field, err := b.populateRows(list, spec)
		report.Items = append(report.Items, ItemResult{Index: i, ID: spec.SublistID, Err: err})
		if err == nil {
			continue
		}
		b.logger.Error(populateTitle(spec.SublistID, field), err.Error())
		if b.policy == AbortOnError {
			report.Aborted = i < len(specs)-1
			break
		}
	}
	return form, report
}

// populateRows returns the field id being written when the first failure
// happened, for the log title.
func (b *Builder) populateRows(list host.Sublist, spec model.SublistValuesSpec) (string, error) {
	var (
		errs      []error
		lastField string
		failed    string
	)
	for line, row := range spec.Values {
		for _, cell := range row {
			if !b.matchColumn(cell.Key) {
				continue
			}
			lastField = cell.Key
			err := guard(func() error {
				return list.SetSublistValue(host.SublistValue{ID: cell.Key, Line: line, Value: cell.Value})
			})
			if err == nil {
				continue
			}
			err = fmt.Errorf("line %d: %w", line, err)
			if b.policy == AbortOnError {
				return lastField, err
			}
			if failed == "" {
				failed = lastField
			}
			errs = append(errs, err)
		}
	}
	return failed, errors.Join(errs...)
}

func populateTitle(sublistID, fieldID string) string {
	return fmt.Sprintf("error in populating sublist: %s on field: %s", sublistID, fieldID)
}
