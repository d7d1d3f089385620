// Package common contains shared functionality for command handlers
package common

import (
	"errors"
	"fmt"

	"tamvonku/travel-stats/internal/dataerror"
	"tamvonku/travel-stats/internal/dataset"
	"tamvonku/travel-stats/internal/dateutils"

	"github.com/sirupsen/logrus"
)

// BuildFilter turns the shared filter flags into a dataset.Filter. Date flags
// use the same DD.MM.YYYY format as the source files.
func BuildFilter(from, to string, countries, platforms []string) (dataset.Filter, error) {
	var f dataset.Filter

	if from != "" {
		start, err := dateutils.ParseStayDate(from)
		if err != nil {
			return f, fmt.Errorf("invalid --from date %q, expected DD.MM.YYYY: %w", from, err)
		}
		f.Dates.Start = start
	}
	if to != "" {
		end, err := dateutils.ParseStayDate(to)
		if err != nil {
			return f, fmt.Errorf("invalid --to date %q, expected DD.MM.YYYY: %w", to, err)
		}
		f.Dates.End = end
	}
	if !f.Dates.IsZero() && !f.Dates.Start.IsZero() && !f.Dates.End.IsZero() && f.Dates.End.Before(f.Dates.Start) {
		return f, fmt.Errorf("--to date %q is before --from date %q", to, from)
	}

	f.Countries = countries
	f.Platforms = platforms
	return f, nil
}

// LoadStays loads the accommodation table and applies the filter. A missing
// or unreadable file is reported to the user and degrades to an empty table
// so every command renders its empty state instead of crashing.
func LoadStays(loader *dataset.Loader, path string, filter dataset.Filter, log *logrus.Logger) dataset.Table {
	table, err := loader.LoadStays(path)
	if err != nil {
		var notFound *dataerror.FileNotFoundError
		if errors.As(err, &notFound) {
			log.Errorf("Accommodation file not found: %s", path)
		} else {
			log.WithError(err).Errorf("Failed to load accommodation file: %s", path)
		}
		return dataset.Table{}
	}
	return filter.Apply(table)
}
