// Package dataset loads the accommodation and transport spreadsheets into
// typed in-memory tables, applying locale normalization and schema detection.
package dataset

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"tamvonku/travel-stats/internal/currencyutils"
	"tamvonku/travel-stats/internal/dataerror"
	"tamvonku/travel-stats/internal/dateutils"
	"tamvonku/travel-stats/internal/models"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Loader reads the source spreadsheets. When caching is enabled a loaded
// table is reused until the file's size or modification time changes.
type Loader struct {
	stayCache map[string]stayCacheEntry
	legCache  map[string]legCacheEntry
}

// NewLoader creates a Loader. Pass cacheEnabled=false to re-read files on
// every call.
func NewLoader(cacheEnabled bool) *Loader {
	l := &Loader{}
	if cacheEnabled {
		l.stayCache = make(map[string]stayCacheEntry)
		l.legCache = make(map[string]legCacheEntry)
	}
	return l
}

// LoadStays reads the accommodation file into a Table. A missing file yields
// a typed FileNotFoundError and an empty table; parse failures at row level
// null the affected field instead of dropping the row.
func (l *Loader) LoadStays(path string) (Table, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Table{}, &dataerror.FileNotFoundError{FilePath: path}
		}
		return Table{}, &dataerror.LoadError{FilePath: path, Stage: "stat", Err: err}
	}

	if cached, ok := l.cachedStays(path, info); ok {
		log.WithField("file", path).Debug("Serving stays from cache")
		return cached, nil
	}

	file, err := os.Open(path) // #nosec G304 -- file paths come from user flags
	if err != nil {
		return Table{}, &dataerror.LoadError{FilePath: path, Stage: "open", Err: err}
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	table, err := parseStays(file)
	if err != nil {
		return Table{}, &dataerror.LoadError{FilePath: path, Stage: "parse", Err: err}
	}

	log.WithFields(logrus.Fields{
		"file":  path,
		"count": table.Len(),
	}).Info("Loaded accommodation data")

	l.storeStays(path, info, table)
	return table, nil
}

// parseStays reads the accommodation CSV from a reader. The header row is
// mapped by name, the schema is resolved once, and each row becomes a Stay
// with locale-normalized fields.
func parseStays(r io.Reader) (Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return Table{}, nil
		}
		return Table{}, err
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	schema := DetectSchema(header)
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[h] = i
	}

	var stays []models.Stay
	rowNum := 0
	for {
		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				log.WithError(err).Warn("Skipping malformed CSV row")
				continue
			}
			// a non-parse error (broken reader) repeats on every call
			return Table{}, err
		}

		field := func(name string) string {
			i, ok := index[name]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		stay := models.Stay{
			ID:            rowNum,
			Accommodation: field("accommodation"),
			Country:       field("country"),
			Platform:      field(schema.Platform),
		}

		if v := field("id"); v != "" {
			if id, err := strconv.Atoi(v); err == nil {
				stay.ID = id
			}
		}

		stay.Location = field("location")
		if stay.Location == "" {
			stay.Location = field("city")
		}

		stay.CheckIn = parseStayDateField(field("check in"), "check in")
		stay.CheckOut = parseStayDateField(field("check out"), "check out")
		if stay.CheckIn.IsZero() && schema.Date != "" && schema.Date != "check in" && schema.Date != "check out" {
			// datasets without check-in carry a generic date column instead
			stay.CheckIn = parseStayDateField(field(schema.Date), schema.Date)
		}

		stay.Nights = parseNumericField(field("nights"), "nights")
		persons := field("persons")
		if persons == "" {
			persons = field("number of persons")
		}
		stay.Persons = parseNumericField(persons, "persons")
		if schema.HasCost() {
			stay.TotalPrice = parseNumericField(field(schema.Cost), schema.Cost)
		}

		if schema.HasCountry && schema.HasLocation {
			stay.Destination = models.JoinDestination(stay.Location, stay.Country)
		} else if schema.Destination == "destination" {
			// literal destination column, no derived join to build
			stay.Destination = field("destination")
		}

		stays = append(stays, stay)
		rowNum++
	}

	return Table{Stays: stays, Schema: schema}, nil
}

func parseStayDateField(value, column string) time.Time {
	t, err := dateutils.ParseStayDate(value)
	if err != nil {
		log.WithError(&dataerror.FieldParseError{Field: column, Value: value, Err: err}).
			Warn("Date did not parse, field left empty")
	}
	return t
}

func parseNumericField(value, column string) decimal.NullDecimal {
	if value == "" {
		return decimal.NullDecimal{}
	}
	parsed, err := currencyutils.ParseAmount(value)
	if err != nil {
		log.WithError(&dataerror.FieldParseError{Field: column, Value: value, Err: err}).
			Warn("Numeric value did not parse, field left empty")
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: parsed, Valid: true}
}

// LoadLegs reads the transport file into Leg records. The price column is
// locale-normalized and the date column's format is auto-detected.
func (l *Loader) LoadLegs(path string) ([]models.Leg, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &dataerror.FileNotFoundError{FilePath: path}
		}
		return nil, &dataerror.LoadError{FilePath: path, Stage: "stat", Err: err}
	}

	if cached, ok := l.cachedLegs(path, info); ok {
		log.WithField("file", path).Debug("Serving legs from cache")
		return cached, nil
	}

	rows, err := readCSVFile[models.TransportRow](path)
	if err != nil {
		return nil, &dataerror.LoadError{FilePath: path, Stage: "parse", Err: err}
	}

	legs := make([]models.Leg, 0, len(rows))
	for _, row := range rows {
		leg := models.Leg{
			Type:           strings.TrimSpace(row.Type),
			From:           strings.TrimSpace(row.From),
			To:             strings.TrimSpace(row.To),
			PricePerPerson: currencyutils.ParseNullAmount(row.Price),
		}

		if date, err := dateutils.ParseDateString(row.Date); err == nil {
			leg.Date = date
		} else {
			log.WithError(err).WithField("value", row.Date).
				Warn("Transport date did not parse, field left empty")
		}

		legs = append(legs, leg)
	}

	log.WithFields(logrus.Fields{
		"file":  path,
		"count": len(legs),
	}).Info("Loaded transport data")

	l.storeLegs(path, info, legs)
	return legs, nil
}
