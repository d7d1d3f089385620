// Package export writes stay and summary data back out as CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"tamvonku/travel-stats/internal/dateutils"
	"tamvonku/travel-stats/internal/fileutils"
	"tamvonku/travel-stats/internal/models"
)

var log = logrus.New()

// Delimiter is the output field separator, configurable via SetDelimiter.
var Delimiter rune = ','

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger == nil {
		return
	}
	log = logger
}

// SetDelimiter sets the delimiter for CSV output
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// stayRecord is the output row shape. The tags carry the source file's
// headers so an exported file round-trips through the loader; the derived
// destination column is omitted since the loader re-derives it from country
// and location on reload.
type stayRecord struct {
	Accommodation string `csv:"accommodation"`
	Country       string `csv:"country"`
	Location      string `csv:"location"`
	CheckIn       string `csv:"check in"`
	CheckOut      string `csv:"check out"`
	Nights        string `csv:"nights"`
	TotalPrice    string `csv:"total price of stay"`
	Persons       string `csv:"persons"`
	Platform      string `csv:"platform"`
}

// DefaultFilename returns the date-stamped name used when no output path is
// given, e.g. filtered_accommodation_data_20260829.csv.
func DefaultFilename(now time.Time) string {
	return fmt.Sprintf("filtered_accommodation_data_%s.csv", now.Format("20060102"))
}

// WriteStays writes the stays to csvFile as UTF-8 CSV with the configured
// delimiter. Dates render as DD.MM.YYYY; numeric fields render with two
// decimal places, invalid values as empty cells.
func WriteStays(stays []models.Stay, csvFile string) error {
	if stays == nil {
		return fmt.Errorf("cannot write nil stays to CSV")
	}

	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"count": len(stays),
	}).Info("Writing stays to CSV file")

	records := make([]stayRecord, 0, len(stays))
	for _, stay := range stays {
		records = append(records, stayRecord{
			Accommodation: stay.Accommodation,
			Country:       stay.Country,
			Location:      stay.Location,
			CheckIn:       dateutils.ToEuropean(stay.CheckIn),
			CheckOut:      dateutils.ToEuropean(stay.CheckOut),
			Nights:        formatNullDecimal(stay.Nights),
			TotalPrice:    formatNullDecimal(stay.TotalPrice),
			Persons:       formatNullDecimal(stay.Persons),
			Platform:      stay.Platform,
		})
	}

	return writeRecords(records, csvFile)
}

// WriteCountrySummary writes the per-country summary rows to csvFile.
func WriteCountrySummary(rows []models.CountrySummary, csvFile string) error {
	if rows == nil {
		return fmt.Errorf("cannot write nil summary rows to CSV")
	}

	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"count": len(rows),
	}).Info("Writing country summary to CSV file")

	return writeRecords(rows, csvFile)
}

func writeRecords[T any](records []T, csvFile string) error {
	if err := fileutils.EnsureDirectoryExists(filepath.Dir(csvFile)); err != nil {
		log.WithError(err).Error("Failed to create directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile) // #nosec G304 -- output path chosen by the user
	if err != nil {
		log.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(&records, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		log.WithError(err).Error("Failed to marshal records to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"count": len(records),
	}).Info("Successfully wrote CSV file")

	return nil
}

func formatNullDecimal(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.StringFixed(2)
}
