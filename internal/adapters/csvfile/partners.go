// Package csvfile loads partner records from the fixed-layout
// partner CSV export.
package csvfile

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/prairiefare/partnermap/internal/core/domain"
)

var (
	// ErrMissingColumn means a mandatory header is absent.
	ErrMissingColumn = errors.New("missing column")
	// ErrBadPosition means a row has a missing or unparseable
	// longitude/latitude. A mapped point without coordinates is
	// meaningless, so this fails the whole load.
	ErrBadPosition = errors.New("bad position")
)

// requiredColumns must all be present in the header. The optional
// columns (address_2, dates, days, hours, website, notes...) may be
// absent entirely; their fields stay empty.
var requiredColumns = []string{"name", "address_1", "category", "longitude", "latitude"}

// PartnerSource reads partners from a CSV file on disk.
type PartnerSource struct {
	path string
}

// New creates a PartnerSource for the given file path.
func New(path string) *PartnerSource {
	return &PartnerSource{path: path}
}

// Load parses the file, one row per record. Column order is
// irrelevant; headers are matched by name. Any row with a bad
// position aborts the load.
func (s *PartnerSource) Load(ctx context.Context) ([]domain.Partner, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open partners file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(bufio.NewReader(f))
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := indexColumns(header)
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	var partners []domain.Partner
	row := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row+1, err)
		}
		row++

		lon, lonErr := strconv.ParseFloat(getField(record, cols, "longitude"), 64)
		lat, latErr := strconv.ParseFloat(getField(record, cols, "latitude"), 64)
		if lonErr != nil || latErr != nil {
			return nil, fmt.Errorf("row %d: %w", row, ErrBadPosition)
		}

		partners = append(partners, domain.Partner{
			Name:     getField(record, cols, "name"),
			Address1: getField(record, cols, "address_1"),
			Address2: getField(record, cols, "address_2"),
			City:     getField(record, cols, "city"),
			State:    getField(record, cols, "state"),
			Zip:      getField(record, cols, "zip"),
			Category: getField(record, cols, "category"),
			Dates:    getField(record, cols, "dates"),
			Days:     getField(record, cols, "days"),
			Hours:    getField(record, cols, "hours"),
			Website:  getField(record, cols, "website"),
			Notes:    getField(record, cols, "notes"),
			Location: domain.GeoPoint{Lat: lat, Lon: lon},
		})
	}

	return partners, nil
}

func indexColumns(header []string) map[string]int {
	m := make(map[string]int, len(header))
	for i, col := range header {
		// Strip BOM from first column
		col = strings.TrimPrefix(col, "\xef\xbb\xbf")
		m[strings.ToLower(strings.TrimSpace(col))] = i
	}
	return m
}

func getField(record []string, cols map[string]int, name string) string {
	idx, ok := cols[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
