package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/lmercier/dealdesk/internal/deal"
)

// ErrUnreadable reports that the CSV stream itself could not be
// tokenized (binary content, broken quoting, empty file). Bad values
// inside a readable stream never trigger it.
var ErrUnreadable = errors.New("unreadable csv stream")

// ErrNotCSV reports that an uploaded file name does not carry the
// .csv extension. Checked before any parsing happens.
var ErrNotCSV = errors.New("not a csv file")

// CheckFilename rejects uploads that are not named *.csv.
func CheckFilename(name string) error {
	if !strings.EqualFold(filepath.Ext(name), ".csv") {
		return fmt.Errorf("%w: %q", ErrNotCSV, name)
	}
	return nil
}

// Normalize parses a CSV stream with a header row into canonical deal
// records, one per non-blank data row, preserving input order. It
// fails only when the stream cannot be tokenized at all; a readable
// row with missing or garbage fields degrades field by field to its
// type default. now is the ingestion timestamp used for unparseable
// dates.
func Normalize(r io.Reader, now time.Time) ([]deal.Deal, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	cols := indexColumns(header)

	var deals []deal.Deal
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
		}
		if blankRecord(record) {
			continue
		}
		deals = append(deals, mapRecord(cols, record, len(deals), now))
	}
	return deals, nil
}

// mapRecord coerces one CSV record into a Deal. index is the record's
// zero-based position among kept rows, used as the id of last resort.
func mapRecord(cols map[string]int, record []string, index int, now time.Time) deal.Deal {
	r := row{cols: cols, record: record}

	id := r.field("id")
	if id == "" {
		id = strconv.Itoa(index)
	}
	stage := r.field("pipelineStage")
	if stage == "" {
		stage = string(deal.StageLead)
	}

	return deal.Deal{
		ID:               id,
		CreatedDate:      parseDateOr(r.field("createdDate"), now),
		FirstName:        r.field("firstName"),
		LastName:         r.field("lastName"),
		Email:            r.field("email"),
		Company:          r.field("company"),
		Industry:         r.field("industry"),
		CompanySize:      r.field("companySize"),
		Country:          r.field("country"),
		LeadSource:       r.field("leadSource"),
		Status:           r.field("status"),
		Owner:            r.field("owner"),
		DealValue:        parseValue(r.field("dealValue")),
		PipelineStage:    deal.Stage(stage),
		LastContactDate:  parseDateOr(r.field("lastContactDate"), now),
		NextFollowupDate: parseDateOr(r.field("nextFollowupDate"), now),
		Tags:             parseTags(r.field("tags")),
	}
}

func blankRecord(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
