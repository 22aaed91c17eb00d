package ingest

import (
	"math"
	"strconv"
	"strings"
)

// fieldAliases maps each logical deal field to the header spellings
// accepted for it. Aliases are probed in order and the first column
// holding a non-empty value wins; a field whose columns are all
// absent or empty takes its type default.
var fieldAliases = map[string][]string{
	"id":               {"id", "ID", "Lead_ID", "lead_id"},
	"createdDate":      {"createdDate", "Created Date", "created_date", "Created_Date"},
	"firstName":        {"firstName", "First Name", "first_name", "First_Name"},
	"lastName":         {"lastName", "Last Name", "last_name", "Last_Name"},
	"email":            {"email", "Email"},
	"company":          {"company", "Company"},
	"industry":         {"industry", "Industry"},
	"companySize":      {"companySize", "Company Size", "company_size", "Company_Size"},
	"country":          {"country", "Country"},
	"leadSource":       {"leadSource", "Lead Source", "lead_source", "Lead_Source"},
	"status":           {"status", "Status"},
	"owner":            {"owner", "Owner"},
	"dealValue":        {"dealValue", "Deal Value", "deal_value", "Deal_Value"},
	"pipelineStage":    {"pipelineStage", "Pipeline Stage", "pipeline_stage", "Pipeline_Stage"},
	"lastContactDate":  {"lastContactDate", "Last Contact Date", "last_contact_date", "Last_Contact_Date"},
	"nextFollowupDate": {"nextFollowupDate", "Next Followup Date", "next_followup_date", "Next_Followup_Date"},
	"tags":             {"tags", "Tags"},
}

// indexColumns maps header names to their column index. The first
// occurrence wins when a header repeats. A UTF-8 BOM on the first
// cell is stripped so the column still matches its alias.
func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\uFEFF")
		}
		if _, ok := cols[name]; !ok {
			cols[name] = i
		}
	}
	return cols
}

// row resolves logical fields against one CSV record using the header
// index built from the file's actual column names.
type row struct {
	cols   map[string]int
	record []string
}

func (r row) field(name string) string {
	for _, alias := range fieldAliases[name] {
		if idx, ok := r.cols[alias]; ok && idx < len(r.record) {
			if v := r.record[idx]; v != "" {
				return v
			}
		}
	}
	return ""
}

// parseValue reads a deal value as a float. Anything unparseable
// becomes 0; negative values pass through untouched.
func parseValue(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// parseTags splits a delimited tag field on comma, semicolon or pipe,
// trimming whitespace, dropping empty tokens and keeping order and
// duplicates.
func parseTags(s string) []string {
	if s == "" {
		return nil
	}
	var tags []string
	for _, tok := range strings.FieldsFunc(s, isTagDelimiter) {
		if tok = strings.TrimSpace(tok); tok != "" {
			tags = append(tags, tok)
		}
	}
	return tags
}

func isTagDelimiter(r rune) bool {
	return r == ',' || r == ';' || r == '|'
}
