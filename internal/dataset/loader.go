// Package dataset loads conversation transcripts from spreadsheet files for
// batch analysis.
package dataset

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Record is one conversation row from a dataset sheet.
type Record struct {
	ConversationID string `json:"conversation_id"`
	Domain         string `json:"domain,omitempty"`
	Transcript     string `json:"transcript"`
}

// Load reads conversation records from the first sheet, auto-detecting the
// transcript, id and domain columns by header heuristics. Rows without a
// usable transcript are skipped quietly.
func Load(path string) ([]Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) <= 1 {
		return nil, fmt.Errorf("no data rows")
	}

	header := rows[0]
	transcriptIdx := -1
	idIdx := -1
	domainIdx := -1
	for i, h := range header {
		l := strings.ToLower(strings.TrimSpace(h))
		switch {
		case transcriptIdx == -1 && (strings.Contains(l, "transcript") || strings.Contains(l, "conversation") || strings.Contains(l, "text")):
			transcriptIdx = i
		case idIdx == -1 && strings.Contains(l, "id"):
			idIdx = i
		case domainIdx == -1 && (strings.Contains(l, "domain") || strings.Contains(l, "category")):
			domainIdx = i
		}
	}
	if transcriptIdx == -1 {
		// common position when headers are unlabeled
		if len(header) > 1 {
			transcriptIdx = 1
		} else {
			transcriptIdx = 0
		}
	}

	var out []Record
	for i, r := range rows {
		if i == 0 {
			continue
		}
		rec := Record{}
		if idIdx >= 0 && idIdx < len(r) {
			rec.ConversationID = strings.TrimSpace(r[idIdx])
		}
		if rec.ConversationID == "" {
			rec.ConversationID = fmt.Sprintf("row_%d", i+1)
		}
		if domainIdx >= 0 && domainIdx < len(r) {
			rec.Domain = strings.TrimSpace(r[domainIdx])
		}
		if transcriptIdx < len(r) {
			rec.Transcript = strings.TrimSpace(r[transcriptIdx])
		}
		// a transcript without a single speaker delimiter can't be analyzed
		if rec.Transcript == "" || !strings.Contains(rec.Transcript, ":") {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}
