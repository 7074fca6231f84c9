// Package ingest parses CSV exports from the upstream ITSM tool into raw
// rows. It is the file-format collaborator in front of the normalization
// engine: columns are located by tolerant header matching, unknown columns
// are ignored, and field values pass through untouched.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spec-kit/incident-dashboard/internal/domain"
)

// Incidents reads an incident export. Only the header row is required; rows
// with missing cells yield empty fields for normalization to repair.
func Incidents(r io.Reader) ([]domain.RawIncident, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	columns := normalizeHeaders(headers)

	numberIdx, ok := findColumn(columns, []string{"number", "ticket", "incidentnumber"})
	if !ok {
		return nil, errors.New("missing number column")
	}
	descIdx, _ := findColumn(columns, []string{"shortdescription", "description"})
	callerIdx, _ := findColumn(columns, []string{"caller", "solicitante"})
	categoryIdx, _ := findColumn(columns, []string{"category", "categoria"})
	groupIdx, _ := findColumn(columns, []string{"assignmentgroup", "grupo"})
	assignedIdx, _ := findColumn(columns, []string{"assignedto", "atribuidoa"})
	locationIdx, _ := findColumn(columns, []string{"location", "localidade"})
	openedIdx, _ := findColumn(columns, []string{"opened", "abertura", "openedat"})
	updatedIdx, _ := findColumn(columns, []string{"updated", "atualizado", "updatedat"})
	stateIdx, _ := findColumn(columns, []string{"state", "status", "estado"})
	priorityIdx, _ := findColumn(columns, []string{"priority", "prioridade"})

	var rows []domain.RawIncident
	for {
		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row: %w", err)
		}
		if len(record) == 0 {
			continue
		}

		rows = append(rows, domain.RawIncident{
			Number:           getValue(record, numberIdx),
			ShortDescription: getValue(record, descIdx),
			Caller:           getValue(record, callerIdx),
			Category:         getValue(record, categoryIdx),
			AssignmentGroup:  getValue(record, groupIdx),
			AssignedTo:       getValue(record, assignedIdx),
			Location:         getValue(record, locationIdx),
			Opened:           getValue(record, openedIdx),
			Updated:          getValue(record, updatedIdx),
			State:            getValue(record, stateIdx),
			Priority:         getValue(record, priorityIdx),
		})
	}
	return rows, nil
}

// Requests reads a request export. Requests are counted, not normalized, so
// only the number and opened columns are carried.
func Requests(r io.Reader) ([]domain.Request, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	columns := normalizeHeaders(headers)

	numberIdx, ok := findColumn(columns, []string{"number", "ticket", "requestnumber"})
	if !ok {
		return nil, errors.New("missing number column")
	}
	openedIdx, _ := findColumn(columns, []string{"opened", "abertura", "openedat"})

	var rows []domain.Request
	for {
		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row: %w", err)
		}
		if len(record) == 0 {
			continue
		}
		rows = append(rows, domain.Request{
			Number: getValue(record, numberIdx),
			Opened: getValue(record, openedIdx),
		})
	}
	return rows, nil
}

func normalizeHeaders(headers []string) map[string]int {
	result := make(map[string]int, len(headers))
	for idx, header := range headers {
		normalized := normalizeHeader(header)
		if _, exists := result[normalized]; !exists {
			result[normalized] = idx
		}
	}
	return result
}

func normalizeHeader(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	value = strings.ReplaceAll(value, " ", "")
	value = strings.ReplaceAll(value, "_", "")
	value = strings.ReplaceAll(value, "-", "")
	return value
}

func findColumn(headers map[string]int, names []string) (int, bool) {
	for _, name := range names {
		if idx, ok := headers[normalizeHeader(name)]; ok {
			return idx, true
		}
	}
	return -1, false
}

func getValue(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
