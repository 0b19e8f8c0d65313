// Package export renders the report and backup documents offered for
// download.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/financa-pro/backend/internal/models"
	"github.com/financa-pro/backend/internal/types"
)

// MemberAll selects every member in a report filter.
const MemberAll = "all"

// ReportFilter selects the transactions of a report: one calendar month
// and optionally a single member.
type ReportFilter struct {
	Month    types.Month
	MemberID string
}

// Filter returns the transactions matching the report filter.
func Filter(s models.Snapshot, filter ReportFilter) []models.Transaction {
	matched := []models.Transaction{}
	for _, tx := range s.Transactions {
		if !tx.Date.In(filter.Month) {
			continue
		}

		if filter.MemberID != "" && filter.MemberID != MemberAll && tx.MemberID != filter.MemberID {
			continue
		}

		matched = append(matched, tx)
	}

	return matched
}

// CSV renders the filtered transactions as a semicolon-separated
// spreadsheet. The document starts with a UTF-8 byte-order mark so
// spreadsheet applications pick up the encoding, dates are dd/mm/yyyy
// and amounts use a comma decimal separator.
func CSV(s models.Snapshot, filter ReportFilter) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("\uFEFF")

	w := csv.NewWriter(&buf)
	w.Comma = ';'

	err := w.Write([]string{"Data", "Tipo", "Descrição", "Categoria", "Membro", "Pessoa/Empresa", "Valor"})
	if err != nil {
		return nil, err
	}

	for _, tx := range Filter(s, filter) {
		memberName := "N/A"
		if member, ok := s.Member(tx.MemberID); ok {
			memberName = member.Name
		}

		entityName := "N/A"
		if entity, ok := s.Entity(tx.EntityID); ok {
			entityName = entity.Name
		}

		err := w.Write([]string{
			tx.Date.Time().Format("02/01/2006"),
			string(tx.Type),
			tx.Description,
			string(tx.Category),
			memberName,
			entityName,
			strings.Replace(tx.Amount.StringFixed(2), ".", ",", 1),
		})
		if err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// CSVFilename returns the download name for a report.
func CSVFilename(month types.Month) string {
	t := time.Time(month)
	return fmt.Sprintf("relatorio-financa-pro-%d-%d.csv", t.Year(), int(t.Month()))
}
