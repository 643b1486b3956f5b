package utils

import (
	"fmt"
	"strings"

	"github.com/h4mmerjp/nikkeihyou/dto"
)

// Fixed column layout of a daily-report table row. A 13th remarks column
// exists in some report revisions.
const (
	colNumber = iota
	colIdentity
	colInsurance
	colPoints
	colBurden
	colKaigoUnits
	colKaigoBurden
	colJihi
	colBushan
	colZenkaiSagaku
	colReceipt
	colSagaku
	colRemarks
)

// minRowCells is the minimum cell count for a row to be considered at all.
const minRowCells = 2

// patientIDPrefix marks the report-native patient identifier inside a
// name/identity cell, e.g. "No.10003".
const patientIDPrefix = "No."

// fragmentKind tags one line of a multi-line identity cell.
type fragmentKind int

const (
	fragIgnore fragmentKind = iota
	fragNumber
	fragIdentifier
	fragName
)

// classifyFragment tags a single trimmed cell line. The identity cell mixes
// a bare row number, a "No."-prefixed identifier, and a human name in
// varying order across report revisions.
func classifyFragment(line string) fragmentKind {
	switch {
	case line == "":
		return fragIgnore
	case isDigits(line):
		return fragNumber
	case strings.HasPrefix(line, patientIDPrefix):
		return fragIdentifier
	default:
		return fragName
	}
}

// identity collects the first fragment of each kind across the scanned
// cells; once a slot is taken, later fragments of the same kind are ignored.
type identity struct {
	number    int
	patientID string
	name      string
}

func (id *identity) scan(cell string) {
	for _, line := range SplitLines(cell) {
		switch classifyFragment(line) {
		case fragNumber:
			if id.number == 0 {
				id.number = SafeInt(line)
			}
		case fragIdentifier:
			if id.patientID == "" {
				id.patientID = line
			}
		case fragName:
			if id.name == "" {
				id.name = line
			}
		}
	}
}

// AcceptRow reports whether a table row is a data row. Header rows, printed
// subtotal and category rows ("合計", "社保", …), and blank filler rows all
// carry a non-numeric first cell and are rejected here.
func AcceptRow(row []string) bool {
	if len(row) < minRowCells {
		return false
	}
	first := strings.TrimSpace(row[0])
	return isDigits(first)
}

// ParseLineItem converts one accepted table row into a LineItem.
//
// The row number, patient id, and name may be spread over the first two
// cells in any line order; the fragment classifier resolves them
// first-match-wins. Numeric cells go through SafeInt, so an empty or
// garbled sub-cell silently becomes zero. An error is returned only for
// rows that are structurally unusable, and callers drop such rows whole
// rather than emit a partially populated record.
func ParseLineItem(row []string) (dto.LineItem, error) {
	if len(row) < minRowCells {
		return dto.LineItem{}, fmt.Errorf("row has %d cells, need at least %d", len(row), minRowCells)
	}

	var id identity
	id.scan(cellAt(row, colNumber))
	id.scan(cellAt(row, colIdentity))

	if id.number == 0 {
		return dto.LineItem{}, fmt.Errorf("row has no sequence number")
	}

	item := dto.LineItem{
		Number:        id.number,
		PatientID:     id.patientID,
		Name:          id.name,
		InsuranceType: SafeText(cellAt(row, colInsurance)),
		Points:        SafeInt(cellAt(row, colPoints)),
		BurdenAmount:  firstNumericLine(cellAt(row, colBurden)),
		KaigoUnits:    SafeInt(cellAt(row, colKaigoUnits)),
		KaigoBurden:   SafeInt(cellAt(row, colKaigoBurden)),
		Jihi:          SafeInt(cellAt(row, colJihi)),
		Bushan:        SafeInt(cellAt(row, colBushan)),
		ZenkaiSagaku:  SafeInt(cellAt(row, colZenkaiSagaku)),
		ReceiptAmount: SafeInt(cellAt(row, colReceipt)),
		Sagaku:        SafeInt(cellAt(row, colSagaku)),
		Remarks:       SafeText(cellAt(row, colRemarks)),
	}

	return item, nil
}

// cellAt returns the cell at index i, or "" when the row is shorter. Rows
// narrower than the full layout are normal in older report revisions.
func cellAt(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// firstNumericLine resolves cells like "30%\n1,500" where the copay ratio
// shares the box with the amount: the first plainly numeric line wins and
// label lines are skipped.
func firstNumericLine(cell string) int {
	for _, line := range SplitLines(cell) {
		if isNumericCellLine(line) {
			return SafeInt(line)
		}
	}
	return 0
}
