package extract

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSXRows reads the first sheet of a workbook into the two-column row
// shape the tabular parser expects. Header handling is left to the
// parser: a header row is neither a question start nor an option line,
// so it falls through its continuation rule.
func XLSXRows(data []byte) ([][]string, error) {
	wb, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrUnreadable)
	}
	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	return rows, nil
}
