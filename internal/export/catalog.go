// Package export writes the filtered library catalog as an .xlsx workbook
// so it can be shared offline. Only catalog metadata is exported.
package export

import (
	"fmt"
	"io"

	"rurallearn/internal/domain"

	"github.com/xuri/excelize/v2"
)

const (
	CatalogSheet = "Catalog"
	FilterSheet  = "Filter"

	// ContentType is the MIME type of the workbook.
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var catalogHeader = []interface{}{
	"ID", "Title", "Subject", "Instructor", "Institution", "Type",
	"Duration", "Size", "Download Size", "Students", "Rating", "Description",
}

// WriteCatalog writes items, in order, to w. The Filter sheet records the
// query and subject the items were selected with.
func WriteCatalog(w io.Writer, items []domain.ContentItem, query, subject string) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := f.SetSheetName("Sheet1", CatalogSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(CatalogSheet, "A1", &catalogHeader); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetRowStyle(CatalogSheet, 1, 1, bold); err != nil {
		return err
	}

	for i, item := range items {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			item.ID, item.Title, item.Subject, item.Instructor, item.Institution, string(item.Type),
			item.Duration, item.Size, item.DownloadSize, item.StudentCount, item.Rating, item.Description,
		}
		if err := f.SetSheetRow(CatalogSheet, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	if err := f.SetColWidth(CatalogSheet, "B", "B", 40); err != nil {
		return err
	}

	if _, err := f.NewSheet(FilterSheet); err != nil {
		return err
	}
	filter := [][]interface{}{
		{"Query", query},
		{"Subject", subject},
		{"Results", len(items)},
	}
	for i, row := range filter {
		if err := f.SetSheetRow(FilterSheet, fmt.Sprintf("A%d", i+1), &row); err != nil {
			return err
		}
	}

	_, err = f.WriteTo(w)
	return err
}
