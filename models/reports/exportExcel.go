package reports

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

var exportHeadings = []string{
	"Entity", "Kind", "City", "Region",
	"ServiceGross", "ServiceFee", "ServiceTax",
	"ProductGross", "ProductFee", "ProductTax",
	"Subscription", "Messaging", "TotalBusiness",
}

// ExportExcel writes the report rows plus a totals line as an xlsx workbook.
func ExportExcel(w io.Writer, result *ReportResult) error {
	f := excelize.NewFile()
	sheetName := "Sheet1"
	if _, err := f.NewSheet(sheetName); err != nil {
		return err
	}

	col := 'A'
	for _, h := range exportHeadings {
		f.SetCellValue(sheetName, string(col)+"1", h)
		col++
	}

	for i, row := range result.Rows {
		n := fmt.Sprint(i + 2)
		f.SetCellValue(sheetName, "A"+n, row.DisplayName)
		f.SetCellValue(sheetName, "B"+n, row.OwnerKind.DisplayName())
		f.SetCellValue(sheetName, "C"+n, row.City)
		f.SetCellValue(sheetName, "D"+n, row.RegionName)
		f.SetCellValue(sheetName, "E"+n, row.ServiceGross.String())
		f.SetCellValue(sheetName, "F"+n, row.ServiceFee.String())
		f.SetCellValue(sheetName, "G"+n, row.ServiceTax.String())
		f.SetCellValue(sheetName, "H"+n, row.ProductGross.String())
		f.SetCellValue(sheetName, "I"+n, row.ProductFee.String())
		f.SetCellValue(sheetName, "J"+n, row.ProductTax.String())
		f.SetCellValue(sheetName, "K"+n, row.SubscriptionAmount.String())
		f.SetCellValue(sheetName, "L"+n, row.MessagingAmount.String())
		f.SetCellValue(sheetName, "M"+n, row.TotalBusiness.String())
	}

	n := fmt.Sprint(len(result.Rows) + 2)
	f.SetCellValue(sheetName, "A"+n, "Total")
	f.SetCellValue(sheetName, "E"+n, result.Totals.ServiceGross.String())
	f.SetCellValue(sheetName, "F"+n, result.Totals.ServiceFee.String())
	f.SetCellValue(sheetName, "G"+n, result.Totals.ServiceTax.String())
	f.SetCellValue(sheetName, "H"+n, result.Totals.ProductGross.String())
	f.SetCellValue(sheetName, "I"+n, result.Totals.ProductFee.String())
	f.SetCellValue(sheetName, "J"+n, result.Totals.ProductTax.String())
	f.SetCellValue(sheetName, "K"+n, result.Totals.SubscriptionAmount.String())
	f.SetCellValue(sheetName, "L"+n, result.Totals.MessagingAmount.String())
	f.SetCellValue(sheetName, "M"+n, result.Totals.TotalBusiness.String())

	return f.Write(w)
}
