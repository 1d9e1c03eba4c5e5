package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/planilla-cr/planilla-backend-go/internal/domain/payroll"
)

// GenerateRunSummary renders a filed payroll run as a one-page summary
// with one row per employee.
func GenerateRunSummary(run *payroll.Run) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	doc.SetFont("Helvetica", "B", 16)
	doc.Cell(40, 10, "Payroll Run")
	doc.Ln(12)

	doc.SetFont("Helvetica", "", 12)
	doc.Cell(0, 8, fmt.Sprintf("Month: %s", run.Month))
	doc.Ln(7)
	doc.Cell(0, 8, fmt.Sprintf("Filed: %s", run.CreatedAt.Format("2006-01-02")))
	doc.Ln(10)

	doc.SetFont("Helvetica", "B", 11)
	doc.CellFormat(60, 8, "Employee", "1", 0, "L", false, 0, "")
	doc.CellFormat(20, 8, "Days", "1", 0, "R", false, 0, "")
	doc.CellFormat(35, 8, "Gross", "1", 0, "R", false, 0, "")
	doc.CellFormat(35, 8, "Deductions", "1", 0, "R", false, 0, "")
	doc.CellFormat(35, 8, "Net", "1", 0, "R", false, 0, "")
	doc.Ln(-1)

	doc.SetFont("Helvetica", "", 11)
	for _, line := range run.Lines {
		doc.CellFormat(60, 8, line.EmployeeName, "1", 0, "L", false, 0, "")
		doc.CellFormat(20, 8, fmt.Sprintf("%d", line.DaysWorked), "1", 0, "R", false, 0, "")
		doc.CellFormat(35, 8, line.Gross.StringFixed(2), "1", 0, "R", false, 0, "")
		doc.CellFormat(35, 8, line.EmployeeCharge.StringFixed(2), "1", 0, "R", false, 0, "")
		doc.CellFormat(35, 8, line.NetPay.StringFixed(2), "1", 0, "R", false, 0, "")
		doc.Ln(-1)
	}

	doc.Ln(5)
	doc.SetFont("Helvetica", "B", 12)
	doc.Cell(0, 8, fmt.Sprintf("Total net: %s", run.TotalNet.StringFixed(2)))
	doc.Ln(7)
	doc.Cell(0, 8, fmt.Sprintf("Total employer charges: %s", run.TotalEmployerCharges.StringFixed(2)))

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
