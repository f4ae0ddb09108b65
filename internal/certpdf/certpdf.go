// Package certpdf renders a certification entry as a printable PDF.
package certpdf

import (
	"fmt"

	"codeberg.org/go-pdf/fpdf"

	"github.com/dotcommander/greenseal/internal/ledger"
)

// Render writes a one-page certificate for an issued entry to path.
func Render(path string, e ledger.Entry) error {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.AddPage()

	// Green header band.
	pdf.SetFillColor(45, 106, 79)
	pdf.Rect(0, 0, 216, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Text(14, 13, "GREEN SEAL · CERTIFICATE")
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(14, 21, "Site: "+e.SiteName)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(14, 44, "Tier: "+string(e.Tier))
	pdf.Text(14, 52, fmt.Sprintf("Score: %.1f", e.Score))
	pdf.Text(14, 60, "Issued: "+e.IssuedAt.Format("02/01/2006 15:04"))
	pdf.Text(14, 68, "Issued by: "+e.IssuedBy)
	pdf.Text(14, 76, "Certificate id: "+e.ID)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write certificate PDF: %w", err)
	}
	return nil
}
