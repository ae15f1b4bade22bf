package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"travelbook/internal/domain"
	"travelbook/internal/domain/models"
	"travelbook/internal/repositories"
	"travelbook/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders the sales-report and booking-invoice PDFs.
type DocsService struct {
	BookingRepo repositories.BookingRepository
	ReportsSvc  ReportsService
	RequestID   string

	// BookingLoader is injectable for tests.
	BookingLoader func(int64) (models.Booking, error)
}

func (s DocsService) loadBooking(id int64) (models.Booking, error) {
	if s.BookingLoader != nil {
		return s.BookingLoader(id)
	}
	return s.BookingRepo.GetByID(id)
}

// SalesReportPDF aggregates the window and renders it as a table PDF.
func (s DocsService) SalesReportPDF(f SalesReportFilter) ([]byte, string, error) {
	summary, err := s.ReportsSvc.SalesReport(f)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "sales_report_pdf",
		fmt.Sprintf("from=%s to=%s rows=%d", f.StartDate, f.EndDate, summary.Count))
	return buildSalesReportPDF(summary, f.StartDate, f.EndDate)
}

// BookingInvoicePDF renders a single booking's invoice.
func (s DocsService) BookingInvoicePDF(bookingID int64) ([]byte, string, error) {
	b, err := s.loadBooking(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "invoice_pdf", fmt.Sprintf("booking_id=%d", bookingID))
	return buildInvoicePDF(b)
}

func buildSalesReportPDF(summary domain.SalesSummary, from, to string) ([]byte, string, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Sales Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "SALES REPORT")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Window  : %s to %s", safe(from, "-"), safe(to, "-")))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Created : "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	widths := []float64{15, 75, 55, 28, 18, 26, 30, 32}
	headers := []string{"#", "Package", "Customer", "Travel", "Pax", "Status", "Payment", "Amount"}
	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range summary.Rows {
		cells := []string{
			fmt.Sprintf("%d", row.BookingID),
			clip(row.PackageTitle, 42),
			clip(row.CustomerName, 30),
			row.TravelDate,
			fmt.Sprintf("%d", row.Persons),
			string(row.Status),
			string(row.PaymentStatus),
			utils.FormatTaka(row.TotalPrice),
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 7, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Bookings: %d    Persons: %d    Total: %s",
		summary.Count, summary.TotalPersons, utils.FormatTaka(summary.TotalAmount)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("SALES_%s_%s.pdf", safeFilenamePart(from), safeFilenamePart(to))
	return buf.Bytes(), filename, nil
}

func buildInvoicePDF(b models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(12)

	invNo := fmt.Sprintf("INV-%d", b.ID)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Invoice No : "+invNo)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Date       : "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Billed to:")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Name  : %s", safe(b.Name, "-")))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Email : %s", safe(b.Email, "-")))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Phone : %s", safe(b.Phone, "-")))
	pdf.Ln(10)

	desc := fmt.Sprintf("%s, travel date %s, %d person(s)",
		safe(b.PackageTitle, "N/A"), utils.FormatDate(b.TravelDate), b.Persons)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Details:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, "1) "+desc, "", "", false)
	pdf.Ln(2)

	pdf.Cell(0, 6, "Total price : "+utils.FormatTaka(b.TotalPrice))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Paid        : "+utils.FormatTaka(b.PaidAmount))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Balance due : "+utils.FormatTaka(b.TotalPrice-b.PaidAmount))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Payment status: "+string(b.PaymentStatus)+". Booking status: "+string(b.Status)+".", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("INVOICE_%d_%s.pdf", b.ID, safeFilenamePart(b.Name))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func clip(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
