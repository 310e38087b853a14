package receipt

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"
)

const (
	logoImageName = "receipt-logo"
	pageCenterX   = 105.0
	fontFamily    = "Helvetica"
	disclaimer    = "This receipt is generated automatically. Please retain it for your records."
)

// Options статичное содержимое квитанции
type Options struct {
	Logo         []byte // PNG, nil = без логотипа
	Currency     string
	SupportEmail string
	SupportPhone string
	Compress     bool
}

// PDFExporter рисует одностраничную квитанцию A4 через gofpdf
type PDFExporter struct {
	opts Options
}

// NewPDFExporter создает экспортер квитанций
func NewPDFExporter(opts Options) *PDFExporter {
	return &PDFExporter{opts: opts}
}

// Export строит PDF квитанцию. Сеть не используется.
func (e *PDFExporter) Export(doc Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(e.opts.Compress)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Рамка страницы
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Rect(10, 10, 190, 277, "D")

	// Логотип в левом верхнем углу
	if len(e.opts.Logo) > 0 {
		opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
		pdf.RegisterImageOptionsReader(logoImageName, opts, bytes.NewReader(e.opts.Logo))
		pdf.ImageOptions(logoImageName, 15, 15, 30, 30, false, opts, 0, "")
	}

	// Заголовок
	pdf.SetFont(fontFamily, "B", 18)
	centeredText(pdf, 30, "Receipt")

	pdf.SetFont(fontFamily, "I", 12)
	centeredText(pdf, 38, "Thank you for staying with us!")

	pdf.SetDrawColor(150, 150, 150)
	pdf.Line(20, 50, 190, 50)

	// Детали квитанции
	pdf.SetFont(fontFamily, "B", 14)
	pdf.Text(20, 65, "Receipt Details")

	pdf.SetFont(fontFamily, "", 12)
	pdf.Text(20, 75, tr("Room Number: "+doc.RoomNumber))
	pdf.Text(20, 85, tr("Resident Name: "+doc.ResidentName))
	pdf.Text(20, 95, tr("Email: "+doc.Email))
	pdf.Text(20, 105, tr("Price: "+FormatPrice(doc.Price, e.opts.Currency)))

	// Пунктирный разделитель
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetDashPattern([]float64{3, 3}, 0)
	pdf.Line(20, 115, 190, 115)
	pdf.SetDashPattern([]float64{}, 0)

	// Контакты
	pdf.SetFont(fontFamily, "B", 14)
	pdf.Text(20, 130, "Contact Information")

	pdf.SetFont(fontFamily, "", 12)
	pdf.Text(20, 140, tr("Support Email: "+e.opts.SupportEmail))
	pdf.Text(20, 150, tr("Phone: "+e.opts.SupportPhone))

	pdf.SetFont(fontFamily, "I", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.Text(20, 165, disclaimer)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: room=%s: %v", ErrRender, doc.RoomNumber, err)
	}
	return buf.Bytes(), nil
}

func centeredText(pdf *gofpdf.Fpdf, y float64, text string) {
	w := pdf.GetStringWidth(text)
	pdf.Text(pageCenterX-w/2, y, text)
}
