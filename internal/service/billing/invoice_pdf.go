package billing

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/mojtermin/MT-BookingPlatform/internal/domain"
)

var planLabels = map[domain.SubscriptionPlan]string{
	domain.PlanMonthly:   "Mesecna pretplata",
	domain.PlanSixMonths: "Pretplata na 6 meseci",
	domain.PlanAnnual:    "Godisnja pretplata",
}

// renderInvoicePDF рендерит предрачун в одностраничный PDF A4:
// реквизиты платформы, позив на број и NBS IPS QR для оплаты
// из мобильного банкинга
func renderInvoicePDF(invoice *domain.ProformaInvoice) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	pdf.SetAutoPageBreak(false, 0)

	// Шапка
	pdf.SetFont("Helvetica", "B", 22)
	pdf.Cell(0, 15, "MojTermin - PREDRACUN")
	pdf.Ln(18)

	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(15, pdf.GetY(), 195, pdf.GetY())
	pdf.Ln(6)

	// Реквизиты
	rows := [][2]string{
		{"Salon", invoice.SalonName},
		{"Paket", planLabels[invoice.Plan]},
		{"Iznos", fmt.Sprintf("%d RSD", invoice.Amount)},
		{"Racun primaoca (IBAN)", invoice.PlatformIBAN},
		{"PIB primaoca", invoice.PlatformPIB},
		{"Poziv na broj", invoice.Reference},
		{"Datum izdavanja", invoice.IssuedAt.Format("02.01.2006")},
	}

	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(60, 8, row[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 8, row[1], "", 1, "L", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, fmt.Sprintf(
		"Prvih %d dana je besplatan probni period. Predracun ne predstavlja fiskalni racun.",
		invoice.TrialDays), "", "L", false)
	pdf.Ln(6)

	// IPS QR для мобильного банкинга
	qrBytes, err := qrcode.Encode(buildIPSPayload(invoice), qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("encode IPS QR: %w", err)
	}

	pdf.RegisterImageOptionsReader("ips-qr", gofpdf.ImageOptions{ImageType: "png"}, bytes.NewReader(qrBytes))
	pdf.ImageOptions("ips-qr", 15, pdf.GetY(), 50, 50, false, gofpdf.ImageOptions{ImageType: "png"}, 0, "")

	pdf.SetXY(70, pdf.GetY()+20)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Skenirajte IPS QR kod u aplikaciji vase banke.")

	// Футер
	pdf.SetY(-25)
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 5, "MojTermin | Beograd | mojtermin.rs", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("output PDF: %w", err)
	}

	return buf.Bytes(), nil
}

// buildIPSPayload собирает строку NBS IPS QR (спецификация НБС):
// K - идентификатор, V - версия, C - кодировка, R - счет получателя,
// N - имя получателя, I - валюта и сумма, SF - шифра плаћања,
// S - сврха плаћања, RO - модель 97 + позив на број
func buildIPSPayload(invoice *domain.ProformaInvoice) string {
	// Счет в payload идёт без пробелов
	account := strings.ReplaceAll(invoice.PlatformIBAN, " ", "")
	// Референс в RO идёт без дефисов, модель уже зашита в формате 97-
	reference := strings.ReplaceAll(invoice.Reference, "-", "")

	return fmt.Sprintf("K:PR|V:01|C:1|R:%s|N:MojTermin DOO Beograd|I:RSD%d,00|SF:221|S:Pretplata %s|RO:%s",
		account, invoice.Amount, invoice.SalonName, reference)
}
