// Package document renders reservations into printable PDF artifacts. The
// rendering is pure: same input, same bytes — no clock, no network. All
// user-facing text follows the hotel's Portuguese conventions, and absent
// optional guest fields are printed as the fixed "N/A" placeholder.
package document

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/hoteldomar/reservation-admin/internal/core/domain"
	"github.com/hoteldomar/reservation-admin/internal/core/ports"
)

const placeholder = "N/A"

// checkTime is the fixed noon convention shown next to every stay date.
const checkTime = "às 12:00"

// Generator implements ports.DocumentGenerator on top of fpdf.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

var _ ports.DocumentGenerator = (*Generator)(nil)

// Voucher renders the single-reservation guest voucher: greeting, guest
// detail table, stay table, occupancy table, closing note and signature
// line. The filename is derived from the client's name.
func (g *Generator) Voucher(r *domain.Reservation) (*ports.Document, error) {
	cl := r.Cliente
	if cl == nil {
		cl = &domain.Cliente{}
	}

	pdf := newPDF("P")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(20, 20, tr(fmt.Sprintf("Obrigada, %s!", cl.Nome)))

	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(20, 28, tr("Sua reserva está confirmada."))
	pdf.Line(20, 33, 190, 33)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(20, 40, tr("Detalhes do Hóspede:"))

	pdf.SetY(45)
	drawTable(pdf, tr, []float64{50, 120}, [][]string{{"Campo", "Detalhe"}}, guestRows(cl))

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(0, 5, tr("Detalhes da Reserva:"), "", 1, "L", false, 0, "")
	pdf.Ln(1)
	drawTable(pdf, tr,
		[]float64{30, 55, 30, 28, 28},
		[][]string{{"Número da Reserva", "Quarto", "Preço Total", "Check-in", "Check-out"}},
		[][]string{{
			strconv.Itoa(r.ID),
			roomLabel(r.Room),
			formatPrice(r.TotalPrice),
			formatStay(r.CheckInDate),
			formatStay(r.CheckOutDate),
		}})

	pdf.Ln(4)
	drawTable(pdf, tr,
		[]float64{22, 38, 38, 28, 30},
		[][]string{{"Adultos", "Crianças (0-5 anos)", "Crianças (6+ anos)", "Status", "Café da Manhã"}},
		[][]string{{
			strconv.Itoa(r.NumeroDeAdultos),
			strconv.Itoa(r.NumeroDeCriancas0A5Anos),
			strconv.Itoa(r.NumeroDeCriancas),
			string(r.Status),
			breakfastLabel(r.IncluirCafeDaManha),
		}})

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 5, tr("Check-in e Check-out às 12:00 horas."), "", 1, "L", false, 0, "")
	pdf.Ln(5)
	pdf.CellFormat(0, 5, tr("Obrigado por reservar conosco!"), "", 1, "L", false, 0, "")
	pdf.Ln(5)
	y := pdf.GetY() + 4
	pdf.Text(20, y, tr("Assinatura do Cliente:"))
	pdf.Line(60, y, 150, y)

	return output(pdf, fmt.Sprintf("reserva_%s.pdf", cl.Nome))
}

// Report renders the consolidated list: one body row per reservation, in the
// fixed column order of the admin table. The filename is generic.
func (g *Generator) Report(rs []domain.Reservation) (*ports.Document, error) {
	pdf := newPDF("L")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(10, 12, tr("Lista de Reservas"))
	pdf.SetY(16)

	body := make([][]string, 0, len(rs))
	for i := range rs {
		body = append(body, reportRow(&rs[i]))
	}
	drawTable(pdf, tr, reportWidths, [][]string{reportHeader}, body)

	return output(pdf, "reservas.pdf")
}

var reportHeader = []string{
	"Cliente", "CPF", "Quarto", "Preço Total", "Check-in", "Check-out",
	"Status", "Ocupação", "Adultos", "Crianças (0 a 5 anos)",
	"Crianças (A partir de 6 anos)", "Café da Manhã",
}

var reportWidths = []float64{30, 24, 34, 20, 25, 25, 18, 18, 14, 22, 25, 22}

// reportRow flattens one denormalized reservation into the mandated column
// order. Missing embedded objects degrade to placeholders, never to empty
// cells.
func reportRow(r *domain.Reservation) []string {
	nome, cpf := placeholder, placeholder
	if r.Cliente != nil {
		nome = valueOrNA(r.Cliente.Nome)
		cpf = valueOrNA(r.Cliente.CPF)
	}
	occupancy := placeholder
	if r.Room != nil {
		occupancy = occupancyLabel(r.Room.IsOccupied)
	}
	return []string{
		nome,
		cpf,
		roomLabel(r.Room),
		formatPrice(r.TotalPrice),
		formatStay(r.CheckInDate),
		formatStay(r.CheckOutDate),
		string(r.Status),
		occupancy,
		strconv.Itoa(r.NumeroDeAdultos),
		strconv.Itoa(r.NumeroDeCriancas0A5Anos),
		strconv.Itoa(r.NumeroDeCriancas),
		breakfastLabel(r.IncluirCafeDaManha),
	}
}

// guestRows lists every guest field in voucher order; optional fields fall
// back to the placeholder.
func guestRows(cl *domain.Cliente) [][]string {
	return [][]string{
		{"Nome", valueOrNA(cl.Nome)},
		{"CPF", valueOrNA(cl.CPF)},
		{"E-mail", valueOrNA(cl.Email)},
		{"Profissão", valueOrNA(cl.Profissao)},
		{"Nacionalidade", valueOrNA(cl.Nacionalidade)},
		{"RG", valueOrNA(cl.RG)},
		{"Residência", valueOrNA(cl.Residencia)},
		{"CEP", valueOrNA(cl.CEP)},
		{"Cidade", valueOrNA(cl.Cidade)},
		{"País", valueOrNA(cl.Pais)},
		{"Telefone Residencial", valueOrNA(cl.TelefoneResidencial)},
		{"Telefone Comercial", valueOrNA(cl.TelefoneComercial)},
		{"Sexo", valueOrNA(cl.Sexo)},
		{"Data de Nascimento", valueOrNA(cl.DataNascimento)},
	}
}

// newPDF builds a page with the document dates pinned so identical input
// yields identical bytes.
func newPDF(orientation string) *fpdf.Fpdf {
	pdf := fpdf.New(orientation, "mm", "A4", "")
	pinned := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	pdf.SetCreationDate(pinned)
	pdf.SetModificationDate(pinned)
	pdf.SetAutoPageBreak(true, 15)
	return pdf
}

func drawTable(pdf *fpdf.Fpdf, tr func(string) string, widths []float64, head, body [][]string) {
	const rowHeight = 7.0

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(22, 160, 133)
	pdf.SetTextColor(255, 255, 255)
	for _, row := range head {
		for i, cell := range row {
			pdf.CellFormat(widths[i], rowHeight, tr(cell), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(rowHeight)
	}

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(0, 0, 0)
	for n, row := range body {
		if n%2 == 1 {
			pdf.SetFillColor(240, 240, 240)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		for i, cell := range row {
			pdf.CellFormat(widths[i], rowHeight, tr(cell), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(rowHeight)
	}
}

func output(pdf *fpdf.Fpdf, filename string) (*ports.Document, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return &ports.Document{Filename: filename, Content: buf.Bytes()}, nil
}

func valueOrNA(s string) string {
	if s == "" {
		return placeholder
	}
	return s
}

func formatPrice(v float64) string {
	return fmt.Sprintf("R$ %.2f", v)
}

// formatStay renders a stay date in the pt-BR convention with the fixed
// noon label. Dates arrive as bare calendar dates or full timestamps.
func formatStay(s string) string {
	if s == "" {
		return placeholder
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return fmt.Sprintf("%02d/%02d/%d %s", t.Day(), int(t.Month()), t.Year(), checkTime)
		}
	}
	return s + " " + checkTime
}

func roomLabel(r *domain.Room) string {
	if r == nil {
		return placeholder
	}
	return fmt.Sprintf("Quarto %s - %s", r.RoomNumber, r.Type)
}

func occupancyLabel(occupied bool) string {
	if occupied {
		return "Ocupado"
	}
	return "Disponível"
}

func breakfastLabel(included bool) string {
	if included {
		return "Incluído"
	}
	return "Não Incluído"
}
