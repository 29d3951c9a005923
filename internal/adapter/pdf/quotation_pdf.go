package pdf

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/config"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/domain/budget"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/domain/client"
	"github.com/hugohenrick/confeitaria-orcamentos/internal/domain/pricing"
	"github.com/hugohenrick/confeitaria-orcamentos/pkg/logger"
	"github.com/hugohenrick/confeitaria-orcamentos/pkg/money"
)

// Document reúne os dados impressos no orçamento
type Document struct {
	Budget  *budget.Budget
	Client  *client.Client
	Address *client.Address
	// nomes dos produtos escolhidos dentro dos combos, por ID
	ProductNames map[string]string
}

// Generator produz o PDF de um orçamento
type Generator interface {
	Generate(ctx context.Context, doc Document) ([]byte, error)
}

var funcs = template.FuncMap{
	"brl":      money.FormatBRL,
	"quantity": money.FormatQuantity,
	"date":     func(t time.Time) string { return t.Format("02/01/2006") },
	"join":     strings.Join,
	"measure": func(m pricing.Measure) string {
		switch m {
		case pricing.MeasureKg:
			return "kg"
		case pricing.MeasureBox:
			return "cx"
		case pricing.MeasureCombo:
			return "combo"
		}
		return "un"
	},
}

var quotationTemplate = template.Must(template.New("orcamento").Funcs(funcs).Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>Orçamento {{.Budget.ID}}</title>
<style>
  body { font-family: Helvetica, Arial, sans-serif; font-size: 12px; color: #333; margin: 24px; }
  h1 { font-size: 20px; margin-bottom: 4px; }
  table { width: 100%; border-collapse: collapse; margin-top: 16px; }
  th, td { border-bottom: 1px solid #ddd; padding: 6px; text-align: left; vertical-align: top; }
  td.num, th.num { text-align: right; }
  .detail { color: #777; font-size: 11px; }
  .totals td { border: none; }
</style>
</head>
<body>
<h1>Orçamento</h1>
<div>Data: {{date .Budget.CreatedAt}} · Status: {{.Budget.Status}}</div>
{{with .Client}}<div>Cliente: {{.Name}}{{if .WhatsApp}} · WhatsApp {{.WhatsApp}}{{else if .Phone}} · Tel. {{.Phone}}{{end}}</div>{{end}}
{{with .Address}}<div>Entrega: {{.Street}}, {{.Number}}{{if .Complement}} {{.Complement}}{{end}} · {{.Neighborhood}} · {{.City}}/{{.State}}</div>{{end}}
<table>
  <thead><tr><th>Produto</th><th class="num">Qtd</th><th class="num">Unitário</th><th class="num">Total</th></tr></thead>
  <tbody>
  {{$names := .ProductNames}}
  {{range .Budget.Items}}
    <tr>
      <td>{{.ProductName}}
        {{with .Attributes.Flavors}}<div class="detail">Sabores: {{join . ", "}}</div>{{end}}
        {{range .Attributes.ComboSelection}}<div class="detail">{{.Quantity}}x {{index $names .ProductID}}</div>{{end}}
        {{range .Attributes.BuilderSelection}}<div class="detail">{{.Title}}:{{range .Options}} {{.Name}};{{end}}</div>{{end}}
      </td>
      <td class="num">{{quantity .Quantity}} {{measure .Attributes.Measure}}</td>
      <td class="num">{{brl .UnitPrice}}</td>
      <td class="num">{{brl .TotalPrice}}</td>
    </tr>
  {{end}}
  </tbody>
</table>
<table class="totals">
  <tr><td class="num">Subtotal</td><td class="num">{{brl .Budget.Subtotal}}</td></tr>
  <tr><td class="num">Taxa de entrega</td><td class="num">{{brl .Budget.DeliveryFee}}</td></tr>
  <tr><td class="num">Desconto</td><td class="num">-{{brl .Budget.Discount}}</td></tr>
  <tr><td class="num"><strong>Total</strong></td><td class="num"><strong>{{brl .Budget.TotalAmount}}</strong></td></tr>
</table>
{{if .Budget.Notes}}<p>{{.Budget.Notes}}</p>{{end}}
</body>
</html>`))

// RenderHTML gera o HTML do orçamento
func RenderHTML(doc Document) (string, error) {
	var buf bytes.Buffer
	if err := quotationTemplate.Execute(&buf, doc); err != nil {
		return "", fmt.Errorf("erro ao montar HTML do orçamento: %w", err)
	}
	return buf.String(), nil
}

// ChromeGenerator imprime o HTML do orçamento com Chrome headless
type ChromeGenerator struct {
	chromePath string
	timeout    time.Duration
	logger     logger.Logger
}

// NewChromeGenerator cria o gerador de PDF
func NewChromeGenerator(cfg config.PDFConfig, log logger.Logger) *ChromeGenerator {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ChromeGenerator{chromePath: cfg.ChromePath, timeout: timeout, logger: log}
}

// Generate renderiza o orçamento e devolve o PDF em A4
func (g *ChromeGenerator) Generate(ctx context.Context, doc Document) ([]byte, error) {
	html, err := RenderHTML(doc)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:], chromedp.NoSandbox)
	if g.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(g.chromePath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromeCtx, chromeCancel := chromedp.NewContext(allocCtx)
	defer chromeCancel()

	var pdfBuf []byte
	err = chromedp.Run(chromeCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 210mm x 297mm
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar PDF: %w", err)
	}

	g.logger.Debug("PDF de orçamento gerado", "budget_id", doc.Budget.ID, "bytes", len(pdfBuf))
	return pdfBuf, nil
}
