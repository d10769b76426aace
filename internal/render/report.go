package render

import (
	"io"
	"strings"
	"text/template"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/retail-sales-dashboard/internal/domain"
	"github.com/vfg2006/retail-sales-dashboard/pkg/format"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Format é o formato de saída do relatório em texto
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

var ErrUnknownFormat = errors.New("formato de relatório desconhecido")

// ParseFormat aceita markdown, md, json, yaml e yml
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "markdown", "md":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", errors.Wrapf(ErrUnknownFormat, "%q", value)
}

// WriteReport escreve o relatório no formato pedido
func WriteReport(w io.Writer, report *domain.Report, f Format) error {
	if report == nil {
		return errors.New("relatório ausente")
	}

	switch f {
	case FormatMarkdown:
		return writeMarkdown(w, report)
	case FormatJSON:
		return writeJSON(w, report)
	case FormatYAML:
		return writeYAML(w, report)
	}
	return errors.Wrapf(ErrUnknownFormat, "%q", f)
}

func writeJSON(w io.Writer, report *domain.Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return errors.Wrap(err, "erro ao gerar JSON do relatório")
	}
	return nil
}

// writeYAML passa pelo JSON para manter os nomes de campo e a ordem das tags json
func writeYAML(w io.Writer, report *domain.Report) error {
	raw, err := json.Marshal(report)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar relatório")
	}

	var node yaml.Node
	if err := yaml.Unmarshal(raw, &node); err != nil {
		return errors.Wrap(err, "erro ao converter relatório para YAML")
	}
	blockStyle(&node)

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(&node); err != nil {
		return errors.Wrap(err, "erro ao gerar YAML do relatório")
	}
	return encoder.Close()
}

// blockStyle remove o estilo de fluxo herdado do JSON
func blockStyle(node *yaml.Node) {
	node.Style = 0
	for _, child := range node.Content {
		blockStyle(child)
	}
}

var markdownTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"currency": format.Currency,
	"units":    format.Units,
	"count":    format.Count,
	"percent":  format.Percent,
	"inc":      func(i int) int { return i + 1 },
	"segments": domain.AllSegments,
	"crossTab": crossTab,
}).Parse(markdownSource))

func writeMarkdown(w io.Writer, report *domain.Report) error {
	if err := markdownTemplate.Execute(w, report); err != nil {
		return errors.Wrap(err, "erro ao gerar markdown do relatório")
	}
	return nil
}

const markdownSource = `# {{.View.Title}}
{{with .General}}
## Presentación del dataset

| Indicador | Valor |
|---|---:|
| Total de Ventas | {{currency .TotalRevenue}} |
| Productos vendidos | {{units .UnitsSold}} |
| Ticket medio | {{currency .AverageTicket}} |
| Clientes únicos | {{count .UniqueCustomers}} |

## Clientes con mayor venta acumulada

| # | Cliente | Total_Venta |
|---:|---|---:|
{{range $i, $row := .TopCustomers}}| {{inc $i}} | {{$row.Customer}} | {{currency $row.Spend}} |
{{end}}{{end}}{{with .Category}}
## Unidades por categoría

| Categoría | Cantidad |
|---|---:|
{{range .UnitsByCategory}}| {{.Category}} | {{units .Units}} |
{{end}}
## Ingreso por categoría

| Categoría | Total_Venta |
|---|---:|
{{range .RevenueByCategory}}| {{.Category}} | {{currency .Revenue}} |
{{end}}
## Ventas por canal de distribución

| Canal | Total_Venta | % |
|---|---:|---:|
{{range .ChannelShares}}| {{.Channel}} | {{currency .Revenue}} | {{percent .Share}} |
{{end}}
## Los {{len .TopProducts}} productos más vendidos

| Producto | Cantidad |
|---|---:|
{{range .TopProducts}}| {{.Product}} | {{units .Units}} |
{{end}}{{end}}{{with .Temporal}}
## Evolución de Ventas Mensuales

| Mes | Total de Ventas |
|---|---:|
{{range .Monthly}}| {{.YearMonth}} | {{currency .Revenue}} |
{{end}}
## Ventas acumuladas por día de la semana

| Día de la semana | Total_Venta |
|---|---:|
{{range .Weekdays}}| {{.Name}} | {{currency .Revenue}} |
{{end}}
## Top de productos más vendidos en {{.FocusMonthName}}

| Producto | Cantidad |
|---|---:|
{{range .FocusTopProducts}}| {{.Product}} | {{units .Units}} |
{{end}}
## Top de categorías más vendidas en {{.FocusMonthName}}

| Categoría | Total_Venta |
|---|---:|
{{range .FocusTopCategories}}| {{.Category}} | {{currency .Revenue}} |
{{end}}{{end}}{{with .Segmentation}}
## Distribución de clientes por segmento y canal

| Canal |{{range segments}} {{.Label}} |{{end}}
|---|{{range segments}}---:|{{end}}
{{range crossTab .}}| {{.Channel}} |{{range .Counts}} {{count .}} |{{end}}
{{end}}
## Ventas por segmento y canal

| Segmento | Canal | Total_Venta |
|---|---|---:|
{{range .SegmentChannelRevenue}}| {{.Segment.Label}} | {{.Channel}} | {{currency .Revenue}} |
{{end}}
## Categorías preferidas por clientes de alto valor

| Categoría | Total_Venta |
|---|---:|
{{range .HighValueCategories}}| {{.Category}} | {{currency .Revenue}} |
{{end}}{{end}}{{with .Conclusions}}
## Conclusiones
{{range $i, $line := .Findings}}
{{inc $i}}. {{$line}}{{end}}

## Estrategias Propuestas
{{range $i, $strategy := .Strategies}}
{{inc $i}}. **{{$strategy.Title}}:**
{{range $strategy.Items}}    - **{{.Label}}:** {{.Text}}
{{end}}{{end}}{{end}}`
