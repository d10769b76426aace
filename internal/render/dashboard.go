package render

import (
	"embed"
	"html/template"
	"io"

	"github.com/pkg/errors"
	"github.com/vfg2006/retail-sales-dashboard/internal/domain"
	"github.com/vfg2006/retail-sales-dashboard/pkg/format"
)

//go:embed templates/*.html
var templatesFS embed.FS

const dashboardTemplate = "dashboard_page"

// Page reúne o que a página do painel precisa para uma view
type Page struct {
	Title       string
	HeaderColor string
	Views       []domain.ViewSummary
	Current     domain.ViewSummary
	Report      *domain.Report
}

// CrossTabRow é uma linha da tabela canal x segmento
type CrossTabRow struct {
	Channel string
	Counts  []int
}

// Dashboard renderiza o painel HTML
type Dashboard struct {
	templates *template.Template
	title     string
}

func NewDashboard(title string) (*Dashboard, error) {
	templates, err := template.New("").Funcs(funcMap()).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar templates do painel")
	}

	return &Dashboard{templates: templates, title: title}, nil
}

// Render escreve a página completa da view contida no relatório
func (d *Dashboard) Render(w io.Writer, report *domain.Report) error {
	if report == nil {
		return errors.New("relatório ausente")
	}

	views := make([]domain.ViewSummary, 0, len(domain.AllViews()))
	for _, view := range domain.AllViews() {
		views = append(views, view.Summary())
	}

	page := Page{
		Title:       d.title,
		HeaderColor: HeaderColor,
		Views:       views,
		Current:     report.View,
		Report:      report,
	}

	if err := d.templates.ExecuteTemplate(w, dashboardTemplate, page); err != nil {
		return errors.Wrapf(err, "erro ao renderizar view %s", report.View.Slug)
	}

	return nil
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"currency": format.Currency,
		"units":    format.Units,
		"count":    format.Count,
		"percent":  format.Percent,
		"join":     format.JoinSpanish,
		"color":    PaletteColor,
		"inc":      func(i int) int { return i + 1 },
		"segments": domain.AllSegments,
		"crossTab": crossTab,
	}
}

// crossTab organiza a contagem de clientes em linhas por canal e colunas por segmento
func crossTab(report *domain.SegmentationReport) []CrossTabRow {
	rows := make([]CrossTabRow, 0, len(report.Channels))
	position := make(map[string]int, len(report.Channels))
	for _, channel := range report.Channels {
		position[channel] = len(rows)
		rows = append(rows, CrossTabRow{Channel: channel, Counts: make([]int, len(domain.AllSegments()))})
	}

	for _, cell := range report.ChannelSegments {
		i, ok := position[cell.Channel]
		if !ok {
			continue
		}
		rows[i].Counts[cell.Segment] = cell.Customers
	}

	return rows
}
