package domain

// View identifica uma das cinco páginas do painel
type View int

const (
	ViewGeneral View = iota + 1
	ViewCategory
	ViewTemporal
	ViewSegmentation
	ViewConclusions
)

type viewInfo struct {
	label string
	slug  string
	title string
}

var views = map[View]viewInfo{
	ViewGeneral:      {label: "1.Análisis General", slug: "general", title: "Análisis general"},
	ViewCategory:     {label: "2.Análisis por categoría", slug: "categorias", title: "Análisis por categoría"},
	ViewTemporal:     {label: "3.Análisis temporal", slug: "temporal", title: "Análisis temporal"},
	ViewSegmentation: {label: "4.Segmentación de clientes", slug: "segmentacion", title: "Análisis de Segmentación de Clientes"},
	ViewConclusions:  {label: "5.Conclusiones y estrategias", slug: "conclusiones", title: "Conclusiones del Análisis"},
}

// AllViews retorna as views na ordem do menu
func AllViews() []View {
	return []View{ViewGeneral, ViewCategory, ViewTemporal, ViewSegmentation, ViewConclusions}
}

func (v View) Valid() bool {
	_, ok := views[v]
	return ok
}

// Label é o texto exibido no menu de navegação
func (v View) Label() string {
	return views[v].label
}

// Slug é o identificador usado nas URLs
func (v View) Slug() string {
	return views[v].slug
}

func (v View) Title() string {
	return views[v].title
}

func (v View) String() string {
	return v.Slug()
}

// ViewSummary é a representação JSON de uma view
type ViewSummary struct {
	Number int    `json:"number"`
	Label  string `json:"label"`
	Slug   string `json:"slug"`
	Title  string `json:"title"`
}

func (v View) Summary() ViewSummary {
	return ViewSummary{
		Number: int(v),
		Label:  v.Label(),
		Slug:   v.Slug(),
		Title:  v.Title(),
	}
}
