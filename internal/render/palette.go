package render

import (
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Palette é a paleta fixa do painel
var Palette = []string{
	"#102A38", "#26506B", "#44838B", "#8AC4BE", "#E6D7B5",
	"#E0A841", "#C87D33", "#B1522F", "#98312A",
}

// HeaderColor é a cor dos títulos (antepenúltima cor da paleta)
var HeaderColor = Palette[len(Palette)-3]

// PaletteColor retorna a cor i da paleta, repetindo a sequência quando necessário
func PaletteColor(i int) string {
	return Palette[i%len(Palette)]
}

func chartColor(i int) drawing.Color {
	return hexColor(PaletteColor(i))
}

func hexColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}
