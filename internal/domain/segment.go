package domain

import "github.com/shopspring/decimal"

// Segment é a faixa de gasto do cliente calculada por tercis
type Segment int

const (
	SegmentLow Segment = iota
	SegmentMedium
	SegmentHigh
)

var segmentLabels = [3]string{"Bajo", "Medio", "Alto"}

// AllSegments retorna os segmentos na ordem Bajo, Medio, Alto
func AllSegments() []Segment {
	return []Segment{SegmentLow, SegmentMedium, SegmentHigh}
}

func (s Segment) Label() string {
	if s < SegmentLow || s > SegmentHigh {
		return ""
	}
	return segmentLabels[s]
}

func (s Segment) String() string {
	return s.Label()
}

func (s Segment) MarshalText() ([]byte, error) {
	return []byte(s.Label()), nil
}

// CustomerSegment associa o gasto acumulado de um cliente ao seu segmento
type CustomerSegment struct {
	Customer string          `json:"customer"`
	Spend    decimal.Decimal `json:"spend"`
	Segment  Segment         `json:"segment"`
}
