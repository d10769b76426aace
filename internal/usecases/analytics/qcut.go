package analytics

import (
	"sort"

	"github.com/vfg2006/retail-sales-dashboard/internal/domain"
)

const segmentBins = 3

// quantileEdges calcula as bordas de bins de mesma frequência usando
// interpolação linear entre as posições (n-1)*k/bins dos valores ordenados.
// Retorna bins+1 bordas, ou nil para uma população vazia.
func quantileEdges(values []float64, bins int) []float64 {
	if len(values) == 0 || bins <= 0 {
		return nil
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	edges := make([]float64, bins+1)
	for k := 0; k <= bins; k++ {
		// Posição exata como fração inteira evita erro de arredondamento em (n-1)*k/bins
		num := (n - 1) * k
		lower := num / bins
		rem := num % bins
		if rem == 0 {
			edges[k] = sorted[lower]
			continue
		}
		frac := float64(rem) / float64(bins)
		edges[k] = sorted[lower] + (sorted[lower+1]-sorted[lower])*frac
	}

	return edges
}

// segmentFor aplica o corte por tercis: valores iguais à borda ficam no bin inferior
func segmentFor(value float64, edges []float64) domain.Segment {
	switch {
	case value <= edges[1]:
		return domain.SegmentLow
	case value <= edges[2]:
		return domain.SegmentMedium
	default:
		return domain.SegmentHigh
	}
}
