package navigating

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"github.com/vfg2006/retail-sales-dashboard/internal/domain"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var ErrUnknownView = errors.New("view desconhecida")

// Navigator resolve a seleção do menu lateral para uma das views do painel
type Navigator interface {
	Resolve(input string) (domain.View, error)
	Views() []domain.ViewSummary
}

type Service struct {
	index map[string]domain.View
}

func NewService() Navigator {
	index := make(map[string]domain.View)
	for _, view := range domain.AllViews() {
		number := strconv.Itoa(int(view))
		label := view.Label()

		index[number] = view
		index[normalize(label)] = view
		index[normalize(strings.TrimPrefix(label, number+"."))] = view
		index[normalize(view.Slug())] = view
		index[normalize(view.Title())] = view
	}

	return &Service{index: index}
}

// Resolve aceita o rótulo completo, o número (1-5) ou o slug da view.
// Entrada vazia seleciona a primeira view, como o menu faz ao abrir a página.
func (s *Service) Resolve(input string) (domain.View, error) {
	key := normalize(input)
	if key == "" {
		return domain.ViewGeneral, nil
	}

	view, ok := s.index[key]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownView, "%q", input)
	}

	return view, nil
}

func (s *Service) Views() []domain.ViewSummary {
	views := domain.AllViews()
	summaries := make([]domain.ViewSummary, 0, len(views))
	for _, view := range views {
		summaries = append(summaries, view.Summary())
	}
	return summaries
}

// normalize remove acentos, espaços nas pontas e diferenças de caixa
func normalize(value string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, value)
	if err != nil {
		result = value
	}
	return strings.ToLower(strings.TrimSpace(result))
}
