package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-sales-dashboard/internal/domain"
)

// Formatos de data aceitos na coluna Fecha, na ordem de tentativa
var dateLayouts = []string{
	time.DateOnly,
	time.DateTime,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006/01/02",
	"01/02/2006",
	"01/02/2006 15:04:05",
}

var (
	ErrEmptyFile  = errors.New("arquivo de vendas vazio")
	ErrEmptyValue = errors.New("valor vazio")
)

var requiredTextColumns = []string{
	domain.ColumnCustomer,
	domain.ColumnProduct,
	domain.ColumnCategory,
	domain.ColumnChannel,
}

// ParseError descreve uma linha do arquivo que não pôde ser interpretada
type ParseError struct {
	Row    int // Linha no arquivo, com o cabeçalho na linha 1
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("linha %d: %v", e.Row, e.Err)
	}
	return fmt.Sprintf("linha %d, coluna %s (%q): %v", e.Row, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type salesCSVRepository struct {
	path string
}

// NewSalesCSVRepository cria um repositório que lê as vendas de um arquivo CSV
func NewSalesCSVRepository(path string) SalesRepository {
	return &salesCSVRepository{path: path}
}

func (r *salesCSVRepository) Source() string {
	return "csv:" + r.path
}

func (r *salesCSVRepository) LoadSales(ctx context.Context) ([]domain.Sale, error) {
	file, err := os.Open(r.path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir arquivo de vendas %s", r.path)
	}
	defer file.Close()

	sales, err := ParseSalesCSV(ctx, file)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler arquivo de vendas %s", r.path)
	}

	logrus.WithFields(logrus.Fields{
		"path":  r.path,
		"sales": len(sales),
	}).Debug("Arquivo de vendas lido")

	return sales, nil
}

// ParseSalesCSV lê vendas no formato {Fecha, Cliente, Producto, Categoría, Canal, Cantidad, Total_Venta}.
// A ordem das colunas é livre; qualquer linha inválida interrompe a leitura.
func ParseSalesCSV(ctx context.Context, in io.Reader) ([]domain.Sale, error) {
	reader := csv.NewReader(in)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler cabeçalho")
	}

	index, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	sales := make([]domain.Sale, 0, 1024)
	row := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, &ParseError{Row: row, Err: err}
		}

		if row%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		sale, err := parseSale(record, index, row)
		if err != nil {
			return nil, err
		}
		sales = append(sales, sale)
	}

	return sales, nil
}

func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, exists := index[name]; !exists {
			index[name] = i
		}
	}

	missing := make([]string, 0)
	for _, column := range domain.SaleColumns {
		if _, ok := index[column]; !ok {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		return nil, errors.Errorf("colunas obrigatórias ausentes no cabeçalho: %s", strings.Join(missing, ", "))
	}

	return index, nil
}

func parseSale(record []string, index map[string]int, row int) (domain.Sale, error) {
	field := func(column string) string {
		return strings.TrimSpace(record[index[column]])
	}

	rawDate := field(domain.ColumnDate)
	date, err := ParseSaleDate(rawDate)
	if err != nil {
		return domain.Sale{}, &ParseError{Row: row, Column: domain.ColumnDate, Value: rawDate, Err: err}
	}

	rawQuantity := field(domain.ColumnQuantity)
	quantity, err := parseQuantity(rawQuantity)
	if err != nil {
		return domain.Sale{}, &ParseError{Row: row, Column: domain.ColumnQuantity, Value: rawQuantity, Err: err}
	}

	rawAmount := field(domain.ColumnAmount)
	amount, err := parseAmount(rawAmount)
	if err != nil {
		return domain.Sale{}, &ParseError{Row: row, Column: domain.ColumnAmount, Value: rawAmount, Err: err}
	}

	// Células vazias não formam grupo nos agregados, então a linha é rejeitada
	text := make(map[string]string, len(requiredTextColumns))
	for _, column := range requiredTextColumns {
		value := field(column)
		if value == "" {
			return domain.Sale{}, &ParseError{Row: row, Column: column, Value: value, Err: ErrEmptyValue}
		}
		text[column] = value
	}

	return domain.Sale{
		Date:     date,
		Customer: text[domain.ColumnCustomer],
		Product:  text[domain.ColumnProduct],
		Category: text[domain.ColumnCategory],
		Channel:  text[domain.ColumnChannel],
		Quantity: quantity,
		Amount:   amount,
	}, nil
}

// ParseSaleDate interpreta a data da venda em um dos formatos aceitos
func ParseSaleDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("data vazia")
	}

	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, value); err == nil {
			return date, nil
		}
	}

	return time.Time{}, errors.New("formato de data não reconhecido")
}

func parseQuantity(value string) (int64, error) {
	quantity, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		// Planilhas exportadas às vezes gravam inteiros como "3.0"
		d, decErr := decimal.NewFromString(value)
		if decErr != nil || !d.IsInteger() {
			return 0, errors.New("quantidade deve ser um número inteiro")
		}
		quantity = d.IntPart()
	}

	if quantity < 0 {
		return 0, errors.New("quantidade não pode ser negativa")
	}

	return quantity, nil
}

func parseAmount(value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, errors.New("valor de venda inválido")
	}

	if amount.IsNegative() {
		return decimal.Zero, errors.New("valor de venda não pode ser negativo")
	}

	return amount, nil
}
