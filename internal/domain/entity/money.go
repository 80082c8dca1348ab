package entity

import "github.com/shopspring/decimal"

// Money valor monetário. Serializa sempre entre aspas e com duas casas
// decimais ("150.00"), o formato dos arquivos de dados; decimal.Decimal puro
// apara zeros à direita e emitiria "150". A leitura aceita qualquer forma
// numérica (herdada do decimal embutido).
type Money struct {
	decimal.Decimal
}

// NewMoney embrulha um decimal como valor monetário.
func NewMoney(d decimal.Decimal) Money { return Money{d} }

// MarshalJSON emite o valor com exatamente duas casas decimais.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.StringFixed(2) + `"`), nil
}
