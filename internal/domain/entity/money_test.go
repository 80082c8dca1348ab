package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ascendtech/locacao-pro/internal/domain/entity"
)

// Valores inteiros não podem perder as casas decimais na serialização:
// 150.00 × 2 resulta em "300", não "300.00", no String() do decimal puro.
func TestMoney_SerializaComDuasCasas(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"300", `"300.00"`},
		{"150.00", `"150.00"`},
		{"400.5", `"400.50"`},
		{"0", `"0.00"`},
	}
	for _, tc := range cases {
		got, err := json.Marshal(entity.NewMoney(decimal.RequireFromString(tc.in)))
		require.NoError(t, err)
		assert.Equal(t, tc.want, string(got), tc.in)
	}
}

// A soma de valores com duas casas continua serializando com duas casas.
func TestMoney_TotaisDoContrato(t *testing.T) {
	c := entity.Contract{
		Items: []entity.ContractItem{
			{Quantity: 2, UnitMonthlyValue: entity.NewMoney(decimal.RequireFromString("150.00"))},
		},
		DeliveryValue: entity.NewMoney(decimal.RequireFromString("50.00")),
		PickupValue:   entity.NewMoney(decimal.RequireFromString("50.00")),
	}

	mensal, err := json.Marshal(c.MonthlyTotal())
	require.NoError(t, err)
	assert.Equal(t, `"300.00"`, string(mensal))

	geral, err := json.Marshal(c.GrandTotal())
	require.NoError(t, err)
	assert.Equal(t, `"400.00"`, string(geral))
}

// A leitura aceita as formas gravadas pelos arquivos antigos.
func TestMoney_LeituraDeFormasLegadas(t *testing.T) {
	var m entity.Money
	require.NoError(t, json.Unmarshal([]byte(`"150.00"`), &m))
	assert.True(t, m.Equal(decimal.RequireFromString("150.00")))

	require.NoError(t, json.Unmarshal([]byte(`150`), &m))
	assert.True(t, m.Equal(decimal.NewFromInt(150)))
}
