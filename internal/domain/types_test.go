package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  int64
		expectErr bool
	}{
		{
			name:     "whole amount",
			input:    "10",
			expected: 1000,
		},
		{
			name:     "two decimal places",
			input:    "10.00",
			expected: 1000,
		},
		{
			name:     "one decimal place",
			input:    "4.5",
			expected: 450,
		},
		{
			name:     "cents only",
			input:    "0.99",
			expected: 99,
		},
		{
			name:     "zero",
			input:    "0",
			expected: 0,
		},
		{
			name:      "three decimal places",
			input:     "10.001",
			expectErr: true,
		},
		{
			name:      "not a number",
			input:     "ten dollars",
			expectErr: true,
		},
		{
			name:      "empty",
			input:     "",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseMoney(tt.input)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, m.Cents())
		})
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	price := NewMoneyFromCents(1000) // 10.00

	assert.Equal(t, int64(3000), price.Mul(3).Cents())
	assert.Equal(t, int64(3800), price.Mul(3).Add(NewMoneyFromCents(400).Mul(2)).Cents())
	assert.Equal(t, "38.00", price.Mul(3).Add(NewMoneyFromCents(400).Mul(2)).String())
	assert.False(t, price.Negative())
	assert.True(t, NewMoneyFromCents(-1).Negative())
}

func TestMoney_RepeatedAdditionNoDrift(t *testing.T) {
	// 0.10 added one thousand times must be exactly 100.00
	var total Money
	dime := NewMoneyFromCents(10)
	for range 1000 {
		total = total.Add(dime)
	}
	assert.Equal(t, "100.00", total.String())
}

func TestMoney_JSON(t *testing.T) {
	m := NewMoneyFromCents(1234)

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `"12.34"`, string(data))

	var decodedString Money
	require.NoError(t, json.Unmarshal([]byte(`"12.34"`), &decodedString))
	assert.Equal(t, m, decodedString)

	var decodedNumber Money
	require.NoError(t, json.Unmarshal([]byte(`12.34`), &decodedNumber))
	assert.Equal(t, m, decodedNumber)
}

func TestNeed_Validate(t *testing.T) {
	valid := func() Need {
		return Need{
			Name:           "Blankets",
			Type:           NeedTypeGoods,
			Price:          NewMoneyFromCents(1000),
			QuantityNeeded: 100,
			Urgency:        UrgencyHigh,
		}
	}

	tests := []struct {
		name      string
		mutate    func(*Need)
		expectErr bool
	}{
		{
			name:   "valid need",
			mutate: func(n *Need) {},
		},
		{
			name:      "missing name",
			mutate:    func(n *Need) { n.Name = "" },
			expectErr: true,
		},
		{
			name:      "invalid type",
			mutate:    func(n *Need) { n.Type = "snacks" },
			expectErr: true,
		},
		{
			name:      "negative price",
			mutate:    func(n *Need) { n.Price = NewMoneyFromCents(-100) },
			expectErr: true,
		},
		{
			name:      "zero quantity needed",
			mutate:    func(n *Need) { n.QuantityNeeded = 0 },
			expectErr: true,
		},
		{
			name:      "negative fulfilled",
			mutate:    func(n *Need) { n.QuantityFulfilled = -1 },
			expectErr: true,
		},
		{
			name:      "invalid urgency",
			mutate:    func(n *Need) { n.Urgency = "someday" },
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			need := valid()
			tt.mutate(&need)
			err := need.Validate()
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNeed_Remaining(t *testing.T) {
	need := Need{QuantityNeeded: 100, QuantityFulfilled: 30}
	assert.Equal(t, int64(70), need.Remaining())

	need.QuantityFulfilled = 100
	assert.Equal(t, int64(0), need.Remaining())

	// Overshoot clamps to zero instead of going negative
	need.QuantityFulfilled = 120
	assert.Equal(t, int64(0), need.Remaining())
}

func TestResolvedLine_Subtotal(t *testing.T) {
	line := ResolvedLine{
		Need:     &Need{Price: NewMoneyFromCents(1000)},
		Quantity: 3,
	}
	assert.Equal(t, "30.00", line.Subtotal().String())
}

func TestUrgencyTag_Image(t *testing.T) {
	assert.Equal(t, "assets/images/urgent.jpg", UrgencyHigh.Image())
	assert.Equal(t, "assets/images/blank.jpg", UrgencyLow.Image())
}
