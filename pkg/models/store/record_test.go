package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_Relation(t *testing.T) {
	tests := []struct {
		name     string
		record   Record
		expected Relation
	}{
		{
			name:     "false value",
			record:   Record{"partner_id": false},
			expected: Relation{},
		},
		{
			name:     "absent field",
			record:   Record{},
			expected: Relation{},
		},
		{
			name:     "id and label tuple",
			record:   Record{"partner_id": []any{float64(7), "Acme Corp"}},
			expected: Relation{ID: 7, Label: "Acme Corp"},
		},
		{
			name:     "single element tuple",
			record:   Record{"partner_id": []any{float64(7)}},
			expected: Relation{},
		},
		{
			name:     "non-tuple value",
			record:   Record{"partner_id": "garbage"},
			expected: Relation{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.record.Relation("partner_id"))
		})
	}
}

func TestRelation_LabelOr(t *testing.T) {
	assert.Equal(t, "Not Available", Relation{}.LabelOr("Not Available"))
	assert.Equal(t, "Monthly", Relation{ID: 3, Label: "Monthly"}.LabelOr("Not Available"))
	assert.False(t, Relation{}.Set())
	assert.True(t, Relation{ID: 3, Label: "Monthly"}.Set())
}

func TestRecord_Str(t *testing.T) {
	rec := Record{"name": "SO001", "street": false}

	assert.Equal(t, "SO001", rec.Str("name", "N/A"))
	assert.Equal(t, "N/A", rec.Str("street", "N/A"))
	assert.Equal(t, "N/A", rec.Str("missing", "N/A"))
}

func TestRecord_Float(t *testing.T) {
	rec := Record{"amount_total": float64(99.5), "amount_untaxed": false}

	assert.Equal(t, 99.5, rec.Float("amount_total"))
	assert.Equal(t, float64(0), rec.Float("amount_untaxed"))
	assert.Equal(t, float64(0), rec.Float("missing"))
}

func TestRecord_IDs(t *testing.T) {
	rec := Record{"order_line": []any{float64(10), float64(11)}}

	assert.Equal(t, []int64{10, 11}, rec.IDs("order_line"))
	assert.Nil(t, Record{"order_line": false}.IDs("order_line"))
	assert.Nil(t, Record{}.IDs("order_line"))
}

func TestRecord_JSONDecoding(t *testing.T) {
	payload := `{
		"id": 1,
		"name": "SO001",
		"partner_id": [7, "Acme Corp"],
		"plan_id": false,
		"order_line": [10, 11],
		"amount_total": 120.0
	}`

	var rec Record
	require.NoError(t, json.Unmarshal([]byte(payload), &rec))

	assert.Equal(t, "SO001", rec.Str("name", ""))
	assert.Equal(t, Relation{ID: 7, Label: "Acme Corp"}, rec.Relation("partner_id"))
	assert.Equal(t, Relation{}, rec.Relation("plan_id"))
	assert.Equal(t, []int64{10, 11}, rec.IDs("order_line"))
	assert.Equal(t, 120.0, rec.Float("amount_total"))
	assert.True(t, rec.Has("plan_id"))
	assert.False(t, rec.Has("subscription_state"))
}
