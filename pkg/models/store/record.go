package store

// Record is a single row returned by the Odoo backend. The backend gives no
// schema guarantees: any field may be absent, false, or a relation tuple, so
// every accessor takes or implies a default and never fails.
type Record map[string]any

// Relation is a decoded many2one reference. The backend encodes these as
// either false (unset) or a two-element [id, label] tuple; the zero value
// of Relation means unset.
type Relation struct {
	ID    int64
	Label string
}

func (rel Relation) Set() bool {
	return rel.ID != 0 || rel.Label != ""
}

// LabelOr returns the relation label, or def when the relation is unset or
// carries no label.
func (rel Relation) LabelOr(def string) string {
	if rel.Label == "" {
		return def
	}
	return rel.Label
}

func (r Record) Has(field string) bool {
	_, ok := r[field]
	return ok
}

// Str returns the field as a string, or def when the field is absent, false,
// or not a string.
func (r Record) Str(field, def string) string {
	if s, ok := r[field].(string); ok {
		return s
	}
	return def
}

// Float returns the field as a number, or 0 when absent or non-numeric.
// JSON decoding always yields float64 for numbers.
func (r Record) Float(field string) float64 {
	switch v := r[field].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	default:
		return 0
	}
}

// Relation decodes a many2one field. Anything that is not a well-formed
// [id, label] tuple decodes to the unset relation.
func (r Record) Relation(field string) Relation {
	tuple, ok := r[field].([]any)
	if !ok || len(tuple) < 2 {
		return Relation{}
	}

	var rel Relation
	if id, ok := tuple[0].(float64); ok {
		rel.ID = int64(id)
	}
	if label, ok := tuple[1].(string); ok {
		rel.Label = label
	}
	return rel
}

// IDs decodes a one2many field, a list of numeric ids. Absent or malformed
// values decode to nil; non-numeric elements are skipped.
func (r Record) IDs(field string) []int64 {
	list, ok := r[field].([]any)
	if !ok || len(list) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(list))
	for _, v := range list {
		if id, ok := v.(float64); ok {
			ids = append(ids, int64(id))
		}
	}
	return ids
}
