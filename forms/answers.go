package forms

// AnswerRecord is the in-memory, camelCase-keyed representation of one
// in-progress assessment. Values are scalar strings, []string
// multi-selects, free-text detail strings, or entry lists.
type AnswerRecord map[string]any

// Entry is one row of a dynamic list (personnel, resources). The "id"
// key is always present and unique within its owning list.
type Entry map[string]any

// KeyClass tells which of the four key families an answer-record key
// belongs to. Classification drives how the field mapper routes the
// value into storage.
type KeyClass int

const (
	KeyFixedField KeyClass = iota
	KeyDetailField
	KeyCustomResourceList
	KeyCustomHazardDetail
	KeyCustomHighHazardDetail
)

// ClassifyKey inspects a key and reports its class. Keys present in the
// override table are always fixed fields, whatever their shape; custom
// keys are recognised by the patterns the list editors generate
// (lowerCamel category + "Resources", "custom_"/"custom_high_" hazard
// tokens + "Details").
func ClassifyKey(key string) KeyClass {
	if _, ok := fieldOverrides[key]; ok {
		return KeyFixedField
	}
	if isCustomResourceKey(key) {
		return KeyCustomResourceList
	}
	if isCustomHazardDetailKey(key) {
		if isHighLevelCustomKey(key) {
			return KeyCustomHighHazardDetail
		}
		return KeyCustomHazardDetail
	}
	if isDetailKey(key) {
		return KeyDetailField
	}
	return KeyFixedField
}

// Clone returns a copy deep enough for wizard resets: nested entry
// lists and string slices are copied, scalars are shared.
func (r AnswerRecord) Clone() AnswerRecord {
	if r == nil {
		return AnswerRecord{}
	}
	out := make(AnswerRecord, len(r))
	for k, v := range r {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch tv := v.(type) {
	case []string:
		return append([]string(nil), tv...)
	case []int:
		return append([]int(nil), tv...)
	case []Entry:
		entries := make([]Entry, 0, len(tv))
		for _, e := range tv {
			ne := make(Entry, len(e))
			for k, val := range e {
				ne[k] = val
			}
			entries = append(entries, ne)
		}
		return entries
	case []any:
		items := make([]any, 0, len(tv))
		for _, item := range tv {
			items = append(items, cloneValue(item))
		}
		return items
	case map[string]any:
		m := make(map[string]any, len(tv))
		for k, val := range tv {
			m[k] = cloneValue(val)
		}
		return m
	case AnswerRecord:
		return tv.Clone()
	default:
		return v
	}
}

// Merge shallow-merges partial into the record, overwriting existing
// keys. It never validates.
func (r AnswerRecord) Merge(partial AnswerRecord) {
	for k, v := range partial {
		r[k] = v
	}
}

// StringAt returns the value under key as a string, or "" when the key
// is absent or not string-shaped.
func (r AnswerRecord) StringAt(key string) string {
	s, _ := r[key].(string)
	return s
}

// StringsAt returns the value under key as a string slice. Slices that
// arrive as []any after a JSON decode are converted element-wise.
func (r AnswerRecord) StringsAt(key string) []string {
	switch v := r[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// EntriesAt returns the value under key as an entry list, tolerating
// the []any/map[string]any shape produced by JSON decoding.
func (r AnswerRecord) EntriesAt(key string) []Entry {
	switch v := r[key].(type) {
	case []Entry:
		return v
	case []any:
		out := make([]Entry, 0, len(v))
		for _, item := range v {
			if m, ok := item.(map[string]any); ok {
				out = append(out, Entry(m))
			}
		}
		return out
	default:
		return nil
	}
}
