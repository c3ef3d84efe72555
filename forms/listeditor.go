package forms

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// NewEntryID generates a list-entry identifier that is unique even for
// entries created within the same millisecond: wall-clock prefix plus
// a random suffix.
func NewEntryID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// LowerCamel turns a free-text label into a lowerCamelCase token:
// "My Custom Gear" -> "myCustomGear".
func LowerCamel(label string) string {
	words := strings.FieldsFunc(label, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	var b strings.Builder
	for i, word := range words {
		runes := []rune(strings.ToLower(word))
		if i > 0 && len(runes) > 0 {
			runes[0] = unicode.ToUpper(runes[0])
		}
		b.WriteString(string(runes))
	}
	return b.String()
}

// CustomHazardToken builds the token for a user-created hazard. The
// prefix is what the field mapper's bucket routing keys on.
func CustomHazardToken(name string, highLevel bool) string {
	if highLevel {
		return customHighTokenPrefix + LowerCamel(name)
	}
	return customTokenPrefix + LowerCamel(name)
}

// ClearDeselectedDetails updates a selection field and blanks the
// `${token}Details` field of every token that is no longer selected.
// Details of tokens that stay selected are untouched.
func ClearDeselectedDetails(rec AnswerRecord, field string, newTokens []string) {
	previous := rec.StringsAt(field)
	keep := make(map[string]bool, len(newTokens))
	for _, t := range newTokens {
		keep[t] = true
	}
	for _, t := range previous {
		if !keep[t] {
			rec[t+detailSuffix] = ""
		}
	}
	rec[field] = newTokens
}

// ListEditorConfig parameterises one instance of the dynamic-list
// pattern for a step.
type ListEditorConfig struct {
	// SelectionField holds the selected category tokens, e.g.
	// "resourceCategories".
	SelectionField string
	// EntrySuffix is appended to a category token to form its list
	// key: "Resources" or "List".
	EntrySuffix string
	// CatalogField holds the user-created category descriptors, e.g.
	// "customResourceCategories".
	CatalogField string
	// PrimaryField is the buffer field that must be non-blank before
	// an entry may be added ("location", "fullName").
	PrimaryField string
}

// ListEditor manages user-extensible entry lists on an answer record:
// a parent category selection, a transient new-entry buffer per
// category, and the persisted `${category}${suffix}` lists.
type ListEditor struct {
	cfg     ListEditorConfig
	rec     AnswerRecord
	buffers map[string]Entry
}

// NewListEditor wires an editor to the record it manages. The record
// is shared with the owning wizard; the editor mutates it in place.
func NewListEditor(cfg ListEditorConfig, rec AnswerRecord) *ListEditor {
	return &ListEditor{
		cfg:     cfg,
		rec:     rec,
		buffers: map[string]Entry{},
	}
}

func (e *ListEditor) listKey(category string) string {
	return category + e.cfg.EntrySuffix
}

// SetBufferField stages a value in the transient new-entry buffer for
// a category. Nothing touches the record until AddEntry.
func (e *ListEditor) SetBufferField(category, field, value string) {
	buf, ok := e.buffers[category]
	if !ok {
		buf = Entry{}
		e.buffers[category] = buf
	}
	buf[field] = value
}

// Buffer returns the transient buffer for a category (may be nil).
func (e *ListEditor) Buffer(category string) Entry {
	return e.buffers[category]
}

// AddEntry appends the buffered entry to the category's list when the
// primary field is non-blank, assigns it a fresh unique id, and clears
// the buffer. Returns the new id and whether an entry was added.
func (e *ListEditor) AddEntry(category string) (string, bool) {
	buf := e.buffers[category]
	primary, _ := buf[e.cfg.PrimaryField].(string)
	if strings.TrimSpace(primary) == "" {
		return "", false
	}

	entry := make(Entry, len(buf)+1)
	for k, v := range buf {
		entry[k] = v
	}
	// the generated id always wins; a buffered "id" would let callers
	// forge duplicates
	entry["id"] = NewEntryID()

	key := e.listKey(category)
	e.rec[key] = append(e.rec.EntriesAt(key), entry)
	delete(e.buffers, category)
	return entry["id"].(string), true
}

// RemoveEntry filters the entry with the given id out of the
// category's list.
func (e *ListEditor) RemoveEntry(category, id string) {
	key := e.listKey(category)
	entries := e.rec.EntriesAt(key)
	kept := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if entry["id"] != id {
			kept = append(kept, entry)
		}
	}
	e.rec[key] = kept
}

// ChangeSelection replaces the selected-token array. Entry lists of
// deselected categories are emptied immediately; entries are not
// retained for later reselection.
func (e *ListEditor) ChangeSelection(newTokens []string) {
	previous := e.rec.StringsAt(e.cfg.SelectionField)
	keep := make(map[string]bool, len(newTokens))
	for _, t := range newTokens {
		keep[t] = true
	}
	for _, t := range previous {
		if !keep[t] {
			e.rec[e.listKey(t)] = []Entry{}
		}
	}
	e.rec[e.cfg.SelectionField] = newTokens
}

// Selection returns the currently selected category tokens.
func (e *ListEditor) Selection() []string {
	return e.rec.StringsAt(e.cfg.SelectionField)
}

// AddCustomCategory creates a user-defined category from a free-text
// label. Duplicate labels (case-sensitive) are rejected. The new
// category gets an empty entry list and its token is returned; the
// caller decides whether to also select it.
func (e *ListEditor) AddCustomCategory(label, description string) (string, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return "", fmt.Errorf("category label is required")
	}
	catalog := e.customCatalog()
	for _, opt := range catalog {
		if opt.Label == label {
			return "", fmt.Errorf("category %q already exists", label)
		}
	}

	token := LowerCamel(label)
	catalog = append(catalog, Option{Value: token, Label: label, Description: description})
	e.rec[e.cfg.CatalogField] = catalog
	e.rec[e.listKey(token)] = []Entry{}
	return token, nil
}

// RemoveCustomCategory deletes a user-defined category: its
// descriptor, its entry list, and its token in the selection array.
func (e *ListEditor) RemoveCustomCategory(label string) {
	catalog := e.customCatalog()
	kept := make([]Option, 0, len(catalog))
	var token string
	for _, opt := range catalog {
		if opt.Label == label {
			token = opt.Value
			continue
		}
		kept = append(kept, opt)
	}
	if token == "" {
		return
	}
	e.rec[e.cfg.CatalogField] = kept
	delete(e.rec, e.listKey(token))

	selected := e.rec.StringsAt(e.cfg.SelectionField)
	remaining := make([]string, 0, len(selected))
	for _, t := range selected {
		if t != token {
			remaining = append(remaining, t)
		}
	}
	e.rec[e.cfg.SelectionField] = remaining
}

func (e *ListEditor) customCatalog() []Option {
	switch v := e.rec[e.cfg.CatalogField].(type) {
	case []Option:
		return v
	case []any:
		out := make([]Option, 0, len(v))
		for _, item := range v {
			if m, ok := item.(map[string]any); ok {
				opt := Option{}
				opt.Value, _ = m["value"].(string)
				opt.Label, _ = m["label"].(string)
				opt.Description, _ = m["description"].(string)
				out = append(out, opt)
			}
		}
		return out
	default:
		return nil
	}
}
