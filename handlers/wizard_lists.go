package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"p9e.in/safeguard/forms"
)

// editorConfigs names the dynamic-list instances the wizard surface
// exposes. Personnel lists have fixed role categories, so they carry
// no selection or catalog field.
var editorConfigs = map[string]forms.ListEditorConfig{
	"resources": {
		SelectionField: "resourceCategories",
		EntrySuffix:    "Resources",
		CatalogField:   "customResourceCategories",
		PrimaryField:   "location",
	},
	"personnel": {
		EntrySuffix:  "List",
		PrimaryField: "fullName",
	},
}

// session list editors are rebuilt per request; the buffer is supplied
// in the request body, so no transient state survives between calls.
func editorFor(listType string, session *wizardSession) *forms.ListEditor {
	cfg, ok := editorConfigs[listType]
	if !ok {
		return nil
	}
	return forms.NewListEditor(cfg, session.Wizard.FormData)
}

// WizardAddListEntry stages the posted fields as the new-entry buffer
// for a category and appends the entry.
func WizardAddListEntry(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var fields map[string]string
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	sessionsMu.Lock()
	defer sessionsMu.Unlock()
	session := sessionFromRequest(r)
	if session == nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	editor := editorFor(vars["listType"], session)
	if editor == nil {
		http.Error(w, "unknown list type", http.StatusBadRequest)
		return
	}

	category := vars["category"]
	for field, value := range fields {
		editor.SetBufferField(category, field, value)
	}
	if _, added := editor.AddEntry(category); !added {
		http.Error(w, "primary field is required", http.StatusUnprocessableEntity)
		return
	}
	writeState(w, session)
}

// WizardRemoveListEntry deletes one entry by id.
func WizardRemoveListEntry(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	sessionsMu.Lock()
	defer sessionsMu.Unlock()
	session := sessionFromRequest(r)
	if session == nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	editor := editorFor(vars["listType"], session)
	if editor == nil {
		http.Error(w, "unknown list type", http.StatusBadRequest)
		return
	}
	editor.RemoveEntry(vars["category"], vars["entryId"])
	writeState(w, session)
}

// WizardChangeSelection replaces a multi-select token array. Resource
// selections clear the entry lists of deselected categories; hazard
// and condition selections clear the deselected tokens' detail fields.
func WizardChangeSelection(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var req struct {
		Tokens []string `json:"tokens"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	sessionsMu.Lock()
	defer sessionsMu.Unlock()
	session := sessionFromRequest(r)
	if session == nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	field := vars["field"]
	if field == "resourceCategories" {
		editorFor("resources", session).ChangeSelection(req.Tokens)
	} else {
		forms.ClearDeselectedDetails(session.Wizard.FormData, field, req.Tokens)
	}
	writeState(w, session)
}

// WizardAddCustomCategory creates a user-defined resource category.
func WizardAddCustomCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Label       string `json:"label"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	sessionsMu.Lock()
	defer sessionsMu.Unlock()
	session := sessionFromRequest(r)
	if session == nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	editor := editorFor("resources", session)
	if _, err := editor.AddCustomCategory(req.Label, req.Description); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	writeState(w, session)
}

// WizardRemoveCustomCategory deletes a user-defined resource category
// and everything hanging off it.
func WizardRemoveCustomCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Label string `json:"label"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	sessionsMu.Lock()
	defer sessionsMu.Unlock()
	session := sessionFromRequest(r)
	if session == nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	editorFor("resources", session).RemoveCustomCategory(req.Label)
	writeState(w, session)
}
