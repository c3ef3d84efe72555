package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"p9e.in/safeguard/config"
	"p9e.in/safeguard/forms"
	"p9e.in/safeguard/middleware"
)

// requestIdentity adapts the JWT claims of one request into the
// identity provider the field mapper stamps audit columns from.
type requestIdentity struct {
	claims *middleware.Claims
}

func (ri requestIdentity) CurrentActor() (forms.Actor, error) {
	if ri.claims == nil {
		return forms.Actor{}, errors.New("no authenticated session")
	}
	return forms.Actor{ID: ri.claims.UserID, DisplayName: ri.claims.Name}, nil
}

func assessmentRepo(r *http.Request) *forms.AssessmentRepository {
	return forms.NewAssessmentRepository(config.DB, requestIdentity{claims: middleware.GetClaims(r)})
}

// ListAssessments returns the assessment register projection, newest
// first.
func ListAssessments(w http.ResponseWriter, r *http.Request) {
	summaries, err := assessmentRepo(r).List()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summaries)
}

// GetAssessment fetches one assessment as a full answer record.
func GetAssessment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	rec, err := assessmentRepo(r).GetByID(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if rec == nil {
		http.Error(w, "assessment not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rec)
}

// CreateAssessment inserts a full answer record directly, bypassing
// the wizard (API clients that keep their own form state).
func CreateAssessment(w http.ResponseWriter, r *http.Request) {
	var rec forms.AnswerRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	row, err := assessmentRepo(r).Create(rec)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(row)
}

// UpdateAssessment applies a partial answer record to an existing row.
func UpdateAssessment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var partial forms.AnswerRecord
	if err := json.NewDecoder(r.Body).Decode(&partial); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := assessmentRepo(r).Update(id, partial); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteAssessment removes an assessment. Hard delete; clients confirm
// intent before calling.
func DeleteAssessment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := assessmentRepo(r).Delete(id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
