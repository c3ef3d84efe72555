package handlers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"p9e.in/safeguard/forms"
	"p9e.in/safeguard/middleware"
)

// wizardSession is one open form: a wizard plus the id of the row it
// edits (empty for a brand new assessment). One session owns its
// answer record exclusively; the store mutex only guards the map and
// serialises handler access to a session.
type wizardSession struct {
	ID           uuid.UUID
	AssessmentID string
	Wizard       *forms.Wizard
}

var (
	sessionsMu sync.Mutex
	sessions   = map[uuid.UUID]*wizardSession{}
)

type wizardState struct {
	SessionID      uuid.UUID          `json:"sessionId"`
	AssessmentID   string             `json:"assessmentId,omitempty"`
	CurrentStep    int                `json:"currentStep"`
	TotalSteps     int                `json:"totalSteps"`
	StepTitle      string             `json:"stepTitle,omitempty"`
	CompletedSteps []int              `json:"completedSteps"`
	Errors         map[string]string  `json:"errors"`
	FormData       forms.AnswerRecord `json:"formData"`
}

func stateOf(s *wizardSession) wizardState {
	return wizardState{
		SessionID:      s.ID,
		AssessmentID:   s.AssessmentID,
		CurrentStep:    s.Wizard.CurrentStep,
		TotalSteps:     s.Wizard.TotalSteps,
		StepTitle:      forms.NeedsAssessmentSteps[s.Wizard.CurrentStep].Title,
		CompletedSteps: s.Wizard.CompletedSteps,
		Errors:         s.Wizard.Errors,
		FormData:       s.Wizard.FormData,
	}
}

func writeState(w http.ResponseWriter, s *wizardSession) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stateOf(s))
}

func sessionFromRequest(r *http.Request) *wizardSession {
	id, err := uuid.Parse(mux.Vars(r)["sessionId"])
	if err != nil {
		return nil
	}
	return sessions[id]
}

// StartWizardSession opens a wizard. With an assessmentId in the body
// the form is seeded from the stored row (edit); without one it starts
// blank with the assessor name defaulted from the current session.
func StartWizardSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AssessmentID string `json:"assessmentId"`
	}
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&req)
	}

	var seed forms.AnswerRecord
	if req.AssessmentID != "" {
		rec, err := assessmentRepo(r).GetByID(req.AssessmentID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if rec == nil {
			http.Error(w, "assessment not found", http.StatusNotFound)
			return
		}
		seed = rec
	} else {
		seed = forms.AnswerRecord{}
		if claims := middleware.GetClaims(r); claims != nil {
			seed["assessorName"] = claims.Name
		}
	}

	session := &wizardSession{
		ID:           uuid.New(),
		AssessmentID: req.AssessmentID,
		Wizard:       forms.NewWizard(forms.NeedsAssessmentTotalSteps, seed),
	}

	sessionsMu.Lock()
	sessions[session.ID] = session
	sessionsMu.Unlock()

	writeState(w, session)
}

// GetWizardSession returns the current wizard state.
func GetWizardSession(w http.ResponseWriter, r *http.Request) {
	sessionsMu.Lock()
	defer sessionsMu.Unlock()
	session := sessionFromRequest(r)
	if session == nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	writeState(w, session)
}

// UpdateWizardForm shallow-merges a partial answer record into the
// session's form data. Never validates.
func UpdateWizardForm(w http.ResponseWriter, r *http.Request) {
	var partial forms.AnswerRecord
	if err := json.NewDecoder(r.Body).Decode(&partial); err != nil {
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
	session.Wizard.UpdateFormData(partial)
	writeState(w, session)
}

// WizardNext validates the current step and advances on success. On
// failure the state carries the per-field errors and the step is
// unchanged.
func WizardNext(w http.ResponseWriter, r *http.Request) {
	sessionsMu.Lock()
	defer sessionsMu.Unlock()
	session := sessionFromRequest(r)
	if session == nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	descriptor := forms.NeedsAssessmentSteps[session.Wizard.CurrentStep]
	session.Wizard.NextStep(descriptor.Validate)
	writeState(w, session)
}

// WizardPrev steps back. Always permitted, even from an invalid state.
func WizardPrev(w http.ResponseWriter, r *http.Request) {
	sessionsMu.Lock()
	defer sessionsMu.Unlock()
	session := sessionFromRequest(r)
	if session == nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	session.Wizard.PrevStep()
	writeState(w, session)
}

// WizardGoTo jumps to a step. Backward jumps are free; the only
// forward jump allowed is to the step after the current one, and only
// once the current step is completed. That gating is policy of this
// surface, not of the wizard itself.
func WizardGoTo(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Step int `json:"step"`
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

	wz := session.Wizard
	if req.Step > wz.CurrentStep {
		if req.Step != wz.CurrentStep+1 || !wz.StepCompleted(wz.CurrentStep) {
			http.Error(w, "step not reachable yet", http.StatusConflict)
			return
		}
	}
	if !wz.GoToStep(req.Step) {
		http.Error(w, "step out of range", http.StatusBadRequest)
		return
	}
	writeState(w, session)
}

// WizardReset returns the form to its seed.
func WizardReset(w http.ResponseWriter, r *http.Request) {
	sessionsMu.Lock()
	defer sessionsMu.Unlock()
	session := sessionFromRequest(r)
	if session == nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	session.Wizard.ResetForm()
	writeState(w, session)
}

// SubmitWizard persists the answer record: insert for a new form,
// partial update when editing. The final step must validate. On store
// failure the session (and its answer record) is left untouched so
// the client can retry.
func SubmitWizard(w http.ResponseWriter, r *http.Request) {
	sessionsMu.Lock()
	defer sessionsMu.Unlock()
	session := sessionFromRequest(r)
	if session == nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	wz := session.Wizard
	result := forms.NeedsAssessmentSteps[wz.TotalSteps].Validate(wz.FormData)
	if !result.IsValid {
		wz.Errors = result.Errors
		w.WriteHeader(http.StatusUnprocessableEntity)
		writeState(w, session)
		return
	}

	record := wz.FormData.Clone()
	record["status"] = "completed"

	repo := assessmentRepo(r)
	if session.AssessmentID == "" {
		row, err := repo.Create(record)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		delete(sessions, session.ID)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(row)
		return
	}

	if err := repo.Update(session.AssessmentID, record); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	delete(sessions, session.ID)
	w.WriteHeader(http.StatusNoContent)
}

// CloseWizardSession abandons a session. The in-progress answer record
// is simply discarded.
func CloseWizardSession(w http.ResponseWriter, r *http.Request) {
	sessionsMu.Lock()
	defer sessionsMu.Unlock()
	session := sessionFromRequest(r)
	if session == nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	delete(sessions, session.ID)
	w.WriteHeader(http.StatusNoContent)
}
