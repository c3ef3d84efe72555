package forms

// Wizard owns the step pointer, answer record, error map and
// completed-step tracking for one form session. All methods run
// synchronously on the calling goroutine; one wizard owns its record
// exclusively.
type Wizard struct {
	TotalSteps     int
	CurrentStep    int
	FormData       AnswerRecord
	Errors         map[string]string
	CompletedSteps []int

	seed AnswerRecord
}

// NewWizard creates a wizard at step 1. seed is the initial answer
// record (nil for a blank form, an inverse-mapped storage row when
// editing); ResetForm returns to it.
func NewWizard(totalSteps int, seed AnswerRecord) *Wizard {
	w := &Wizard{
		TotalSteps: totalSteps,
		seed:       seed.Clone(),
	}
	w.ResetForm()
	return w
}

// UpdateFormData shallow-merges partial into the answer record. It
// never validates and is always allowed.
func (w *Wizard) UpdateFormData(partial AnswerRecord) {
	w.FormData.Merge(partial)
}

// NextStep validates the current answer record and advances on
// success. A nil validator counts as always-valid. On failure the
// error map is replaced with the validator's errors and the step does
// not change. Returns whether the step advanced (or was already at the
// last step with a valid record).
func (w *Wizard) NextStep(validate ValidatorFunc) bool {
	if validate != nil {
		result := validate(w.FormData)
		if !result.IsValid {
			w.Errors = result.Errors
			return false
		}
	}
	w.markCompleted(w.CurrentStep)
	w.Errors = map[string]string{}
	if w.CurrentStep < w.TotalSteps {
		w.CurrentStep++
	}
	return true
}

// PrevStep moves back one step, clamped at 1. Going back never
// validates and always clears the error map.
func (w *Wizard) PrevStep() {
	w.Errors = map[string]string{}
	if w.CurrentStep > 1 {
		w.CurrentStep--
	}
}

// GoToStep jumps directly to step n, clearing errors. Jumps outside
// [1, TotalSteps] are rejected. Forward gating (only allowing a jump
// to a completed step's successor) is a caller policy, not enforced
// here.
func (w *Wizard) GoToStep(n int) bool {
	if n < 1 || n > w.TotalSteps {
		return false
	}
	w.Errors = map[string]string{}
	w.CurrentStep = n
	return true
}

// ResetForm reinitialises the answer record from the original seed and
// clears all progress.
func (w *Wizard) ResetForm() {
	w.FormData = w.seed.Clone()
	w.Errors = map[string]string{}
	w.CompletedSteps = []int{}
	w.CurrentStep = 1
}

// StepCompleted reports whether step n has been completed.
func (w *Wizard) StepCompleted(n int) bool {
	for _, s := range w.CompletedSteps {
		if s == n {
			return true
		}
	}
	return false
}

func (w *Wizard) markCompleted(n int) {
	if w.StepCompleted(n) {
		return
	}
	w.CompletedSteps = append(w.CompletedSteps, n)
}
