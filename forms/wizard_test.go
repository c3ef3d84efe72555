package forms

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func alwaysValid(AnswerRecord) ValidationResult {
	return ValidationResult{IsValid: true, Errors: map[string]string{}}
}

func alwaysInvalid(errs map[string]string) ValidatorFunc {
	return func(AnswerRecord) ValidationResult {
		return ValidationResult{IsValid: false, Errors: errs}
	}
}

func TestNextStepGatesOnValidator(t *testing.T) {
	w := NewWizard(5, nil)

	errs := map[string]string{"assessmentTitle": "Enter a title for this assessment"}
	advanced := w.NextStep(alwaysInvalid(errs))
	require.False(t, advanced)
	require.Equal(t, 1, w.CurrentStep)
	require.Equal(t, errs, w.Errors)
	require.Empty(t, w.CompletedSteps)

	advanced = w.NextStep(alwaysValid)
	require.True(t, advanced)
	require.Equal(t, 2, w.CurrentStep)
	require.Empty(t, w.Errors)
	require.Equal(t, []int{1}, w.CompletedSteps)
}

func TestNextStepWithoutValidatorAlwaysAdvances(t *testing.T) {
	w := NewWizard(3, nil)
	require.True(t, w.NextStep(nil))
	require.Equal(t, 2, w.CurrentStep)
}

func TestNextStepClampsAtLastStep(t *testing.T) {
	w := NewWizard(2, nil)
	w.NextStep(nil)
	require.Equal(t, 2, w.CurrentStep)
	w.NextStep(nil)
	require.Equal(t, 2, w.CurrentStep)
	require.ElementsMatch(t, []int{1, 2}, w.CompletedSteps)
}

func TestCompletedStepMarkingIsIdempotent(t *testing.T) {
	w := NewWizard(3, nil)
	w.NextStep(nil)
	w.PrevStep()
	w.NextStep(nil)
	require.Equal(t, []int{1}, w.CompletedSteps[:1])
	count := 0
	for _, s := range w.CompletedSteps {
		if s == 1 {
			count++
		}
	}
	require.Equal(t, 1, count)
}

func TestPrevStepClampsAndClearsErrors(t *testing.T) {
	w := NewWizard(3, nil)
	w.Errors = map[string]string{"x": "bad"}
	w.PrevStep()
	require.Equal(t, 1, w.CurrentStep)
	require.Empty(t, w.Errors)

	w.NextStep(nil)
	w.Errors = map[string]string{"x": "bad"}
	w.PrevStep()
	require.Equal(t, 1, w.CurrentStep)
	require.Empty(t, w.Errors)
}

func TestGoToStepBounds(t *testing.T) {
	w := NewWizard(5, nil)
	require.False(t, w.GoToStep(0))
	require.False(t, w.GoToStep(6))
	require.Equal(t, 1, w.CurrentStep)

	require.True(t, w.GoToStep(4))
	require.Equal(t, 4, w.CurrentStep)
}

func TestResetFormReturnsToSeed(t *testing.T) {
	seed := AnswerRecord{"assessmentTitle": "Seeded title"}
	w := NewWizard(5, seed)

	w.UpdateFormData(AnswerRecord{"assessmentTitle": "Changed", "assessorName": "Jane"})
	w.NextStep(nil)
	w.NextStep(nil)

	w.ResetForm()
	require.Equal(t, 1, w.CurrentStep)
	require.Empty(t, w.CompletedSteps)
	require.Empty(t, w.Errors)
	require.Equal(t, AnswerRecord{"assessmentTitle": "Seeded title"}, w.FormData)
}

func TestUpdateFormDataNeverValidates(t *testing.T) {
	w := NewWizard(5, nil)
	w.UpdateFormData(AnswerRecord{"lowLevelHazards": []string{"chemicals"}})
	require.Equal(t, []string{"chemicals"}, w.FormData.StringsAt("lowLevelHazards"))
	require.Empty(t, w.Errors)
}

// Mirrors a full user journey: step 1 passes, step 4 is blocked until
// the selected hazard's detail is filled in.
func TestNeedsAssessmentScenario(t *testing.T) {
	w := NewWizard(NeedsAssessmentTotalSteps, nil)

	w.UpdateFormData(AnswerRecord{
		"assessmentTitle": "Main Office Assessment",
		"assessorName":    "Jane Doe",
		"assessmentDate":  "2026-08-01",
	})
	require.True(t, w.NextStep(NeedsAssessmentSteps[1].Validate))
	require.Equal(t, 2, w.CurrentStep)
	require.Equal(t, []int{1}, w.CompletedSteps)
	require.Empty(t, w.Errors)

	w.GoToStep(4)
	w.UpdateFormData(AnswerRecord{"lowLevelHazards": []string{"chemicals"}})
	require.False(t, w.NextStep(NeedsAssessmentSteps[4].Validate))
	require.Equal(t, 4, w.CurrentStep)
	require.Contains(t, w.Errors, "chemicalsDetails")

	w.UpdateFormData(AnswerRecord{"chemicalsDetails": "COSHH cupboard, gloves provided"})
	require.True(t, w.NextStep(NeedsAssessmentSteps[4].Validate))
	require.Equal(t, 5, w.CurrentStep)
}
