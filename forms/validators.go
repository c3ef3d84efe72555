package forms

import "fmt"

// ValidationResult is what a step validator returns. Errors maps field
// keys to human-readable messages; a field absent from the map is
// valid.
type ValidationResult struct {
	IsValid bool
	Errors  map[string]string
}

// ValidatorFunc is a pure per-step validation function. Validators
// never mutate the record; the wizard controller applies the returned
// error map.
type ValidatorFunc func(rec AnswerRecord) ValidationResult

func newResult() ValidationResult {
	return ValidationResult{IsValid: true, Errors: map[string]string{}}
}

func (vr *ValidationResult) fail(field, message string) {
	vr.IsValid = false
	vr.Errors[field] = message
}

func requireString(vr *ValidationResult, rec AnswerRecord, field, message string) {
	if rec.StringAt(field) == "" {
		vr.fail(field, message)
	}
}

// requireTokenDetails checks a multi-select step: at least one token
// selected (predefined or custom), and a non-empty detail for every
// selected token. Details of deselected tokens are never checked.
func requireTokenDetails(vr *ValidationResult, rec AnswerRecord, field, noun string) {
	tokens := rec.StringsAt(field)
	if len(tokens) == 0 {
		vr.fail(field, fmt.Sprintf("Select at least one %s", noun))
		return
	}
	for _, token := range tokens {
		detailKey := token + detailSuffix
		if rec.StringAt(detailKey) == "" {
			vr.fail(detailKey, fmt.Sprintf("Provide details for %q", token))
		}
	}
}

// requireToggle checks a yes/no field, and when the answer is "yes",
// that the conditional field passes check.
func requireToggle(vr *ValidationResult, rec AnswerRecord, field, message string, whenYes func()) {
	answer := rec.StringAt(field)
	if answer == "" {
		vr.fail(field, message)
		return
	}
	if answer == "yes" && whenYes != nil {
		whenYes()
	}
}

// ValidateAssessmentDetails gates step 1.
func ValidateAssessmentDetails(rec AnswerRecord) ValidationResult {
	vr := newResult()
	requireString(&vr, rec, "assessmentTitle", "Enter a title for this assessment")
	requireString(&vr, rec, "assessorName", "Enter the assessor's name")
	requireString(&vr, rec, "assessmentDate", "Enter the assessment date")
	return vr
}

// ValidateWorkplaceProfile gates step 2.
func ValidateWorkplaceProfile(rec AnswerRecord) ValidationResult {
	vr := newResult()
	requireString(&vr, rec, "natureOfBusiness", "Describe the nature of the business")
	requireString(&vr, rec, "numberOfEmployees", "Enter the number of employees")
	return vr
}

// ValidateWorkerConditions gates step 3.
func ValidateWorkerConditions(rec AnswerRecord) ValidationResult {
	vr := newResult()
	requireTokenDetails(&vr, rec, "workerConditions", "workforce factor")
	return vr
}

// ValidateLowLevelHazards gates step 4.
func ValidateLowLevelHazards(rec AnswerRecord) ValidationResult {
	vr := newResult()
	requireTokenDetails(&vr, rec, "lowLevelHazards", "low level hazard")
	return vr
}

// ValidateHighLevelHazards gates step 5.
func ValidateHighLevelHazards(rec AnswerRecord) ValidationResult {
	vr := newResult()
	requireTokenDetails(&vr, rec, "highLevelHazards", "high level hazard")
	return vr
}

// ValidateHealthConditions gates step 6.
func ValidateHealthConditions(rec AnswerRecord) ValidationResult {
	vr := newResult()
	requireTokenDetails(&vr, rec, "healthConditions", "health condition")
	return vr
}

// ValidateInjuryHistory gates step 7.
func ValidateInjuryHistory(rec AnswerRecord) ValidationResult {
	vr := newResult()
	requireTokenDetails(&vr, rec, "pastInjuries", "past injury type")
	return vr
}

// ValidateMentalHealthProvision gates step 8.
func ValidateMentalHealthProvision(rec AnswerRecord) ValidationResult {
	vr := newResult()
	requireToggle(&vr, rec, "mentalHealthSupport", "Say whether mental health support is provided", func() {
		requireString(&vr, rec, "mentalHealthDetails", "Describe the mental health support in place")
	})
	return vr
}

// ValidateFirstAidPersonnel gates step 9: each role toggle set to
// "yes" requires at least one named person in its list.
func ValidateFirstAidPersonnel(rec AnswerRecord) ValidationResult {
	vr := newResult()
	requireToggle(&vr, rec, "appointedPersonRequired", "Say whether an appointed person is required", func() {
		if len(rec.EntriesAt("appointedPersonList")) == 0 {
			vr.fail("appointedPersonList", "Add at least one appointed person")
		}
	})
	requireToggle(&vr, rec, "firstAiderRequired", "Say whether a first aider is required", func() {
		if len(rec.EntriesAt("firstAiderList")) == 0 {
			vr.fail("firstAiderList", "Add at least one first aider")
		}
	})
	return vr
}

// ValidateTraining gates step 10.
func ValidateTraining(rec AnswerRecord) ValidationResult {
	vr := newResult()
	requireToggle(&vr, rec, "additionalTrainingRequired", "Say whether additional training is required", func() {
		requireString(&vr, rec, "additionalTrainingDetails", "Describe the additional training required")
	})
	return vr
}

// ValidateResources gates step 11: at least one resource category
// (predefined or custom) and a non-empty resource list per selected
// category.
func ValidateResources(rec AnswerRecord) ValidationResult {
	vr := newResult()
	categories := rec.StringsAt("resourceCategories")
	if len(categories) == 0 {
		vr.fail("resourceCategories", "Select at least one first aid resource")
		return vr
	}
	for _, category := range categories {
		listKey := category + resourceSuffix
		if len(rec.EntriesAt(listKey)) == 0 {
			vr.fail(listKey, fmt.Sprintf("Add at least one location for %q", category))
		}
	}
	return vr
}

// ValidateOffSiteWork gates step 12.
func ValidateOffSiteWork(rec AnswerRecord) ValidationResult {
	vr := newResult()
	requireToggle(&vr, rec, "offSiteWork", "Say whether employees work off-site", func() {
		requireString(&vr, rec, "offSiteArrangements", "Describe first aid arrangements for off-site work")
	})
	return vr
}

// ValidateReviewSchedule gates step 13.
func ValidateReviewSchedule(rec AnswerRecord) ValidationResult {
	vr := newResult()
	requireString(&vr, rec, "reviewDate", "Enter the next review date")
	requireString(&vr, rec, "reviewFrequency", "Choose a review frequency")
	return vr
}

// ValidateDeclaration gates step 14.
func ValidateDeclaration(rec AnswerRecord) ValidationResult {
	vr := newResult()
	if rec.StringAt("declarationConfirmed") != "yes" {
		vr.fail("declarationConfirmed", "Confirm the declaration before submitting")
	}
	return vr
}
