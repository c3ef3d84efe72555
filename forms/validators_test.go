package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAssessmentDetails(t *testing.T) {
	result := ValidateAssessmentDetails(AnswerRecord{})
	require.False(t, result.IsValid)
	assert.Contains(t, result.Errors, "assessmentTitle")
	assert.Contains(t, result.Errors, "assessorName")
	assert.Contains(t, result.Errors, "assessmentDate")

	result = ValidateAssessmentDetails(AnswerRecord{
		"assessmentTitle": "Main Office",
		"assessorName":    "Jane",
		"assessmentDate":  "2026-08-01",
	})
	require.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
}

func TestDetailRequiredOnlyWhileTokenSelected(t *testing.T) {
	tests := []struct {
		name        string
		rec         AnswerRecord
		valid       bool
		errField    string
		cleanFields []string
	}{
		{
			name:     "selected token with empty detail is invalid",
			rec:      AnswerRecord{"lowLevelHazards": []string{"chemicals"}},
			valid:    false,
			errField: "chemicalsDetails",
		},
		{
			name:        "empty selection never checks details",
			rec:         AnswerRecord{"lowLevelHazards": []string{}},
			valid:       false,
			errField:    "lowLevelHazards",
			cleanFields: []string{"chemicalsDetails"},
		},
		{
			name: "all selected tokens detailed",
			rec: AnswerRecord{
				"lowLevelHazards":       []string{"chemicals", "manualHandling"},
				"chemicalsDetails":      "COSHH cupboard",
				"manualHandlingDetails": "Trolleys provided",
			},
			valid: true,
		},
		{
			name: "custom token needs detail too",
			rec: AnswerRecord{
				"lowLevelHazards":  []string{"chemicals", "custom_weldingFumes"},
				"chemicalsDetails": "COSHH cupboard",
			},
			valid:    false,
			errField: "custom_weldingFumesDetails",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := ValidateLowLevelHazards(tc.rec)
			require.Equal(t, tc.valid, result.IsValid)
			if tc.errField != "" {
				assert.Contains(t, result.Errors, tc.errField)
			}
			for _, field := range tc.cleanFields {
				assert.NotContains(t, result.Errors, field)
			}
		})
	}
}

func TestValidateFirstAidPersonnel(t *testing.T) {
	// unanswered toggles fail
	result := ValidateFirstAidPersonnel(AnswerRecord{})
	require.False(t, result.IsValid)
	assert.Contains(t, result.Errors, "appointedPersonRequired")
	assert.Contains(t, result.Errors, "firstAiderRequired")

	// "yes" requires at least one entry in the role's list
	result = ValidateFirstAidPersonnel(AnswerRecord{
		"appointedPersonRequired": "yes",
		"firstAiderRequired":      "no",
	})
	require.False(t, result.IsValid)
	assert.Contains(t, result.Errors, "appointedPersonList")
	assert.NotContains(t, result.Errors, "firstAiderList")

	result = ValidateFirstAidPersonnel(AnswerRecord{
		"appointedPersonRequired": "yes",
		"appointedPersonList":     []Entry{{"id": "x1", "fullName": "Jane"}},
		"firstAiderRequired":      "no",
	})
	require.True(t, result.IsValid)
}

func TestValidateResources(t *testing.T) {
	result := ValidateResources(AnswerRecord{})
	require.False(t, result.IsValid)
	assert.Contains(t, result.Errors, "resourceCategories")

	result = ValidateResources(AnswerRecord{
		"resourceCategories":    []string{"firstAidKits", "myCustomGear"},
		"firstAidKitsResources": []Entry{{"id": "r1", "location": "Kitchen"}},
	})
	require.False(t, result.IsValid)
	assert.Contains(t, result.Errors, "myCustomGearResources")
	assert.NotContains(t, result.Errors, "firstAidKitsResources")

	result = ValidateResources(AnswerRecord{
		"resourceCategories":    []string{"firstAidKits"},
		"firstAidKitsResources": []Entry{{"id": "r1", "location": "Kitchen"}},
	})
	require.True(t, result.IsValid)
}

func TestValidateToggleSteps(t *testing.T) {
	result := ValidateTraining(AnswerRecord{"additionalTrainingRequired": "no"})
	require.True(t, result.IsValid)

	result = ValidateTraining(AnswerRecord{"additionalTrainingRequired": "yes"})
	require.False(t, result.IsValid)
	assert.Contains(t, result.Errors, "additionalTrainingDetails")

	result = ValidateOffSiteWork(AnswerRecord{
		"offSiteWork":         "yes",
		"offSiteArrangements": "Travel kits in every vehicle",
	})
	require.True(t, result.IsValid)
}

func TestValidateDeclaration(t *testing.T) {
	require.False(t, ValidateDeclaration(AnswerRecord{}).IsValid)
	require.False(t, ValidateDeclaration(AnswerRecord{"declarationConfirmed": "no"}).IsValid)
	require.True(t, ValidateDeclaration(AnswerRecord{"declarationConfirmed": "yes"}).IsValid)
}

func TestValidatorsDoNotMutateRecord(t *testing.T) {
	rec := AnswerRecord{"lowLevelHazards": []string{"chemicals"}}
	before := rec.Clone()

	for step := 1; step <= NeedsAssessmentTotalSteps; step++ {
		NeedsAssessmentSteps[step].Validate(rec)
	}
	require.Equal(t, before, rec)
}

func TestEveryStepHasAValidator(t *testing.T) {
	for step := 1; step <= NeedsAssessmentTotalSteps; step++ {
		descriptor, ok := NeedsAssessmentSteps[step]
		require.True(t, ok, "step %d missing", step)
		require.Equal(t, step, descriptor.Step)
		require.NotNil(t, descriptor.Validate)
	}
}
