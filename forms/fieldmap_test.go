package forms

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeIdentity struct {
	actor Actor
	err   error
}

func (f fakeIdentity) CurrentActor() (Actor, error) {
	return f.actor, f.err
}

func TestRoundTripFidelity(t *testing.T) {
	mapper := NewMapper(nil)

	rec := AnswerRecord{
		"assessmentTitle": "Main Office Assessment",
		"assessorName":    "Jane Doe",
		"assessmentDate":  "2026-08-01",
		"siteLocation":    "Head office",

		"lowLevelHazards":  []string{"chemicals", "custom_weldingFumes"},
		"chemicalsDetails": "Cleaning agents stored in kitchen",

		// custom hazard details live in the jsonb buckets
		"custom_weldingFumesDetails":  "Fume extraction in workshop",
		"custom_high_toxicGasDetails": "Gas monitors on level 2",

		"resourceCategories":    []string{"firstAidKits", "myCustomGear"},
		"firstAidKitsResources": []Entry{{"id": "r1", "location": "Kitchen", "personResponsible": "Ann"}},
		"myCustomGearResources": []Entry{{"id": "y1", "location": "Van", "personResponsible": "Bob"}},

		"appointedPersonList": []Entry{{"id": "x1", "fullName": "Jane Doe", "phone": "0123"}},

		"currentStep":    1,
		"completedSteps": []int{},
		"status":         "draft",
	}

	restored := mapper.ToAnswerShape(mapper.ToStorageShape(rec))
	require.Equal(t, rec, restored)
}

func TestStructuralFallbackIsTrueInverse(t *testing.T) {
	keys := []string{
		"assessorName",
		"lowLevelHazards",
		"chemicalsDetails",
		"appointedPersonList",
		"myCustomGearResources",
		"offSiteArrangements",
		"a",
		"alreadylower",
	}
	for _, key := range keys {
		require.Equal(t, key, SnakeToCamel(CamelToSnake(key)), "key %q", key)
	}
}

func TestOverrideTableWins(t *testing.T) {
	mapper := NewMapper(nil)

	storage := mapper.ToStorageShape(AnswerRecord{
		"assessmentTitle": "Warehouse",
		"reviewDate":      "2026-12-01",
	})
	require.Equal(t, "Warehouse", storage["title"])
	require.Equal(t, "2026-12-01", storage["next_review_date"])
	require.NotContains(t, storage, "assessment_title")

	rec := mapper.ToAnswerShape(map[string]any{"title": "Warehouse"})
	require.Equal(t, "Warehouse", rec["assessmentTitle"])
}

func TestTopLevelKeyTranslationOnly(t *testing.T) {
	mapper := NewMapper(nil)
	entries := []Entry{{"id": "x1", "fullName": "Jane Doe", "phone": "0123"}}

	storage := mapper.ToStorageShape(AnswerRecord{"appointedPersonList": entries})

	// Only the top-level key is translated, array contents stay
	// verbatim.
	require.Equal(t, entries, storage["appointed_person_list"])
}

func TestCustomResourceBucket(t *testing.T) {
	mapper := NewMapper(nil)
	custom := []Entry{{"id": "y1", "location": "Van", "personResponsible": "Bob"}}

	storage := mapper.ToStorageShape(AnswerRecord{
		"firstAidKitsResources": []Entry{{"id": "r1", "location": "Kitchen"}},
		"myCustomGearResources": custom,
	})

	require.Contains(t, storage, "first_aid_kits_resources")
	require.NotContains(t, storage, "my_custom_gear_resources")
	bucket, ok := storage[CustomResourcesColumn].(map[string]any)
	require.True(t, ok)
	require.Equal(t, custom, bucket["myCustomGearResources"])

	restored := mapper.ToAnswerShape(storage)
	require.Equal(t, custom, restored["myCustomGearResources"])
}

func TestHazardDetailBuckets(t *testing.T) {
	mapper := NewMapper(nil)

	storage := mapper.ToStorageShape(AnswerRecord{
		"custom_weldingFumesDetails":  "extraction fitted",
		"custom_high_toxicGasDetails": "monitors on level 2",
		"chemicalsDetails":            "stored in kitchen",
	})

	low, ok := storage[CustomHazardColumn].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "extraction fitted", low["custom_weldingFumesDetails"])

	high, ok := storage[CustomHighLevelColumn].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "monitors on level 2", high["custom_high_toxicGasDetails"])

	// fixed-token details stay top level
	require.Equal(t, "stored in kitchen", storage["chemicals_details"])
}

func TestActorStamping(t *testing.T) {
	identity := fakeIdentity{actor: Actor{ID: "u-1", DisplayName: "Jane"}}
	mapper := NewMapper(identity)

	created := mapper.ToStorageShape(AnswerRecord{"assessmentTitle": "New"})
	require.Equal(t, "u-1", created["created_by"])
	require.Equal(t, "u-1", created["updated_by"])

	updated := mapper.ToStorageShape(AnswerRecord{"id": "a-1", "assessmentTitle": "Edit"})
	require.Equal(t, "u-1", updated["updated_by"])
	require.NotContains(t, updated, "created_by")
}

func TestActorResolutionFailureIsSwallowed(t *testing.T) {
	mapper := NewMapper(fakeIdentity{err: errors.New("no session")})

	storage := mapper.ToStorageShape(AnswerRecord{"assessmentTitle": "New"})
	require.Equal(t, "New", storage["title"])
	require.NotContains(t, storage, "created_by")
	require.NotContains(t, storage, "updated_by")
}

func TestAnswerShapeSeedsMetaDefaults(t *testing.T) {
	mapper := NewMapper(nil)

	rec := mapper.ToAnswerShape(map[string]any{"title": "Old row"})
	require.Equal(t, 1, rec["currentStep"])
	require.Equal(t, []int{}, rec["completedSteps"])
	require.Equal(t, "draft", rec["status"])

	// stored values overlay the defaults
	rec = mapper.ToAnswerShape(map[string]any{"status": "completed", "current_step": 14})
	require.Equal(t, "completed", rec["status"])
	require.Equal(t, 14, rec["currentStep"])
}

func TestNilValuesAreDropped(t *testing.T) {
	mapper := NewMapper(nil)

	storage := mapper.ToStorageShape(AnswerRecord{
		"assessmentTitle": "Kept",
		"assessorName":    nil,
	})
	require.NotContains(t, storage, "assessor_name")

	rec := mapper.ToAnswerShape(map[string]any{"title": "Kept", "assessor_name": nil})
	require.NotContains(t, rec, "assessorName")
}
