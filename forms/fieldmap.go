package forms

import (
	"log"
	"strings"
	"unicode"
)

// Storage column names for the three JSON side-channel buckets. Keys
// inside a bucket are the original client field identifiers, values
// are carried verbatim.
const (
	CustomResourcesColumn = "custom_resources_data"
	CustomHazardColumn    = "custom_hazard_details"
	CustomHighLevelColumn = "custom_high_level_hazard_details"
	customTokenPrefix     = "custom_"
	customHighTokenPrefix = "custom_high_"
	detailSuffix          = "Details"
	resourceSuffix        = "Resources"
)

// fieldOverrides maps answer-record keys to their storage column names
// where the column predates the structural rule, plus every predefined
// `${category}Resources` key so those never fall into the custom
// bucket.
var fieldOverrides = map[string]string{
	"assessmentTitle":   "title",
	"siteLocation":      "location",
	"numberOfEmployees": "employee_count",
	"pastInjuries":      "injury_history",
	"reviewDate":        "next_review_date",

	"firstAidKitsResources":     "first_aid_kits_resources",
	"defibrillatorsResources":   "defibrillators_resources",
	"eyewashStationsResources":  "eyewash_stations_resources",
	"firstAidRoomsResources":    "first_aid_rooms_resources",
	"emergencyShowersResources": "emergency_showers_resources",
	"burnsKitsResources":        "burns_kits_resources",
}

// storageOverrides is the reverse lookup, built once from
// fieldOverrides.
var storageOverrides = func() map[string]string {
	rev := make(map[string]string, len(fieldOverrides))
	for k, v := range fieldOverrides {
		rev[v] = k
	}
	return rev
}()

func isDetailKey(key string) bool {
	return strings.HasSuffix(key, detailSuffix)
}

func isCustomResourceKey(key string) bool {
	if _, ok := fieldOverrides[key]; ok {
		return false
	}
	return strings.HasSuffix(key, resourceSuffix)
}

func isCustomHazardDetailKey(key string) bool {
	if _, ok := fieldOverrides[key]; ok {
		return false
	}
	return strings.Contains(key, customTokenPrefix) && strings.HasSuffix(key, detailSuffix)
}

func isHighLevelCustomKey(key string) bool {
	return strings.Contains(key, customHighTokenPrefix)
}

// CamelToSnake derives a storage column name structurally: split on
// uppercase boundaries, lowercase, join with underscores. Existing
// underscores (custom hazard tokens) pass through untouched, so the
// conversion stays a true inverse of SnakeToCamel for any key the
// override table does not claim.
func CamelToSnake(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 4)
	for _, r := range key {
		if unicode.IsUpper(r) {
			b.WriteByte('_')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SnakeToCamel is the inverse of CamelToSnake: an underscore followed
// by a letter becomes the uppercase letter.
func SnakeToCamel(key string) string {
	var b strings.Builder
	b.Grow(len(key))
	runes := []rune(key)
	for i := 0; i < len(runes); i++ {
		if runes[i] == '_' && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
			b.WriteRune(unicode.ToUpper(runes[i+1]))
			i++
			continue
		}
		b.WriteRune(runes[i])
	}
	return b.String()
}

// Actor identifies who is filling in or editing a record.
type Actor struct {
	ID          string
	DisplayName string
}

// IdentityProvider resolves the current actor for audit stamping. An
// error means the stamp is omitted, never that the write fails.
type IdentityProvider interface {
	CurrentActor() (Actor, error)
}

// Mapper translates answer records to storage records and back.
type Mapper struct {
	identity IdentityProvider
}

// NewMapper returns a mapper. identity may be nil, in which case no
// audit stamp is attached.
func NewMapper(identity IdentityProvider) *Mapper {
	return &Mapper{identity: identity}
}

// ToStorageShape translates an answer record into its snake_case
// storage shape. Custom resource lists and custom hazard details are
// routed into their JSON bucket columns under their original keys;
// everything else is emitted under its override or structural column
// name. Absent (nil) values are dropped.
func (m *Mapper) ToStorageShape(rec AnswerRecord) map[string]any {
	storage := make(map[string]any, len(rec))
	customResources := map[string]any{}
	customHazards := map[string]any{}
	customHighHazards := map[string]any{}

	for key, value := range rec {
		if value == nil {
			continue
		}
		switch ClassifyKey(key) {
		case KeyCustomResourceList:
			customResources[key] = value
		case KeyCustomHighHazardDetail:
			customHighHazards[key] = value
		case KeyCustomHazardDetail:
			customHazards[key] = value
		default:
			if column, ok := fieldOverrides[key]; ok {
				storage[column] = value
			} else {
				storage[CamelToSnake(key)] = value
			}
		}
	}

	if len(customResources) > 0 {
		storage[CustomResourcesColumn] = customResources
	}
	if len(customHazards) > 0 {
		storage[CustomHazardColumn] = customHazards
	}
	if len(customHighHazards) > 0 {
		storage[CustomHighLevelColumn] = customHighHazards
	}

	m.stampActor(storage)
	return storage
}

// stampActor attaches created_by/updated_by from the identity
// provider. Resolution failure is logged and swallowed so a missing
// session can never block a save.
func (m *Mapper) stampActor(storage map[string]any) {
	if m.identity == nil {
		return
	}
	actor, err := m.identity.CurrentActor()
	if err != nil {
		log.Printf("fieldmap: could not resolve current actor, skipping audit stamp: %v", err)
		return
	}
	if _, ok := storage["id"]; !ok {
		storage["created_by"] = actor.ID
	}
	storage["updated_by"] = actor.ID
}

// ToAnswerShape rebuilds an answer record from a storage row. Bucket
// columns are shallow-merged back under their original keys; other
// columns go through the reverse override lookup, then the structural
// rule. Wizard meta fields are seeded before the overlay so they have
// defaults even when absent from storage.
func (m *Mapper) ToAnswerShape(row map[string]any) AnswerRecord {
	rec := AnswerRecord{
		"currentStep":    1,
		"completedSteps": []int{},
		"status":         "draft",
	}

	for column, value := range row {
		if value == nil {
			continue
		}
		switch column {
		case CustomResourcesColumn, CustomHazardColumn, CustomHighLevelColumn:
			bucket, ok := value.(map[string]any)
			if !ok {
				log.Printf("fieldmap: bucket column %s has unexpected shape %T, dropping", column, value)
				continue
			}
			for k, v := range bucket {
				rec[k] = v
			}
		default:
			if key, ok := storageOverrides[column]; ok {
				rec[key] = value
			} else {
				rec[SnakeToCamel(column)] = value
			}
		}
	}
	return rec
}
