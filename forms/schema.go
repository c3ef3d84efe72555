package forms

import (
	"fmt"
	"strings"
)

// AssessmentTable is the persisted collection for needs assessments.
const AssessmentTable = "first_aid_needs_assessments"

// AssessmentTableSQL builds the CREATE TABLE statement for the
// assessment store. Fixed scalar and multi-select columns come
// straight from the step field sets; per-token detail columns are
// derived from the predefined option catalogs so the two can never
// drift apart. Custom fields have no columns of their own: they live
// in the three jsonb bucket columns.
func AssessmentTableSQL() string {
	columns := []string{
		"id UUID PRIMARY KEY DEFAULT gen_random_uuid()",

		"title TEXT",
		"assessor_name TEXT",
		"assessment_date TEXT",
		"location TEXT",
		"nature_of_business TEXT",
		"employee_count TEXT",
		"shift_patterns TEXT",
		"mental_health_support TEXT",
		"mental_health_details TEXT",
		"appointed_person_required TEXT",
		"first_aider_required TEXT",
		"additional_training_required TEXT",
		"additional_training_details TEXT",
		"off_site_work TEXT",
		"off_site_arrangements TEXT",
		"review_frequency TEXT",
		"declaration_confirmed TEXT",
		"additional_notes TEXT",
		"next_review_date DATE",

		"status VARCHAR(20) NOT NULL DEFAULT 'draft'",
		"current_step INTEGER NOT NULL DEFAULT 1",
		"completed_steps JSONB NOT NULL DEFAULT '[]'",

		"worker_conditions JSONB DEFAULT '[]'",
		"low_level_hazards JSONB DEFAULT '[]'",
		"high_level_hazards JSONB DEFAULT '[]'",
		"health_conditions JSONB DEFAULT '[]'",
		"injury_history JSONB DEFAULT '[]'",
		"resource_categories JSONB DEFAULT '[]'",
		"custom_resource_categories JSONB DEFAULT '[]'",

		"appointed_person_list JSONB DEFAULT '[]'",
		"first_aider_list JSONB DEFAULT '[]'",

		CustomResourcesColumn + " JSONB DEFAULT '{}'",
		CustomHazardColumn + " JSONB DEFAULT '{}'",
		CustomHighLevelColumn + " JSONB DEFAULT '{}'",

		"created_by VARCHAR(255)",
		"created_at TIMESTAMP NOT NULL DEFAULT NOW()",
		"updated_by VARCHAR(255)",
		"updated_at TIMESTAMP NOT NULL DEFAULT NOW()",
	}

	for _, catalog := range [][]Option{
		WorkerConditionOptions,
		LowLevelHazardOptions,
		HighLevelHazardOptions,
		HealthConditionOptions,
		InjuryHistoryOptions,
	} {
		for _, opt := range catalog {
			columns = append(columns, CamelToSnake(opt.Value+detailSuffix)+" TEXT")
		}
	}

	for _, opt := range ResourceCategoryOptions {
		columns = append(columns, CamelToSnake(opt.Value+resourceSuffix)+" JSONB DEFAULT '[]'")
	}

	sql := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n  %s\n);", AssessmentTable, strings.Join(columns, ",\n  "))
	sql += fmt.Sprintf("\nCREATE INDEX IF NOT EXISTS idx_%s_created ON %s(created_at);", AssessmentTable, AssessmentTable)
	sql += fmt.Sprintf("\nCREATE INDEX IF NOT EXISTS idx_%s_status ON %s(status);", AssessmentTable, AssessmentTable)
	return sql
}
