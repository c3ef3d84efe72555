package forms

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// listColumns is the projection used by List; everything else is only
// fetched on GetByID.
var listColumns = []string{
	"id", "title", "assessor_name", "status",
	"next_review_date", "created_at", "created_by",
}

// AssessmentSummary is one row of the assessment register, already
// shaped for display.
type AssessmentSummary struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	AssessorName   string     `json:"assessorName"`
	Status         string     `json:"status"`
	RiskLevel      string     `json:"riskLevel"`
	NextReviewDate *time.Time `json:"nextReviewDate,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	CreatedBy      string     `json:"createdBy,omitempty"`
}

// AssessmentRepository is the CRUD facade over the assessment store.
// Store errors propagate to the caller unchanged; there is no retry
// and no cache.
type AssessmentRepository struct {
	db     *gorm.DB
	mapper *Mapper
}

func NewAssessmentRepository(db *gorm.DB, identity IdentityProvider) *AssessmentRepository {
	return &AssessmentRepository{db: db, mapper: NewMapper(identity)}
}

// Mapper exposes the repository's field-name mapper, for callers that
// render documents from inverse-mapped records.
func (r *AssessmentRepository) Mapper() *Mapper {
	return r.mapper
}

// List fetches the register projection, newest first.
func (r *AssessmentRepository) List() ([]AssessmentSummary, error) {
	var rows []map[string]any
	err := r.db.Table(AssessmentTable).
		Select(listColumns).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}

	summaries := make([]AssessmentSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, SummarizeRow(row, time.Now()))
	}
	return summaries, nil
}

// SummarizeRow shapes one projected row for display. It is pure: the
// same row and clock always produce the same summary.
func SummarizeRow(row map[string]any, now time.Time) AssessmentSummary {
	review := asTime(row["next_review_date"])
	created := asTime(row["created_at"])
	summary := AssessmentSummary{
		ID:             asString(row["id"]),
		Title:          asString(row["title"]),
		AssessorName:   asString(row["assessor_name"]),
		Status:         NormalizeStatus(asString(row["status"])),
		RiskLevel:      DeriveRiskLevel(review, now),
		NextReviewDate: review,
		CreatedBy:      asString(row["created_by"]),
	}
	if created != nil {
		summary.CreatedAt = *created
	}
	return summary
}

// NormalizeStatus maps stored status values onto the fixed display
// vocabulary; anything unknown counts as a draft.
func NormalizeStatus(status string) string {
	switch status {
	case "completed":
		return "completed"
	case "draft", "":
		return "draft"
	default:
		return "draft"
	}
}

// DeriveRiskLevel grades an assessment by how overdue its review is:
// past due is high, due within 30 days is medium, otherwise low. No
// review date scheduled also counts as low.
func DeriveRiskLevel(reviewDate *time.Time, now time.Time) string {
	if reviewDate == nil {
		return "low"
	}
	if reviewDate.Before(now) {
		return "high"
	}
	if reviewDate.Sub(now) <= 30*24*time.Hour {
		return "medium"
	}
	return "low"
}

// Create forward-maps the answer record and inserts it. The inserted
// row (storage shape, with its generated id) is returned; failures
// propagate without mutating anything.
func (r *AssessmentRepository) Create(rec AnswerRecord) (map[string]any, error) {
	storage := r.mapper.ToStorageShape(rec)
	row := encodeRow(storage)
	if _, ok := row["id"]; !ok {
		row["id"] = uuid.NewString()
	}
	now := time.Now()
	row["created_at"] = now
	row["updated_at"] = now

	if err := r.db.Table(AssessmentTable).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("create assessment: %w", err)
	}
	return row, nil
}

// Update forward-maps the partial record and applies it to the row
// with the given id.
func (r *AssessmentRepository) Update(id string, partial AnswerRecord) error {
	// Carry the id through the mapping so the actor stamp lands on
	// updated_by rather than created_by.
	withID := partial.Clone()
	withID["id"] = id
	storage := r.mapper.ToStorageShape(withID)
	delete(storage, "id")
	delete(storage, "created_by")
	delete(storage, "created_at")

	row := encodeRow(storage)
	row["updated_at"] = time.Now()

	err := r.db.Table(AssessmentTable).Where("id = ?", id).Updates(row).Error
	if err != nil {
		return fmt.Errorf("update assessment %s: %w", id, err)
	}
	return nil
}

// Delete removes the row with the given id. Hard delete; confirming
// intent is the caller's job.
func (r *AssessmentRepository) Delete(id string) error {
	err := r.db.Exec("DELETE FROM "+AssessmentTable+" WHERE id = ?", id).Error
	if err != nil {
		return fmt.Errorf("delete assessment %s: %w", id, err)
	}
	return nil
}

// GetByID fetches the full row and inverse-maps it into an answer
// record. Not-found returns (nil, nil) rather than an error.
func (r *AssessmentRepository) GetByID(id string) (AnswerRecord, error) {
	rows, err := r.db.Table(AssessmentTable).Where("id = ?", id).Limit(1).Rows()
	if err != nil {
		return nil, fmt.Errorf("get assessment %s: %w", id, err)
	}
	defer rows.Close()

	if !rows.Next() {
		// an iteration error must not masquerade as not-found
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("get assessment %s: %w", id, err)
		}
		return nil, nil
	}

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("get assessment %s: %w", id, err)
	}
	values := make([]any, len(columns))
	pointers := make([]any, len(columns))
	for i := range values {
		pointers[i] = &values[i]
	}
	if err := rows.Scan(pointers...); err != nil {
		return nil, fmt.Errorf("get assessment %s: %w", id, err)
	}

	row := make(map[string]any, len(columns))
	for i, column := range columns {
		if decoded := decodeDBValue(values[i]); decoded != nil {
			row[column] = decoded
		}
	}
	return r.mapper.ToAnswerShape(row), nil
}

// encodeRow turns a storage-shaped record into driver-compatible
// column values: scalars pass through, everything structured becomes
// jsonb.
func encodeRow(storage map[string]any) map[string]any {
	row := make(map[string]any, len(storage))
	for column, value := range storage {
		switch value.(type) {
		case string, bool, int, int64, float64, time.Time, uuid.UUID:
			row[column] = value
		default:
			b, err := json.Marshal(value)
			if err != nil {
				// Unencodable values are dropped rather than failing
				// the whole write; the mapper only emits JSON-safe
				// shapes, so this is unreachable in practice.
				continue
			}
			row[column] = datatypes.JSON(b)
		}
	}
	return row
}

// decodeDBValue normalises a scanned column value: jsonb arrives as
// []byte and is parsed, scalars pass through, NULL becomes nil. Only
// object/array payloads are parsed so text columns holding numeric
// strings stay strings.
func decodeDBValue(value any) any {
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		if len(v) > 0 && (v[0] == '{' || v[0] == '[') {
			var parsed any
			if err := json.Unmarshal(v, &parsed); err == nil {
				return parsed
			}
		}
		return string(v)
	default:
		return value
	}
}

func asString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case uuid.UUID:
		return v.String()
	case fmt.Stringer:
		return v.String()
	default:
		return ""
	}
}

func asTime(value any) *time.Time {
	switch v := value.(type) {
	case time.Time:
		return &v
	case *time.Time:
		return v
	case string:
		for _, layout := range []string{time.RFC3339, "2006-01-02"} {
			if t, err := time.Parse(layout, v); err == nil {
				return &t
			}
		}
		return nil
	default:
		return nil
	}
}
