package forms

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestDeriveRiskLevel(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	overdue := now.AddDate(0, 0, -1)
	dueSoon := now.AddDate(0, 0, 14)
	comfortable := now.AddDate(0, 6, 0)

	tests := []struct {
		name   string
		review *time.Time
		want   string
	}{
		{"no review date", nil, "low"},
		{"overdue", &overdue, "high"},
		{"due within 30 days", &dueSoon, "medium"},
		{"months away", &comfortable, "low"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DeriveRiskLevel(tc.review, now))
		})
	}
}

func TestNormalizeStatus(t *testing.T) {
	assert.Equal(t, "draft", NormalizeStatus(""))
	assert.Equal(t, "draft", NormalizeStatus("draft"))
	assert.Equal(t, "draft", NormalizeStatus("unexpected"))
	assert.Equal(t, "completed", NormalizeStatus("completed"))
}

func TestSummarizeRow(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	created := now.AddDate(0, -1, 0)
	review := now.AddDate(0, 0, -7)

	summary := SummarizeRow(map[string]any{
		"id":               "a-1",
		"title":            "Main Office Assessment",
		"assessor_name":    "Jane Doe",
		"status":           "",
		"next_review_date": review,
		"created_at":       created,
		"created_by":       "u-1",
	}, now)

	assert.Equal(t, "a-1", summary.ID)
	assert.Equal(t, "Main Office Assessment", summary.Title)
	assert.Equal(t, "draft", summary.Status)
	assert.Equal(t, "high", summary.RiskLevel)
	require.NotNil(t, summary.NextReviewDate)
	assert.Equal(t, review, *summary.NextReviewDate)
	assert.Equal(t, created, summary.CreatedAt)
}

func TestEncodeRow(t *testing.T) {
	row := encodeRow(map[string]any{
		"title":             "Main Office",
		"current_step":      3,
		"low_level_hazards": []string{"chemicals"},
		"appointed_person_list": []Entry{
			{"id": "x1", "fullName": "Jane Doe"},
		},
	})

	assert.Equal(t, "Main Office", row["title"])
	assert.Equal(t, 3, row["current_step"])
	assert.IsType(t, datatypes.JSON{}, row["low_level_hazards"])
	assert.JSONEq(t, `["chemicals"]`, string(row["low_level_hazards"].(datatypes.JSON)))
	assert.JSONEq(t, `[{"id":"x1","fullName":"Jane Doe"}]`,
		string(row["appointed_person_list"].(datatypes.JSON)))
}

func mockRepository(t *testing.T) (*AssessmentRepository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return NewAssessmentRepository(db, nil), mock
}

func TestGetByIDNotFound(t *testing.T) {
	repo, mock := mockRepository(t)
	mock.ExpectQuery(`SELECT \* FROM "first_aid_needs_assessments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}))

	rec, err := repo.GetByID("missing")
	require.NoError(t, err)
	require.Nil(t, rec)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDPropagatesIterationErrors(t *testing.T) {
	repo, mock := mockRepository(t)
	rows := sqlmock.NewRows([]string{"id", "title"}).
		AddRow("a-1", "Main Office").
		RowError(0, errors.New("connection reset"))
	mock.ExpectQuery(`SELECT \* FROM "first_aid_needs_assessments"`).
		WillReturnRows(rows)

	rec, err := repo.GetByID("a-1")
	require.Error(t, err)
	require.ErrorContains(t, err, "connection reset")
	require.Nil(t, rec)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDecodeDBValue(t *testing.T) {
	assert.Nil(t, decodeDBValue(nil))
	assert.Equal(t, "plain text", decodeDBValue([]byte("plain text")))
	assert.Equal(t, map[string]any{"a": "b"}, decodeDBValue([]byte(`{"a":"b"}`)))
	assert.Equal(t, []any{"chemicals"}, decodeDBValue([]byte(`["chemicals"]`)))
	assert.Equal(t, int64(3), decodeDBValue(int64(3)))
}
