package handlers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/xuri/excelize/v2"
	"p9e.in/safeguard/config"
	"p9e.in/safeguard/forms"
	"p9e.in/safeguard/models"
	"p9e.in/safeguard/utils"
)

var registerHeader = []string{"Title", "Assessor", "Status", "Risk level", "Next review", "Created"}

// ExportAssessmentsToExcel streams the assessment register as an xlsx
// workbook.
func ExportAssessmentsToExcel(w http.ResponseWriter, r *http.Request) {
	summaries, err := assessmentRepo(r).List()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	f := excelize.NewFile()
	sheet := "Assessments"
	f.SetSheetName("Sheet1", sheet)

	for col, title := range registerHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, title)
	}
	for i, s := range summaries {
		for col, value := range registerRow(s) {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		http.Error(w, "failed to generate Excel file", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("assessments_%s.xlsx", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buffer.Len()))
	w.WriteHeader(http.StatusOK)
	w.Write(buffer.Bytes())
}

// ExportAssessmentsToCSV streams the assessment register as CSV.
func ExportAssessmentsToCSV(w http.ResponseWriter, r *http.Request) {
	summaries, err := assessmentRepo(r).List()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	writer.Write(registerHeader)
	for _, s := range summaries {
		writer.Write(registerRow(s))
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		http.Error(w, "failed to generate CSV file", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("assessments_%s.csv", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func registerRow(s forms.AssessmentSummary) []string {
	review := ""
	if s.NextReviewDate != nil {
		review = s.NextReviewDate.Format("2006-01-02")
	}
	return []string{
		s.Title,
		s.AssessorName,
		s.Status,
		s.RiskLevel,
		review,
		s.CreatedAt.Format("2006-01-02"),
	}
}

// RenderAssessmentDocument streams a rendered document for one
// assessment through the configured renderer.
func RenderAssessmentDocument(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	rec, err := assessmentRepo(r).GetByID(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if rec == nil {
		http.Error(w, "assessment not found", http.StatusNotFound)
		return
	}

	var company models.CompanyProfile
	config.DB.First(&company)

	renderer := ActiveRenderer
	payload, err := renderer.Render(rec, company)
	if err != nil {
		http.Error(w, "failed to render document: "+err.Error(), http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("%s_%s%s",
		utils.SanitizeFilename(rec.StringAt("assessmentTitle")),
		time.Now().Format("20060102"),
		renderer.Extension())
	w.Header().Set("Content-Type", renderer.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}
