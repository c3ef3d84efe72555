package handlers

import (
	"bytes"
	"fmt"

	"p9e.in/safeguard/forms"
	"p9e.in/safeguard/models"
)

// DocumentRenderer turns a fully inverse-mapped answer record plus the
// company profile into an opaque document payload. PDF engines plug in
// behind this interface; the core never formats the payload itself.
type DocumentRenderer interface {
	Render(rec forms.AnswerRecord, company models.CompanyProfile) ([]byte, error)
	ContentType() string
	Extension() string
}

// ActiveRenderer is the renderer used by the document endpoint. The
// default writes plain text; deployments swap in a PDF renderer here.
var ActiveRenderer DocumentRenderer = TextRenderer{}

// TextRenderer renders an assessment as a plain-text document, one
// section per wizard step.
type TextRenderer struct{}

func (TextRenderer) ContentType() string { return "text/plain; charset=utf-8" }
func (TextRenderer) Extension() string   { return ".txt" }

func (TextRenderer) Render(rec forms.AnswerRecord, company models.CompanyProfile) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "%s\n", company.Name)
	if company.AddressLine1 != "" {
		fmt.Fprintf(&buf, "%s, %s %s\n", company.AddressLine1, company.City, company.Postcode)
	}
	fmt.Fprintf(&buf, "\nFIRST AID NEEDS ASSESSMENT\n")
	fmt.Fprintf(&buf, "%s\n", rec.StringAt("assessmentTitle"))
	fmt.Fprintf(&buf, "Assessor: %s\n", rec.StringAt("assessorName"))
	fmt.Fprintf(&buf, "Date: %s\n", rec.StringAt("assessmentDate"))

	for step := 1; step <= forms.NeedsAssessmentTotalSteps; step++ {
		descriptor := forms.NeedsAssessmentSteps[step]
		fmt.Fprintf(&buf, "\n%d. %s\n", step, descriptor.Title)
		for _, field := range descriptor.Fields {
			writeField(&buf, rec, field)
		}
	}
	return buf.Bytes(), nil
}

func writeField(buf *bytes.Buffer, rec forms.AnswerRecord, field string) {
	switch value := rec[field].(type) {
	case nil:
		return
	case string:
		if value != "" {
			fmt.Fprintf(buf, "  %s: %s\n", field, value)
		}
	default:
		if entries := rec.EntriesAt(field); len(entries) > 0 {
			for _, entry := range entries {
				name, _ := entry["fullName"].(string)
				phone, _ := entry["phone"].(string)
				fmt.Fprintf(buf, "  - %s %s\n", name, phone)
			}
			return
		}
		tokens := rec.StringsAt(field)
		if tokens == nil {
			return
		}
		for _, token := range tokens {
			fmt.Fprintf(buf, "  - %s", token)
			if detail := rec.StringAt(token + "Details"); detail != "" {
				fmt.Fprintf(buf, ": %s", detail)
			}
			buf.WriteByte('\n')
			for _, entry := range rec.EntriesAt(token + "Resources") {
				location, _ := entry["location"].(string)
				responsible, _ := entry["personResponsible"].(string)
				fmt.Fprintf(buf, "      %s (%s)\n", location, responsible)
			}
		}
	}
}
