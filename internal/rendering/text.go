// Package rendering renders a resume model as human-readable text or JSON.
package rendering

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-fetch/internal/record"
	"github.com/jonathan/resume-fetch/internal/resume"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	entryIndent  = "  "
	detailIndent = "    - "
)

// Text writes the plain-text resume summary: contact info, projects,
// education, experience and skills, in that order.
func Text(w io.Writer, m *resume.Model) error {
	if m == nil {
		return &RenderError{Message: "nil resume model"}
	}

	var sb strings.Builder

	writeHeading(&sb, "Contact Info")
	for _, v := range m.Contact().FieldValues() {
		sb.WriteString(entryIndent + record.FormatValue(v) + "\n")
	}

	writeHeading(&sb, "Projects")
	for _, proj := range m.Projects() {
		sb.WriteString(fmt.Sprintf("%s%s - %s\n", entryIndent, field(proj, "name"), field(proj, "url")))
		sb.WriteString(detailIndent + field(proj, "description") + "\n")
	}

	writeHeading(&sb, "Education")
	for _, edu := range m.Education() {
		sb.WriteString(fmt.Sprintf("%s%s at %s in %s\n",
			entryIndent, field(edu, "course_name"), field(edu, "school_name"), field(edu, "year")))
	}

	writeHeading(&sb, "Experience")
	for _, exp := range m.Experience() {
		sb.WriteString(fmt.Sprintf("%s%s at %s from %s to %s\n",
			entryIndent, field(exp, "job_title"), field(exp, "company"), field(exp, "year_started"), endDate(exp)))
		sb.WriteString(detailIndent + field(exp, "description") + "\n")
	}

	writeHeading(&sb, "Skills")
	skills := m.Skills()
	for _, category := range skills.FieldNames() {
		sb.WriteString(fmt.Sprintf("%s%s: %s\n", entryIndent, Capitalize(category), field(skills, category)))
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return &RenderError{Message: "failed to write text output", Cause: err}
	}
	return nil
}

func writeHeading(sb *strings.Builder, title string) {
	if sb.Len() > 0 {
		sb.WriteString("\n")
	}
	sb.WriteString(title + ":\n")
	sb.WriteString(strings.Repeat("=", utf8.RuneCountInString(title)+1) + "\n\n")
}

// field returns the display text of name, or "" when the record lacks it.
func field(rec *record.Record, name string) string {
	v, err := rec.Get(name)
	if err != nil {
		return ""
	}
	return record.FormatValue(v)
}

func endDate(exp *record.Record) string {
	v, err := exp.Get(resume.FieldYearEnded)
	if err != nil || v == nil {
		return resume.CurrentEndDate
	}
	return record.FormatValue(v)
}

// Capitalize upper-cases the first letter of s and lower-cases the rest.
func Capitalize(s string) string {
	_, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return cases.Upper(language.Und).String(s[:size]) + cases.Lower(language.Und).String(s[size:])
}
