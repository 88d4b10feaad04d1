// Package resume builds a resume model from a parsed resume document.
package resume

import (
	"errors"
	"fmt"
	"slices"

	"github.com/jonathan/resume-fetch/internal/record"
	"github.com/jonathan/resume-fetch/internal/schemas"
)

// Top-level document keys, in the order they are checked.
const (
	KeyBasicInfo  = "basic_info"
	KeyExperience = "experience"
	KeyProjects   = "projects"
	KeySkills     = "skills"
	KeyEducation  = "education"
)

// SectionKeys lists the required top-level keys in check order.
var SectionKeys = []string{KeyBasicInfo, KeyExperience, KeyProjects, KeySkills, KeyEducation}

// Experience entry fields referenced by the model.
const (
	FieldYearEnded = "year_ended"
	CurrentEndDate = "Current"
)

// Model holds one record per resume section entry.
type Model struct {
	contact    *record.Record
	experience []*record.Record
	projects   []*record.Record
	skills     *record.Record
	education  []*record.Record
}

// New builds a Model from a resume document.
// Any record construction error aborts the build and no model is returned.
func New(doc record.Fields, opts ...record.Option) (*Model, error) {
	basicInfo, err := mappingSection(doc, KeyBasicInfo)
	if err != nil {
		return nil, err
	}
	experience, err := listSection(doc, KeyExperience)
	if err != nil {
		return nil, err
	}
	projects, err := listSection(doc, KeyProjects)
	if err != nil {
		return nil, err
	}
	skills, err := mappingSection(doc, KeySkills)
	if err != nil {
		return nil, err
	}
	education, err := listSection(doc, KeyEducation)
	if err != nil {
		return nil, err
	}

	m := &Model{}
	if m.contact, err = record.New(basicInfo, opts...); err != nil {
		return nil, fmt.Errorf("%s: %w", KeyBasicInfo, err)
	}
	if m.experience, err = buildRecords(KeyExperience, experience, opts); err != nil {
		return nil, err
	}
	if m.projects, err = buildRecords(KeyProjects, projects, opts); err != nil {
		return nil, err
	}
	if m.skills, err = record.New(skills, opts...); err != nil {
		return nil, fmt.Errorf("%s: %w", KeySkills, err)
	}
	if m.education, err = buildRecords(KeyEducation, education, opts); err != nil {
		return nil, err
	}

	return m, nil
}

// Parse decodes and validates a JSON resume document and builds a Model from it.
func Parse(data []byte, opts ...record.Option) (*Model, error) {
	if err := schemas.ValidateResumeDocument(data); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return nil, &MalformedResumeError{Key: firstInvalidKey(validationErr.Keys()), Cause: err}
		}
		// The document itself could not be loaded, i.e. it is not JSON.
		return nil, &MalformedResumeError{Key: schemas.RootField, Cause: err}
	}

	doc, err := record.ParseObject(data)
	if err != nil {
		return nil, &MalformedResumeError{Key: schemas.RootField, Cause: err}
	}

	return New(doc, opts...)
}

// firstInvalidKey picks the reported key in SectionKeys order so results do
// not depend on validator error ordering.
func firstInvalidKey(keys []string) string {
	for _, k := range SectionKeys {
		if slices.Contains(keys, k) {
			return k
		}
	}
	if len(keys) > 0 {
		return keys[0]
	}
	return schemas.RootField
}

func mappingSection(doc record.Fields, key string) (record.Fields, error) {
	v, ok := doc.Lookup(key)
	if !ok {
		return nil, &MalformedResumeError{Key: key}
	}
	fields, ok := v.(record.Fields)
	if !ok {
		return nil, &MalformedResumeError{Key: key, Cause: fmt.Errorf("expected an object, got %T", v)}
	}
	return fields, nil
}

func listSection(doc record.Fields, key string) ([]record.Fields, error) {
	v, ok := doc.Lookup(key)
	if !ok {
		return nil, &MalformedResumeError{Key: key}
	}
	items, ok := v.([]record.Value)
	if !ok {
		return nil, &MalformedResumeError{Key: key, Cause: fmt.Errorf("expected an array, got %T", v)}
	}

	entries := make([]record.Fields, len(items))
	for i, item := range items {
		fields, ok := item.(record.Fields)
		if !ok {
			return nil, &MalformedResumeError{Key: key, Cause: fmt.Errorf("entry %d: expected an object, got %T", i, item)}
		}
		entries[i] = fields
	}
	return entries, nil
}

func buildRecords(key string, entries []record.Fields, opts []record.Option) ([]*record.Record, error) {
	records := make([]*record.Record, 0, len(entries))
	for i, fields := range entries {
		rec, err := record.New(fields, opts...)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", key, i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Contact returns the basic_info record.
func (m *Model) Contact() *record.Record {
	return m.contact
}

// Experience returns the experience records in document order.
func (m *Model) Experience() []*record.Record {
	return m.experience
}

// Projects returns the project records in document order.
func (m *Model) Projects() []*record.Record {
	return m.projects
}

// Skills returns the skills record; each field is a category of skill names.
func (m *Model) Skills() *record.Record {
	return m.skills
}

// Education returns the education records in document order.
func (m *Model) Education() []*record.Record {
	return m.education
}

// FillCurrentEndDates sets year_ended to "Current" on every experience entry
// where it is present and null. It returns the number of entries patched.
func (m *Model) FillCurrentEndDates() int {
	patched := 0
	for _, exp := range m.experience {
		v, err := exp.Get(FieldYearEnded)
		if err != nil || v != nil {
			continue
		}
		if err := exp.Set(FieldYearEnded, CurrentEndDate); err == nil {
			patched++
		}
	}
	return patched
}

// MarshalJSON encodes the model as a resume document, keeping key order.
func (m *Model) MarshalJSON() ([]byte, error) {
	return record.Fields{
		{Name: KeyBasicInfo, Value: m.contact},
		{Name: KeyExperience, Value: m.experience},
		{Name: KeyProjects, Value: m.projects},
		{Name: KeySkills, Value: m.skills},
		{Name: KeyEducation, Value: m.education},
	}.MarshalJSON()
}
