package svm

import "strings"

// Search returns the records whose id, name, hometown, parish, or diocese
// contains the query as a case-insensitive substring, preserving collection
// order. An empty or whitespace-only query returns the whole collection.
func (s *RecordService) Search(query string) []Student {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return s.Students()
	}

	var results []Student
	for _, st := range s.students {
		if strings.Contains(strings.ToLower(st.ID), q) ||
			strings.Contains(strings.ToLower(st.Name), q) ||
			strings.Contains(strings.ToLower(st.Hometown), q) ||
			strings.Contains(strings.ToLower(st.Parish), q) ||
			strings.Contains(strings.ToLower(st.Diocese), q) {
			results = append(results, st)
		}
	}
	return results
}

// FilterByDiocese returns the records whose diocese matches exactly,
// ignoring case.
func (s *RecordService) FilterByDiocese(diocese string) []Student {
	return s.filter(diocese, func(st Student) string { return st.Diocese })
}

// FilterByParish returns the records whose parish matches exactly,
// ignoring case.
func (s *RecordService) FilterByParish(parish string) []Student {
	return s.filter(parish, func(st Student) string { return st.Parish })
}

// FilterByHometown returns the records whose hometown matches exactly,
// ignoring case.
func (s *RecordService) FilterByHometown(hometown string) []Student {
	return s.filter(hometown, func(st Student) string { return st.Hometown })
}

func (s *RecordService) filter(value string, field func(Student) string) []Student {
	var results []Student
	for _, st := range s.students {
		if strings.EqualFold(field(st), value) {
			results = append(results, st)
		}
	}
	return results
}
