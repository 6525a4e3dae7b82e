package svm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// birthDateLayout is the storage format for birth dates: two-digit day,
// two-digit month, four-digit year.
const birthDateLayout = "02/01/2006"

// Student is one seminary student record. All fields are stored as strings;
// identity is ID. Constraints are enforced by Validate, which every write
// path goes through before a Student enters the collection.
type Student struct {
	ID        string `json:"id" validate:"required,startswith=SV,min=3,max=10"`
	Name      string `json:"name" validate:"required,min=1,max=100"`
	BirthDate string `json:"birth_date" validate:"required,dmy_date"`
	Hometown  string `json:"hometown" validate:"required,min=1,max=100"`
	Parish    string `json:"parish" validate:"required,min=1,max=100"`
	Diocese   string `json:"diocese" validate:"required,min=1,max=100"`
}

// Validate checks every field constraint and reports all violations as a
// *ValidationError. On success the id is upper-cased ("SVabc" becomes
// "SVABC"); the SV prefix is checked before case normalization, so a
// lower-case prefix is rejected rather than repaired.
func (s *Student) Validate() error {
	if err := checkStruct(s); err != nil {
		return err
	}
	s.ID = strings.ToUpper(s.ID)
	return nil
}

// AgeAt returns the student's age in whole years at the given date: the year
// difference, minus one if the birthday has not been reached yet that year.
// Returns 0 if the stored birth date does not parse; validated records never
// hit that path.
func (s *Student) AgeAt(today time.Time) int {
	birth, err := time.Parse(birthDateLayout, s.BirthDate)
	if err != nil {
		return 0
	}
	age := today.Year() - birth.Year()
	if today.Month() < birth.Month() ||
		(today.Month() == birth.Month() && today.Day() < birth.Day()) {
		age--
	}
	return age
}

// DecodeStudent parses one JSON record and validates it. Unknown fields are
// rejected rather than silently dropped.
func DecodeStudent(data []byte) (Student, error) {
	var st Student
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&st); err != nil {
		return Student{}, fmt.Errorf("decoding student record: %w", err)
	}
	if err := st.Validate(); err != nil {
		return Student{}, err
	}
	return st, nil
}
