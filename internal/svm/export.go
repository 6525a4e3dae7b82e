package svm

import (
	"encoding/csv"
	"io"
	"strconv"
)

// csvHeader is the export header row. Age is derived at export time, never
// stored.
var csvHeader = []string{"ID", "Name", "Birth Date", "Age", "Hometown", "Parish", "Diocese"}

// ExportCSV writes the collection as UTF-8 comma-delimited rows: the header
// followed by one row per record in collection order.
func (s *RecordService) ExportCSV(w io.Writer) error {
	now := s.clock.Now()

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return &Error{Op: "export", Kind: ErrPersistence, Err: err}
	}
	for _, st := range s.students {
		row := []string{
			st.ID,
			st.Name,
			st.BirthDate,
			strconv.Itoa(st.AgeAt(now)),
			st.Hometown,
			st.Parish,
			st.Diocese,
		}
		if err := cw.Write(row); err != nil {
			return &Error{Op: "export", Kind: ErrPersistence, Err: err}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return &Error{Op: "export", Kind: ErrPersistence, Err: err}
	}

	s.logger.Info("students exported", "count", len(s.students))
	return nil
}
