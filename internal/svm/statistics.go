package svm

// Statistics summarizes the collection: the total, a frequency map per
// classification field, and the distinct value count for each.
type Statistics struct {
	TotalStudents        int
	DioceseDistribution  map[string]int
	ParishDistribution   map[string]int
	HometownDistribution map[string]int
	UniqueDioceses       int
	UniqueParishes       int
	UniqueHometowns      int
}

// Statistics builds all frequency maps in a single pass over the collection.
// Iteration order within the maps is insignificant.
func (s *RecordService) Statistics() Statistics {
	stats := Statistics{
		TotalStudents:        len(s.students),
		DioceseDistribution:  make(map[string]int),
		ParishDistribution:   make(map[string]int),
		HometownDistribution: make(map[string]int),
	}

	for _, st := range s.students {
		stats.DioceseDistribution[st.Diocese]++
		stats.ParishDistribution[st.Parish]++
		stats.HometownDistribution[st.Hometown]++
	}

	stats.UniqueDioceses = len(stats.DioceseDistribution)
	stats.UniqueParishes = len(stats.ParishDistribution)
	stats.UniqueHometowns = len(stats.HometownDistribution)
	return stats
}
