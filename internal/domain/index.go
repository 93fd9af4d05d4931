package domain

import "time"

// TimestampLayout is the index timestamp format (dd-MM-yyyy hh:mm a)
const TimestampLayout = "02-01-2006 03:04 PM"

// Entry is one line of a record's metadata index
type Entry struct {
	Index     int    // Sequence number, contiguous from 0 after every rewrite
	FileName  string // Name of the file inside the record directory
	Timestamp string // When the file was first recorded, TimestampLayout
}

// FormatTimestamp renders t in the index timestamp format
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// Renumber assigns indices 0..n-1 in slice order
func Renumber(entries []Entry) []Entry {
	for i := range entries {
		entries[i].Index = i
	}
	return entries
}

// IsContiguous reports whether indices run 0..n-1 in slice order
func IsContiguous(entries []Entry) bool {
	for i, e := range entries {
		if e.Index != i {
			return false
		}
	}
	return true
}

// RecordSync describes what a full sync changed in one record's index
type RecordSync struct {
	Category  string
	Record    string
	Pruned    int  // Entries whose file no longer exists, plus duplicates
	Adopted   int  // Files on disk that had no entry
	Dropped   int  // Malformed lines discarded
	Rewritten bool // False when the index was already consistent
}

// SyncStats holds statistics from a reconciliation pass
type SyncStats struct {
	Categories       []string // Categories that were dirty and got scanned
	RecordsScanned   int
	RecordsRewritten int
	EntriesPruned    int
	EntriesAdopted   int
	Duration         time.Duration
}

// Add folds one record's result into the totals
func (s *SyncStats) Add(r RecordSync) {
	s.RecordsScanned++
	s.EntriesPruned += r.Pruned
	s.EntriesAdopted += r.Adopted
	if r.Rewritten {
		s.RecordsRewritten++
	}
}
