package filesystem

import (
	"bytes"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"

	"sfadsms/internal/domain"
	"sfadsms/internal/ports"
)

// MetaIndex implements ports.MetadataIndex over the "<record>data.txt" files
type MetaIndex struct {
	dataDir string
	prober  ports.DirectoryProber
	logger  *slog.Logger
	now     func() time.Time
}

// NewMetaIndex creates a metadata index rooted at the store's data directory
func NewMetaIndex(dataDir string, prober ports.DirectoryProber, logger *slog.Logger) *MetaIndex {
	if logger == nil {
		logger = slog.Default()
	}
	return &MetaIndex{
		dataDir: dataDir,
		prober:  prober,
		logger:  logger,
		now:     time.Now,
	}
}

// Path returns the index file path for a record
func (m *MetaIndex) Path(category, record string) string {
	return filepath.Join(m.dataDir, category, record, domain.MetadataFileName(record))
}

// Append adds an entry without parsing existing lines: the new index is the
// current line count. The caller guarantees fileName exists and is not listed yet.
func (m *MetaIndex) Append(category, record, fileName string) error {
	dir := filepath.Join(m.dataDir, category, record)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &IndexWriteError{Path: dir, Op: "create record directory", Err: err}
	}

	path := m.Path(category, record)
	data, _ := m.read(path)

	var buf bytes.Buffer
	if len(data) > 0 && data[len(data)-1] != '\n' {
		buf.WriteByte('\n')
	}
	buf.Write(encodeEntry(domain.Entry{
		Index:     countLines(data),
		FileName:  fileName,
		Timestamp: domain.FormatTimestamp(m.now()),
	}))

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return &IndexWriteError{Path: path, Op: "open index", Err: err}
	}
	if _, err := f.Write(buf.Bytes()); err != nil {
		f.Close()
		return &IndexWriteError{Path: path, Op: "append to index", Err: err}
	}
	if err := f.Close(); err != nil {
		return &IndexWriteError{Path: path, Op: "close index", Err: err}
	}
	return nil
}

// Remove drops the first entry named fileName and renumbers the rest.
// A missing or unreadable index is left alone.
func (m *MetaIndex) Remove(category, record, fileName string) error {
	path := m.Path(category, record)
	data, ok := m.read(path)
	if !ok {
		return nil
	}

	entries, _ := decodeEntries(data)
	if i := slices.IndexFunc(entries, func(e domain.Entry) bool { return e.FileName == fileName }); i >= 0 {
		entries = slices.Delete(entries, i, i+1)
	}

	_, err := m.rewrite(path, data, domain.Renumber(entries))
	return err
}

// FullSync prunes entries without a file, adopts files without an entry and
// renumbers. Nothing is written when the index already matches.
func (m *MetaIndex) FullSync(category, record string) (domain.RecordSync, error) {
	result := domain.RecordSync{Category: category, Record: record}

	dir := filepath.Join(m.dataDir, category, record)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return result, nil
	}

	files := m.prober.ListFiles(category, record)
	onDisk := make(map[string]bool, len(files))
	for _, name := range files {
		onDisk[name] = true
	}

	path := m.Path(category, record)
	data, _ := m.read(path)
	entries, dropped := decodeEntries(data)
	result.Dropped = dropped

	stamp := domain.FormatTimestamp(m.now())
	seen := make(map[string]bool, len(entries))
	kept := make([]domain.Entry, 0, len(files))
	for _, e := range entries {
		if !onDisk[e.FileName] || seen[e.FileName] {
			result.Pruned++
			continue
		}
		seen[e.FileName] = true
		if e.Timestamp == "" {
			e.Timestamp = stamp
		}
		kept = append(kept, e)
	}
	for _, name := range files {
		if !seen[name] {
			kept = append(kept, domain.Entry{FileName: name, Timestamp: stamp})
			result.Adopted++
		}
	}

	rewritten, err := m.rewrite(path, data, domain.Renumber(kept))
	if err != nil {
		return result, err
	}
	result.Rewritten = rewritten
	return result, nil
}

// Entries returns the parsed entries of a record's index
func (m *MetaIndex) Entries(category, record string) []domain.Entry {
	data, _ := m.read(m.Path(category, record))
	entries, _ := decodeEntries(data)
	return entries
}

// CountEntries returns the number of lines in a record's index
func (m *MetaIndex) CountEntries(category, record string) int {
	data, _ := m.read(m.Path(category, record))
	return countLines(data)
}

// Relocate renames "<oldRecord>data.txt" inside the already renamed record directory
func (m *MetaIndex) Relocate(category, record, oldRecord string) error {
	if record == oldRecord {
		return nil
	}

	dir := filepath.Join(m.dataDir, category, record)
	src := filepath.Join(dir, domain.MetadataFileName(oldRecord))
	if _, err := os.Stat(src); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	dst := m.Path(category, record)
	if err := os.Rename(src, dst); err != nil {
		return &IndexWriteError{Path: dst, Op: "relocate index", Err: err}
	}
	return nil
}

// read returns the file content and whether it could be read. Failures other
// than a missing file are logged and treated as an empty index.
func (m *MetaIndex) read(path string) ([]byte, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			m.logger.Warn("failed to read metadata index", "path", path, "error", err)
		}
		return nil, false
	}
	return data, true
}

// rewrite replaces the index with entries unless the encoded bytes equal old
func (m *MetaIndex) rewrite(path string, old []byte, entries []domain.Entry) (bool, error) {
	encoded := encodeEntries(entries)
	if bytes.Equal(encoded, old) {
		return false, nil
	}
	if err := writeFileAtomic(path, encoded); err != nil {
		return false, &IndexWriteError{Path: path, Op: "rewrite index", Err: err}
	}
	m.logger.Debug("rewrote metadata index", "path", path, "entries", len(entries))
	return true, nil
}

var _ ports.MetadataIndex = (*MetaIndex)(nil)
