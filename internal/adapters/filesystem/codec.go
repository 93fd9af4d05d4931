package filesystem

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"sfadsms/internal/domain"
)

// Index line:    <index>|<fileName>|<timestamp>
// Manifest line: <category>|true  or  <category>|false

func encodeEntry(e domain.Entry) []byte {
	return fmt.Appendf(nil, "%d%s%s%s%s\n", e.Index, domain.FieldSeparator, e.FileName, domain.FieldSeparator, e.Timestamp)
}

func encodeEntries(entries []domain.Entry) []byte {
	var buf bytes.Buffer
	for _, e := range entries {
		buf.Write(encodeEntry(e))
	}
	return buf.Bytes()
}

// decodeEntries parses index content. Lines with fewer than two fields are
// skipped and counted in dropped. An unparsable index number becomes -1 so
// the entry is renumbered on the next rewrite.
func decodeEntries(data []byte) (entries []domain.Entry, dropped int) {
	for _, line := range splitLines(data) {
		fields := strings.Split(line, domain.FieldSeparator)
		if len(fields) < 2 {
			dropped++
			continue
		}

		index, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil {
			index = -1
		}
		entry := domain.Entry{Index: index, FileName: fields[1]}
		if len(fields) > 2 {
			entry.Timestamp = fields[2]
		}
		entries = append(entries, entry)
	}
	return entries, dropped
}

// countLines counts lines the way a line reader would: a final line without
// a trailing newline still counts.
func countLines(data []byte) int {
	if len(data) == 0 {
		return 0
	}
	n := bytes.Count(data, []byte{'\n'})
	if data[len(data)-1] != '\n' {
		n++
	}
	return n
}

func encodeManifest(flags map[string]bool) []byte {
	names := make([]string, 0, len(flags))
	for name := range flags {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	for _, name := range names {
		fmt.Fprintf(&buf, "%s%s%t\n", name, domain.FieldSeparator, flags[name])
	}
	return buf.Bytes()
}

// decodeManifest parses registry content. Lines that are not exactly two
// fields are skipped; any value other than "true" reads as false.
func decodeManifest(data []byte) map[string]bool {
	flags := make(map[string]bool)
	for _, line := range splitLines(data) {
		fields := strings.Split(line, domain.FieldSeparator)
		if len(fields) != 2 || fields[0] == "" {
			continue
		}
		flags[fields[0]] = strings.TrimSpace(fields[1]) == "true"
	}
	return flags
}

func splitLines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
