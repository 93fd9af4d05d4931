package filesystem

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sfadsms/internal/domain"
)

func TestMetaIndex_AppendCreatesRecordAndIndex(t *testing.T) {
	s := setupTestStore(t)

	require.NoError(t, s.index.Append("Grade7", "Juan", "a.pdf"))
	require.NoError(t, s.index.Append("Grade7", "Juan", "b.pdf"))

	got := readFile(t, s.path("Grade7", "Juan", "Juandata.txt"))
	assert.Equal(t, "0|a.pdf|"+fixedStamp+"\n1|b.pdf|"+fixedStamp+"\n", got)
	assert.Equal(t, 2, s.index.CountEntries("Grade7", "Juan"))
}

func TestMetaIndex_AppendAfterMissingTrailingNewline(t *testing.T) {
	s := setupTestStore(t)
	writeFile(t, s.path("Grade7", "Juan", "Juandata.txt"), "0|a.pdf|T1")

	require.NoError(t, s.index.Append("Grade7", "Juan", "b.pdf"))

	got := readFile(t, s.path("Grade7", "Juan", "Juandata.txt"))
	assert.Equal(t, "0|a.pdf|T1\n1|b.pdf|"+fixedStamp+"\n", got)
}

func TestMetaIndex_AppendRemoveRoundTripLeavesEmptyFile(t *testing.T) {
	s := setupTestStore(t)
	path := s.path("Grade7", "Juan", "Juandata.txt")

	require.NoError(t, s.index.Append("Grade7", "Juan", "a.pdf"))
	require.NoError(t, s.index.Append("Grade7", "Juan", "b.pdf"))
	require.NoError(t, s.index.Remove("Grade7", "Juan", "a.pdf"))

	assert.Equal(t, "0|b.pdf|"+fixedStamp+"\n", readFile(t, path))

	require.NoError(t, s.index.Remove("Grade7", "Juan", "b.pdf"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestMetaIndex_RemoveFirstMatchOnlyAndRenumber(t *testing.T) {
	s := setupTestStore(t)
	path := s.path("Grade7", "Juan", "Juandata.txt")
	writeFile(t, path, "0|a.pdf|T1\n1|a.pdf|T2\n2|b.pdf|T3\n")

	require.NoError(t, s.index.Remove("Grade7", "Juan", "a.pdf"))

	assert.Equal(t, "0|a.pdf|T2\n1|b.pdf|T3\n", readFile(t, path))
	assert.True(t, domain.IsContiguous(s.index.Entries("Grade7", "Juan")))
}

func TestMetaIndex_RemoveWithoutIndexIsNoop(t *testing.T) {
	s := setupTestStore(t)
	require.NoError(t, os.MkdirAll(s.path("Grade7", "Juan"), 0755))

	require.NoError(t, s.index.Remove("Grade7", "Juan", "a.pdf"))

	_, err := os.Stat(s.path("Grade7", "Juan", "Juandata.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestMetaIndex_RemoveUnknownNameDoesNotRewrite(t *testing.T) {
	s := setupTestStore(t)
	path := s.path("Grade7", "Juan", "Juandata.txt")
	writeFile(t, path, "0|a.pdf|T1\n")
	old := time.Now().Add(-time.Hour).Truncate(time.Second)
	require.NoError(t, os.Chtimes(path, old, old))

	require.NoError(t, s.index.Remove("Grade7", "Juan", "zzz.pdf"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(old), "index should not be rewritten")
}

func TestMetaIndex_FullSyncPrunesAndAdopts(t *testing.T) {
	s := setupTestStore(t)
	path := s.path("Grade7", "Juan", "Juandata.txt")
	writeFile(t, s.path("Grade7", "Juan", "a.pdf"), "a")
	writeFile(t, s.path("Grade7", "Juan", "c.pdf"), "c")
	writeFile(t, path, "0|a.pdf|T1\n1|b.pdf|T2\n")

	result, err := s.index.FullSync("Grade7", "Juan")
	require.NoError(t, err)

	assert.Equal(t, domain.RecordSync{
		Category:  "Grade7",
		Record:    "Juan",
		Pruned:    1,
		Adopted:   1,
		Rewritten: true,
	}, result)
	assert.Equal(t, "0|a.pdf|T1\n1|c.pdf|"+fixedStamp+"\n", readFile(t, path))
}

func TestMetaIndex_FullSyncIsIdempotent(t *testing.T) {
	s := setupTestStore(t)
	path := s.path("Grade7", "Juan", "Juandata.txt")
	writeFile(t, s.path("Grade7", "Juan", "a.pdf"), "a")
	writeFile(t, s.path("Grade7", "Juan", "b.pdf"), "b")

	first, err := s.index.FullSync("Grade7", "Juan")
	require.NoError(t, err)
	assert.True(t, first.Rewritten)
	content := readFile(t, path)

	s.index.now = func() time.Time { return fixedTime.Add(48 * time.Hour) }
	second, err := s.index.FullSync("Grade7", "Juan")
	require.NoError(t, err)

	assert.False(t, second.Rewritten)
	assert.Zero(t, second.Pruned)
	assert.Zero(t, second.Adopted)
	assert.Equal(t, content, readFile(t, path))
}

func TestMetaIndex_FullSyncRepairsContiguityAndDuplicates(t *testing.T) {
	s := setupTestStore(t)
	path := s.path("Grade7", "Juan", "Juandata.txt")
	writeFile(t, s.path("Grade7", "Juan", "a.pdf"), "a")
	writeFile(t, s.path("Grade7", "Juan", "b.pdf"), "b")
	writeFile(t, path, "3|a.pdf|T1\ngarbage\n7|b.pdf\n9|a.pdf|T9\n")

	result, err := s.index.FullSync("Grade7", "Juan")
	require.NoError(t, err)

	assert.Equal(t, 1, result.Dropped)
	assert.Equal(t, 1, result.Pruned)
	assert.Zero(t, result.Adopted)
	assert.Equal(t, "0|a.pdf|T1\n1|b.pdf|"+fixedStamp+"\n", readFile(t, path))

	entries := s.index.Entries("Grade7", "Juan")
	assert.True(t, domain.IsContiguous(entries))
	assert.Len(t, entries, len(s.prober.ListFiles("Grade7", "Juan")))
}

func TestMetaIndex_FullSyncEmptyRecordCreatesNothing(t *testing.T) {
	s := setupTestStore(t)
	require.NoError(t, os.MkdirAll(s.path("Grade7", "Juan"), 0755))

	result, err := s.index.FullSync("Grade7", "Juan")
	require.NoError(t, err)
	assert.False(t, result.Rewritten)

	_, err = os.Stat(s.path("Grade7", "Juan", "Juandata.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestMetaIndex_FullSyncMissingRecordIsNoop(t *testing.T) {
	s := setupTestStore(t)

	result, err := s.index.FullSync("Grade7", "Ghost")
	require.NoError(t, err)
	assert.False(t, result.Rewritten)

	_, err = os.Stat(s.path("Grade7", "Ghost"))
	assert.True(t, os.IsNotExist(err))
}

func TestMetaIndex_FullSyncWriteFailureIsReturned(t *testing.T) {
	s := setupTestStore(t)
	writeFile(t, s.path("Grade7", "Juan", "a.pdf"), "a")
	// A directory where the index file belongs cannot be read or replaced
	require.NoError(t, os.MkdirAll(s.path("Grade7", "Juan", "Juandata.txt"), 0755))

	_, err := s.index.FullSync("Grade7", "Juan")
	require.Error(t, err)

	var writeErr *IndexWriteError
	require.True(t, errors.As(err, &writeErr))
	assert.Equal(t, s.path("Grade7", "Juan", "Juandata.txt"), writeErr.Path)
}

func TestMetaIndex_UnreadableIndexReadsAsEmpty(t *testing.T) {
	s := setupTestStore(t)
	path := s.path("Grade7", "Juan", "Juandata.txt")
	writeFile(t, s.path("Grade7", "Juan", "a.pdf"), "a")
	writeFile(t, path, "0|a.pdf|T1\n")
	makeUnreadable(t, path)

	assert.Empty(t, s.index.Entries("Grade7", "Juan"))
	assert.Zero(t, s.index.CountEntries("Grade7", "Juan"))
}

func TestMetaIndex_RemoveLeavesUnreadableIndexAlone(t *testing.T) {
	s := setupTestStore(t)
	path := s.path("Grade7", "Juan", "Juandata.txt")
	writeFile(t, path, "0|a.pdf|T1\n1|b.pdf|T2\n")
	makeUnreadable(t, path)

	require.NoError(t, s.index.Remove("Grade7", "Juan", "a.pdf"))

	require.NoError(t, os.Chmod(path, 0644))
	assert.Equal(t, "0|a.pdf|T1\n1|b.pdf|T2\n", readFile(t, path))
}

func TestMetaIndex_FullSyncTreatsUnreadableIndexAsEmpty(t *testing.T) {
	s := setupTestStore(t)
	path := s.path("Grade7", "Juan", "Juandata.txt")
	writeFile(t, s.path("Grade7", "Juan", "a.pdf"), "a")
	writeFile(t, s.path("Grade7", "Juan", "b.pdf"), "b")
	writeFile(t, path, "0|a.pdf|T1\n")
	makeUnreadable(t, path)

	result, err := s.index.FullSync("Grade7", "Juan")
	require.NoError(t, err)

	assert.Equal(t, domain.RecordSync{
		Category:  "Grade7",
		Record:    "Juan",
		Adopted:   2,
		Rewritten: true,
	}, result)
	assert.Equal(t, "0|a.pdf|"+fixedStamp+"\n1|b.pdf|"+fixedStamp+"\n", readFile(t, path))
}

func TestMetaIndex_Relocate(t *testing.T) {
	s := setupTestStore(t)
	writeFile(t, s.path("Grade7", "Juan", "Pedrodata.txt"), "0|a.pdf|T1\n")

	require.NoError(t, s.index.Relocate("Grade7", "Juan", "Pedro"))

	assert.Equal(t, "0|a.pdf|T1\n", readFile(t, s.path("Grade7", "Juan", "Juandata.txt")))
	_, err := os.Stat(s.path("Grade7", "Juan", "Pedrodata.txt"))
	assert.True(t, os.IsNotExist(err))

	// Nothing to relocate
	require.NoError(t, s.index.Relocate("Grade7", "Juan", "Maria"))
}
