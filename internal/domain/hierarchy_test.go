package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetadataFileName(t *testing.T) {
	assert.Equal(t, "JuanDelaCruzdata.txt", MetadataFileName("JuanDelaCruz"))
}

func TestIsMetadataArtifact(t *testing.T) {
	tests := []struct {
		name     string
		record   string
		file     string
		expected bool
	}{
		{"index file", "Juan", "Juandata.txt", true},
		{"atomic temp file", "Juan", "Juandata.txt1234567", true},
		{"regular document", "Juan", "report.pdf", false},
		{"other record's index", "Juan", "Mariadata.txt", false},
		{"suffix is not numeric", "Juan", "Juandata.txt.bak", false},
		{"text document", "Juan", "notes.txt", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsMetadataArtifact(tt.record, tt.file))
		})
	}
}

func TestSortByName(t *testing.T) {
	t.Run("sorts categories", func(t *testing.T) {
		categories := []Category{{Name: "Grade9"}, {Name: "Grade7"}, {Name: "Grade8"}}
		SortCategories(categories)
		assert.Equal(t, []Category{{Name: "Grade7"}, {Name: "Grade8"}, {Name: "Grade9"}}, categories)
	})

	t.Run("sorts records case-sensitively", func(t *testing.T) {
		records := []Record{{Name: "maria"}, {Name: "Juan"}, {Name: "Ana"}}
		SortRecords(records)
		assert.Equal(t, "Ana", records[0].Name)
		assert.Equal(t, "Juan", records[1].Name)
		assert.Equal(t, "maria", records[2].Name)
	})
}
