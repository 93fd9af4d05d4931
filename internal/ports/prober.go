package ports

// DirectoryProber lists the store hierarchy straight from the filesystem.
// It never caches, and a missing directory yields an empty result.
type DirectoryProber interface {
	ListCategories() []string
	ListRecords(category string) []string
	ListFiles(category, record string) []string
}
