package domain

// ExportFile is a generated download.
type ExportFile struct {
	FileName    string
	ContentType string
	Content     []byte
}
