package inbound

// TextFilterPort removes boilerplate fragments from raw OCR text before
// narration generation. Pure: no side effects, no failure modes.
type TextFilterPort interface {
	Filter(fragments []string) []string
}
