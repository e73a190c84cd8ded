package outbound

// PlaceholderImagePort produces the solid-color stand-in image used when no
// real product image is available or selectable. Ensure is idempotent: it
// creates the file once and returns its path on every call.
type PlaceholderImagePort interface {
	Ensure() (string, error)
}
