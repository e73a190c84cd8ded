package inbound

import "context"

// NarrationGeneratorPort produces the single narration script for a product.
// Returns domain.ErrNoFragments when there is nothing to work with and
// domain.ErrNarrationUnavailable (wrapped) when the model call fails.
type NarrationGeneratorPort interface {
	Generate(ctx context.Context, productName string, fragments []string) (string, error)
}
