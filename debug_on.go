//go:build veclist_debug

package veclist

// debug verifies every invariant after each mutation. Enable with
// -tags veclist_debug.
const debug = true
