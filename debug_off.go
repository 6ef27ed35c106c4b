//go:build !veclist_debug

package veclist

const debug = false
