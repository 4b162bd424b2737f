//go:build pinlist_debug

package assert

func init() { Debug = true }
