package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Order bool
	Build bool
	Query bool
}

var d *debug

func init() {
	d = &debug{}
	d.Order = boolEnv("XN_DEBUG_ORDER")
	d.Build = boolEnv("XN_DEBUG_BUILD")
	d.Query = boolEnv("XN_DEBUG_QUERY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Order reports whether the cross-check between a backend's
// IsSamePosition and the sibling order derived from its own axes
// is enabled.
func Order() bool {
	return d.Order
}

func Build() bool {
	return d.Build
}

func Query() bool {
	return d.Query
}
