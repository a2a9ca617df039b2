// Package identity issues process-unique keys for render-tree nodes.
package identity

import (
	"strconv"
	"sync/atomic"
)

var counter atomic.Uint64

// Next returns a key that is distinct from every key returned earlier in the
// process, including calls from concurrent tree builds.
func Next() string {
	return "mdv_node_" + strconv.FormatUint(counter.Add(1), 10)
}
