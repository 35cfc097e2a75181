package buffer

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes a human-readable report of the buffer to w: a header line
// naming the instance address and label, a size line, the backing
// allocation's address and the element values in order. It never modifies
// the buffer and is safe to call on an empty one (the allocation address
// reports 0x0). An empty label renders as "<unnamed>".
func (b *Buffer) Dump(w io.Writer, label string) {
	if label == "" {
		label = "<unnamed>"
	}
	fmt.Fprintf(w, "Buffer %p (%s) contents:\n", b, label)
	fmt.Fprintf(w, "Size: %d\n", len(b.values))
	fmt.Fprintf(w, "Data address: %p\n", b.values)
	var sb strings.Builder
	for i, v := range b.values {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%g", v)
	}
	fmt.Fprintln(w, sb.String())
}
