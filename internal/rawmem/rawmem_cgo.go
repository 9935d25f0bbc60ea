//go:build cgo

package rawmem

// #include <stdlib.h>
import "C"

import "unsafe"

func alloc(n int) unsafe.Pointer {
	return C.calloc(C.size_t(n), 1)
}

func free(p unsafe.Pointer, _ int) {
	C.free(p)
}
