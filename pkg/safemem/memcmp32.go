package safemem

import (
	"github.com/daanv2/go-safemem/pkg/constraint"
	"github.com/daanv2/go-safemem/pkg/errno"
)

// Ceilings for the safe memory functions, from safeclib's safe_lib_limits.h.
// RSIZE_MAX_MEM is in bytes; the width-suffixed variants are in elements.
const (
	RSIZE_MAX_MEM   = 256 << 20
	RSIZE_MAX_MEM32 = RSIZE_MAX_MEM / 4
)

// Memcmp32 is a conversion of safeclib's memcmp32_s function for Go slices.
//
// It compares dest and src element by element until they differ and writes
// the difference of the first unequal pair to *diff, or 0 if no inequality
// is found. dmax and smax are the caller-declared capacities of dest and
// src, in uint32 elements; at most min(dmax, smax) elements are inspected,
// and since smax may not exceed dmax, elements of dest past smax never
// contribute to the result.
//
// Runtime constraints: dest, src and diff shall not be nil; dmax and smax
// shall not be zero; dmax shall not exceed RSIZE_MAX_MEM32; smax shall not
// exceed dmax. A violated constraint invokes the constraint handler and
// returns ESNULLP, ESZEROL or ESLEMAX without comparing anything; when diff
// is non-nil, *diff is set to -1 before anything else so a caller who only
// inspects the written value still sees a non-equal sentinel.
func Memcmp32(dest []uint32, dmax uint, src []uint32, smax uint, diff *int64) errno.Errno {
	// must be able to return the diff
	if diff == nil {
		constraint.Handle("memcmp32_s: diff is null", nil, errno.ESNULLP)
		return errno.ESNULLP
	}
	*diff = -1 // default diff

	if dest == nil {
		constraint.Handle("memcmp32_s: dest is null", nil, errno.ESNULLP)
		return errno.ESNULLP
	}
	if src == nil {
		constraint.Handle("memcmp32_s: src is null", nil, errno.ESNULLP)
		return errno.ESNULLP
	}
	if dmax == 0 {
		constraint.Handle("memcmp32_s: dmax is 0", nil, errno.ESZEROL)
		return errno.ESZEROL
	}
	if dmax > RSIZE_MAX_MEM32 {
		constraint.Handle("memcmp32_s: dmax exceeds max", nil, errno.ESLEMAX)
		return errno.ESLEMAX
	}
	if smax == 0 {
		constraint.Handle("memcmp32_s: smax is 0", nil, errno.ESZEROL)
		return errno.ESZEROL
	}
	if smax > dmax {
		constraint.Handle("memcmp32_s: smax exceeds dmax", nil, errno.ESLEMAX)
		return errno.ESLEMAX
	}

	// no need to compare the same memory
	if len(dest) > 0 && len(src) > 0 && &dest[0] == &src[0] {
		*diff = 0
		return errno.EOK
	}

	// The slices carry their real bounds; a declared capacity past them must
	// not cause a read past the end.
	n := min(dmax, smax, uint(len(dest)), uint(len(src)))

	*diff = 0
	for i := uint(0); i < n; i++ {
		if dest[i] != src[i] {
			// widened so large operand differences cannot wrap the sign
			*diff = int64(dest[i]) - int64(src[i])
			break
		}
	}

	return errno.EOK
}
