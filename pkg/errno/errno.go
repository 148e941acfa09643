package errno

import "strconv"

// Runtime-constraint status codes, matching safeclib's safe_errno.h. EOK is
// the zero value; every other value classifies a detected precondition
// failure rather than a content mismatch.
type Errno int

const (
	EOK     Errno = 0   // successful operation
	ESNULLP Errno = 400 // null pointer
	ESZEROL Errno = 401 // length is zero
	ESLEMAX Errno = 403 // length exceeds max limit
)

func (e Errno) Error() string {
	switch e {
	case EOK:
		return "ok"
	case ESNULLP:
		return "null pointer"
	case ESZEROL:
		return "length is zero"
	case ESLEMAX:
		return "length exceeds max limit"
	default:
		return "errno " + strconv.Itoa(int(e))
	}
}

// Ok reports whether e is the successful status.
func (e Errno) Ok() bool {
	return e == EOK
}
