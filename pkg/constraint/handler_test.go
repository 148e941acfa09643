package constraint_test

import (
	"testing"

	"github.com/daanv2/go-safemem/pkg/constraint"
	"github.com/daanv2/go-safemem/pkg/errno"
	"github.com/stretchr/testify/require"
)

func TestSetHandler(t *testing.T) {
	var calls int
	record := func(msg string, ptr any, err error) { calls++ }

	prev := constraint.SetHandler(record)
	t.Cleanup(func() { constraint.SetHandler(prev) })

	constraint.Handle("something went wrong", nil, errno.ESZEROL)
	require.Equal(t, 1, calls)

	// swapping returns the handler that was installed
	got := constraint.SetHandler(constraint.Ignore)
	require.NotNil(t, got)
	got("unrouted", nil, errno.ESNULLP)
	require.Equal(t, 2, calls)

	constraint.Handle("dropped", nil, errno.ESNULLP)
	require.Equal(t, 2, calls)
}

func TestHandleArguments(t *testing.T) {
	type call struct {
		msg string
		ptr any
		err error
	}
	var got []call

	prev := constraint.SetHandler(func(msg string, ptr any, err error) {
		got = append(got, call{msg, ptr, err})
	})
	t.Cleanup(func() { constraint.SetHandler(prev) })

	ctx := &struct{}{}
	constraint.Handle("memcmp32_s: dmax is 0", ctx, errno.ESZEROL)

	require.Len(t, got, 1)
	require.Equal(t, "memcmp32_s: dmax is 0", got[0].msg)
	require.Same(t, ctx, got[0].ptr)
	require.Equal(t, errno.ESZEROL, got[0].err)
}

func TestAbortPanics(t *testing.T) {
	require.Panics(t, func() {
		constraint.Abort("memcmp32_s: dest is null", nil, errno.ESNULLP)
	})
}

func TestIgnore(t *testing.T) {
	require.NotPanics(t, func() {
		constraint.Ignore("memcmp32_s: dest is null", nil, errno.ESNULLP)
	})
}
