//go:build maybe_bare

package option

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Without combinators an Option is consumed through Get and Match only.
func TestBareOption(t *testing.T) {
	req := require.New(t)

	orDefault := func(o Option[int]) int {
		if v, ok := o.Get(); ok {
			return v
		}
		return -1
	}

	req.Equal(5, orDefault(Some(5)))
	req.Equal(-1, orDefault(None[int]()))

	n := Match(Some("abc"), func(s string) int { return len(s) }, func() int { return 0 })
	req.Equal(3, n)
}
