package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		ErrInvalidParameter,
		ErrDegenerateElement,
		ErrSingularSystem,
		ErrInvalidArgument,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			assert.NotErrorIs(t, a, b)
		}
	}
}
