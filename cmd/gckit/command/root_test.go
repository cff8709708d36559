package command

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gckit/gckit/internal/lib/cipher"
	"github.com/gckit/gckit/internal/lib/geometry"
)

func TestExitCode(t *testing.T) {
	decodeErr := &cipher.DecodeError{Token: "........", Position: 2}
	assert.Equal(t, 2, exitCode(decodeErr))
	assert.Equal(t, 2, exitCode(fmt.Errorf("decoding: %w", decodeErr)))

	degenerateErr := &geometry.DegenerateError{Op: "circumcenter", Reason: "points are collinear"}
	assert.Equal(t, 2, exitCode(degenerateErr))

	assert.Equal(t, 1, exitCode(errors.New("bad flag")))
	assert.Equal(t, 1, exitCode(cipher.ErrShiftRange))
}
