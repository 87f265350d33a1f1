package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("bad input")))
	assert.Equal(t, KindNotFound, KindOf(NotFound("missing")))
	assert.Equal(t, KindConflict, KindOf(Conflict("dup")))
	assert.Equal(t, KindStorage, KindOf(Storage("db", errors.New("down"))))

	// foreign errors default to storage
	assert.Equal(t, KindStorage, KindOf(errors.New("anything")))

	// kinds survive wrapping
	wrapped := fmt.Errorf("handler: %w", Conflict("dup"))
	assert.True(t, IsConflict(wrapped))
}

func TestErrorStringAndUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := Storage("failed to load slots", cause)
	assert.Contains(t, err.Error(), "failed to load slots")
	assert.Contains(t, err.Error(), "connection reset")
	assert.ErrorIs(t, err, cause)

	assert.Equal(t, "missing", NotFound("missing").Error())
}
