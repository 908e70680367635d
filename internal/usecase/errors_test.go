package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoverProcessing(t *testing.T) {
	t.Parallel()

	run := func() (err error) {
		defer recoverProcessing("explode", &err)
		var rows []int
		_ = rows[3]
		return nil
	}

	err := run()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDataProcessing))

	var dpe *DataProcessingError
	require.True(t, errors.As(err, &dpe))
	assert.Equal(t, "explode", dpe.Op)
}

func TestNotFoundWithHintCapsAndCopies(t *testing.T) {
	t.Parallel()

	hint := []string{"a", "b", "c"}
	err := notFoundWithHint(resourcePlayer, "x", HintDidYouMean, hint, 2)
	assert.Equal(t, []string{"a", "b"}, err.Hint)

	hint[0] = "z"
	assert.Equal(t, "a", err.Hint[0])
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "Player not found with identifier: x", err.Error())
}

func TestProcessingErrorWrapsCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("disk gone")
	err := processingError("list rows", cause)
	assert.True(t, errors.Is(err, ErrDataProcessing))
	assert.True(t, errors.Is(err, cause))
}
