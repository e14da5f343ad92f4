package polodata_test

import (
	"errors"
	"testing"

	"github.com/mvesely/polodata"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := polodata.Errorf(polodata.EINVALID, "match id must be positive, got %d", -1)

	assert.Equal(t, polodata.EINVALID, polodata.ErrorCode(err))
	assert.Equal(t, "match id must be positive, got -1", polodata.ErrorMessage(err))
	assert.Empty(t, polodata.ErrorOp(err))
}

func TestWrapErrorf(t *testing.T) {
	t.Parallel()

	cause := errors.New("strconv.Atoi: parsing \"abc\": invalid syntax")
	err := polodata.WrapErrorf(polodata.EPARSE, polodata.OpScore, cause, "failed to extract score")

	assert.Equal(t, polodata.EPARSE, polodata.ErrorCode(err))
	assert.Equal(t, polodata.OpScore, polodata.ErrorOp(err))
	assert.Equal(t, "failed to extract score", polodata.ErrorMessage(err))
	assert.ErrorIs(t, err, cause)
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, polodata.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, polodata.EINTERNAL, polodata.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, polodata.ErrorMessage(nil))
}

func TestErrNotPlayed(t *testing.T) {
	t.Parallel()

	assert.Equal(t, polodata.ENOTPLAYED, polodata.ErrorCode(polodata.ErrNotPlayed))
	assert.True(t, errors.Is(polodata.ErrNotPlayed, polodata.ErrNotPlayed))
}
