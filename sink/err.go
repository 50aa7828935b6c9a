package sink

import (
	"errors"

	"github.com/ezrec/tapevm/translate"
)

var f = translate.From

var (
	ErrBufferTooSmall = errors.New(f("buffer not large enough"))
)

// ErrCapacity is a ErrBufferTooSmall with the sizes involved.
type ErrCapacity struct {
	Need int // Bytes of output.
	Have int // Bytes of buffer.
}

func (err *ErrCapacity) Error() string {
	return f("need %d bytes, have %d: %v", err.Need, err.Have, ErrBufferTooSmall)
}

func (err *ErrCapacity) Unwrap() error {
	return ErrBufferTooSmall
}
