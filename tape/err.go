package tape

import (
	"errors"

	"github.com/ezrec/tapevm/translate"
)

var f = translate.From

var (
	ErrWidthInvalid = errors.New(f("tape width invalid"))
)
