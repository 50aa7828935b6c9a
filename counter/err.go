package counter

import (
	"errors"

	"github.com/ezrec/tapevm/translate"
)

var f = translate.From

var (
	ErrWidthInvalid = errors.New(f("counter width invalid"))
)
