package app

import "errors"

var ErrUnknownResource = errors.New("unknown resource")
