package world

import "errors"

var ErrCarIndexOutOfRange = errors.New("car index out of range")
