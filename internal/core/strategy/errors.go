package strategy

import "errors"

var ErrUnknownProfile = errors.New("unknown strategy profile")
