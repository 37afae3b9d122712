package domain

import "errors"

var ErrInvalidArgument = errors.New("domain: invalid argument")
