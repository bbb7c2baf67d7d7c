package service

import "errors"

var ErrMissingSession = errors.New("session id is required")
