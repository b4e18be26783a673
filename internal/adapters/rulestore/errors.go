package rulestore

import "errors"

// Sentinel kinds for rule store errors.
var (
	ErrLoadRules = errors.New("load rules failed")
)
