package models

import "errors"

var (
	ErrEmptyBatch    = errors.New("empty batch")
	ErrInvalidConfig = errors.New("invalid config")
)
