package model

import "errors"

var (
	ErrPromotionNotFound = errors.New("promotion not found")
	ErrDuplicateCode     = errors.New("promotion code already exists")
)
