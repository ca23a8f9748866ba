package model

import "errors"

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrDuplicateSlug     = errors.New("product slug already exists")
	ErrInsufficientStock = errors.New("insufficient stock")
)
