package model

import "errors"

var (
	ErrHolidayNotFound = errors.New("holiday not found")
	ErrSlotNotFound    = errors.New("delivery slot not found")
	ErrDateNotBookable = errors.New("date not available for delivery")
	ErrSlotNotBookable = errors.New("slot not available for delivery")
)
