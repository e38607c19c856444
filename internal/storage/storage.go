package storage

import "errors"

var (
	ErrAboutNotFound   = errors.New("about info not found")
	ErrHeroNotFound    = errors.New("hero settings not found")
	ErrSectionNotFound = errors.New("section not found")
	ErrItemNotFound    = errors.New("section item not found")
	ErrPostNotFound    = errors.New("news post not found")
)
