package vix

import "errors"

// Terminal errors. All three are fatal to a session; the session still
// restores the original terminal attributes before surfacing them.
var (
	// ErrAttrGet indicates the terminal's current attributes could not be read.
	ErrAttrGet = errors.New("get terminal attributes failed")

	// ErrAttrSet indicates new terminal attributes could not be applied.
	ErrAttrSet = errors.New("set terminal attributes failed")

	// ErrSizeUnavailable indicates the terminal did not report a usable size.
	ErrSizeUnavailable = errors.New("terminal size unavailable")
)

// Document errors.
var (
	// ErrOpenFailed indicates the document file could not be opened.
	ErrOpenFailed = errors.New("open document failed")

	// ErrEmptyDocument indicates no content was available before the first
	// newline or end-of-file, including unreadable files.
	ErrEmptyDocument = errors.New("document empty or unreadable")
)
