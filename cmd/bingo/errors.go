package main

import "errors"

// Sentinel errors for CLI operations.
var (
	ErrInvalidFlags     = errors.New("invalid flags")
	ErrInvalidWordsFlag = errors.New("invalid --words value")
	ErrUnexpectedArgs   = errors.New("unexpected arguments")
	ErrWriteOutput      = errors.New("failed to write output")
	ErrNoBoardFiles     = errors.New("no board CSV files found")
	ErrConfigExists     = errors.New("config file already exists")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)
