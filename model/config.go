package model

import "errors"

var (
	ErrGeneratorNotFound = errors.New("generator not found in registry")
	ErrGeneration        = errors.New("error during mock generation")
)
