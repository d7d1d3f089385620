package dataerror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileNotFoundError(t *testing.T) {
	err := &FileNotFoundError{FilePath: "travel_data.csv"}
	assert.Contains(t, err.Error(), "travel_data.csv")
}

func TestLoadErrorUnwrap(t *testing.T) {
	cause := errors.New("bad header")
	err := &LoadError{FilePath: "travel_data.csv", Stage: "header parsing", Err: cause}

	assert.Contains(t, err.Error(), "travel_data.csv")
	assert.Contains(t, err.Error(), "header parsing")
	assert.ErrorIs(t, err, cause)
}

func TestFieldParseErrorUnwrap(t *testing.T) {
	cause := errors.New("not a number")
	err := &FieldParseError{Field: "total price of stay", Value: "abc", Err: cause}

	assert.Contains(t, err.Error(), "total price of stay")
	assert.Contains(t, err.Error(), "abc")
	assert.ErrorIs(t, err, cause)
}

func TestMissingColumnError(t *testing.T) {
	err := &MissingColumnError{Operation: "country summary", Column: "nights"}
	assert.Contains(t, err.Error(), "country summary")
	assert.Contains(t, err.Error(), "nights")

	var target *MissingColumnError
	assert.ErrorAs(t, error(err), &target)
}
