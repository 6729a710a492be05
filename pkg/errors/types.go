package errors

import (
	"fmt"
)

// MissingFieldError represents a missing required field.
type MissingFieldError struct {
	Field string
}

func (err MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", err.Field)
}

// FileNotFound represents when we were unable to access a file
// because the path didn't exist.
type FileNotFound struct {
	Path string
}

func (err FileNotFound) Error() string {
	return fmt.Sprintf("%q does not exist", err.Path)
}

// CreateFileError is returned when a file couldn't be created or
// overwritten.
type CreateFileError struct {
	Path string
	Err  error
}

func (err CreateFileError) Error() string {
	return fmt.Sprintf("create file %q: %s", err.Path, err.Err)
}

func (err CreateFileError) Unwrap() error {
	return err.Err
}

// CreateDirectoryError is returned when a single directory level couldn't
// be created.
type CreateDirectoryError struct {
	Path string
	Err  error
}

func (err CreateDirectoryError) Error() string {
	return fmt.Sprintf("create directory %q: %s", err.Path, err.Err)
}

func (err CreateDirectoryError) Unwrap() error {
	return err.Err
}

// ReadFileError is returned when a file couldn't be read. It is distinct
// from DeserializeError, which means the file was read but its contents
// were invalid.
type ReadFileError struct {
	Path string
	Err  error
}

func (err ReadFileError) Error() string {
	return fmt.Sprintf("read file %q: %s", err.Path, err.Err)
}

func (err ReadFileError) Unwrap() error {
	return err.Err
}

// ReadDirectoryError is returned when a directory couldn't be listed.
type ReadDirectoryError struct {
	Path string
	Err  error
}

func (err ReadDirectoryError) Error() string {
	return fmt.Sprintf("read directory %q: %s", err.Path, err.Err)
}

func (err ReadDirectoryError) Unwrap() error {
	return err.Err
}

// DirectoryAlreadyExistsError is returned when a project would be created
// on top of an existing path.
type DirectoryAlreadyExistsError struct {
	Path string
}

func (err DirectoryAlreadyExistsError) Error() string {
	return fmt.Sprintf("directory %q already exists", err.Path)
}

func (err DirectoryAlreadyExistsError) FriendlyMessage() string {
	return fmt.Sprintf("%q already exists.\n"+
		"Pick a directory that doesn't exist yet, and fumosync will create it.", err.Path)
}

// ProjectDidNotInitializeError is returned by pull when the local skeleton
// couldn't be created, before anything was fetched.
type ProjectDidNotInitializeError struct {
	Err error
}

func (err ProjectDidNotInitializeError) Error() string {
	return fmt.Sprintf("project did not initialize: %s", err.Err)
}

func (err ProjectDidNotInitializeError) Unwrap() error {
	return err.Err
}

// DeserializeError is returned when a file was read but couldn't be parsed.
type DeserializeError struct {
	Path string
	Err  error
}

func (err DeserializeError) Error() string {
	return fmt.Sprintf("deserialize %q: %s", err.Path, err.Err)
}

func (err DeserializeError) Unwrap() error {
	return err.Err
}

// SerializeError is returned when a value couldn't be encoded.
type SerializeError struct {
	Err error
}

func (err SerializeError) Error() string {
	return fmt.Sprintf("serialize: %s", err.Err)
}

func (err SerializeError) Unwrap() error {
	return err.Err
}
