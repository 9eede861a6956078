package grubconfigs

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package is a *StageError that
// matches exactly one of these with errors.Is.
var (
	ErrIO              = errors.New("I/O error")
	ErrEncoding        = errors.New("invalid UTF-8")
	ErrVendorNotFound  = errors.New("no EFI vendor directory found")
	ErrAmbiguousVendor = errors.New("more than one EFI vendor directory found")
)

// Stage names the installation step that failed.
type Stage string

const (
	StageOpenTarget    Stage = "opening target root"
	StageOpenBoot      Stage = "opening boot directory"
	StageOpenConfig    Stage = "opening config directory"
	StageReadPre       Stage = "reading pre-amble"
	StageCollect       Stage = "listing fragments"
	StageCopyFragment  Stage = "copying fragment"
	StageReadPost      Stage = "reading post-amble"
	StageWriteConfig   Stage = "writing grub config"
	StageOpenEFI       Stage = "opening EFI directory"
	StageLocateVendor  Stage = "locating EFI vendor directory"
	StageCopyEFIConfig Stage = "copying static EFI config"
	StageInspect       Stage = "inspecting installed files"
)

// StageError reports which step failed, on which path, and why.
type StageError struct {
	Stage Stage
	Path  string
	Kind  error
	Err   error
}

func (e *StageError) Error() string {
	cause := e.Err
	if cause == nil {
		cause = e.Kind
	}
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Stage, cause)
	}
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Path, cause)
}

func (e *StageError) Unwrap() []error {
	errs := []error{e.Kind}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func ioError(stage Stage, path string, err error) error {
	return &StageError{Stage: stage, Path: path, Kind: ErrIO, Err: err}
}

func encodingError(stage Stage, path string) error {
	return &StageError{Stage: stage, Path: path, Kind: ErrEncoding}
}
