package domain

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrNoRows is returned when a summary file has a header but no data rows.
var ErrNoRows = errors.New("summary contains no policy rows")

// ErrNotFinite marks a summary cell that parsed as NaN or an infinity.
var ErrNotFinite = errors.New("value is not a finite number")

// MissingInputError reports that the summary file produced by the simulation does not exist yet.
type MissingInputError struct {
	Path string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("%s not found. Run the simulation first to produce the policy summary", e.Path)
}

// Unwrap lets callers match the error with errors.Is(err, fs.ErrNotExist).
func (e *MissingInputError) Unwrap() error {
	return fs.ErrNotExist
}

// MalformedFieldError reports a summary cell that could not be parsed as a finite number.
// Row is 1-based and counts data rows only (the header is not row 1).
type MalformedFieldError struct {
	Row    int
	Policy string
	Column string
	Value  string
	Err    error
}

func (e *MalformedFieldError) Error() string {
	kind := "non-numeric"
	if errors.Is(e.Err, ErrNotFinite) {
		kind = "non-finite"
	}
	if e.Policy != "" {
		return fmt.Sprintf("row %d (policy %s): column %q has %s value %q", e.Row, e.Policy, e.Column, kind, e.Value)
	}
	return fmt.Sprintf("row %d: column %q has %s value %q", e.Row, e.Column, kind, e.Value)
}

func (e *MalformedFieldError) Unwrap() error {
	return e.Err
}

// MissingColumnError reports a required column absent from the summary header.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("summary is missing required column %q", e.Column)
}

// UnknownPolicyError is returned by a LabelMapper in UnknownPolicyError mode.
type UnknownPolicyError struct {
	ID string
}

func (e *UnknownPolicyError) Error() string {
	return fmt.Sprintf("unrecognized policy identifier %q", e.ID)
}

// DuplicatePolicyError reports a policy identifier that appears on more than one row.
type DuplicatePolicyError struct {
	Policy string
	Rows   [2]int
}

func (e *DuplicatePolicyError) Error() string {
	return fmt.Sprintf("policy %q appears on rows %d and %d", e.Policy, e.Rows[0], e.Rows[1])
}

// ChartSpecError reports a ChartSpec that violates the renderer's preconditions.
type ChartSpecError struct {
	Title  string
	Reason string
}

func (e *ChartSpecError) Error() string {
	if e.Title == "" {
		return "invalid chart: " + e.Reason
	}
	return fmt.Sprintf("invalid chart %q: %s", e.Title, e.Reason)
}
