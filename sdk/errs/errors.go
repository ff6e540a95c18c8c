// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

// Package errs holds the error types shared by the sdk services.
package errs

import (
	"errors"
	"fmt"
	"net"

	pkgerrors "github.com/pkg/errors"
)

var (
	_ error = (*ConfigError)(nil)
	_ error = (*ConfigNotFoundError)(nil)
	_ error = (*NotFoundError)(nil)
	_ error = (*UnsupportedTypeError)(nil)
	_ error = (*IOError)(nil)
	_ error = (*TransportError)(nil)
)

// ConfigError is returned when a configuration path was never established,
// or when an existing configuration file cannot be read or parsed.
type ConfigError struct {
	Msg string
	Err error
}

func (err *ConfigError) Error() string {
	if err.Err != nil {
		return fmt.Sprintf("config: %s: %v", err.Msg, err.Err)
	}
	return "config: " + err.Msg
}

func (err *ConfigError) Unwrap() error { return err.Err }

// ConfigNotFoundError is returned by the storage client when the credentials
// file cannot be found at the expected path.
type ConfigNotFoundError struct {
	Path string
	Err  error
}

func (err *ConfigNotFoundError) Error() string {
	return fmt.Sprintf("could not locate the config file at %s", err.Path)
}

func (err *ConfigNotFoundError) Unwrap() error { return err.Err }

// NotFoundError is returned when a local file or config path is absent.
type NotFoundError struct {
	Name     string
	Location string
	Path     string
	Err      error
}

func (err *NotFoundError) Error() string {
	return fmt.Sprintf("could not find specified %s at %s (full path: %s)", err.Name, displayLocation(err.Location), err.Path)
}

func (err *NotFoundError) Unwrap() error { return err.Err }

// UnsupportedTypeError is returned for file names outside the extension allow-list.
type UnsupportedTypeError struct {
	Name string
}

func (err *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("file type not supported: %q", err.Name)
}

// IOError wraps any other local I/O fault. The wrapped error carries the
// stack captured at the failure site.
type IOError struct {
	Op       string
	Name     string
	Location string
	Err      error
}

// NewIOError captures a stack trace around err.
func NewIOError(op, name, location string, err error) *IOError {
	return &IOError{Op: op, Name: name, Location: location, Err: pkgerrors.WithStack(err)}
}

func (err *IOError) Error() string {
	return fmt.Sprintf("an error has occurred while attempting to %s %s at %s: %v", err.Op, err.Name, displayLocation(err.Location), errors.Unwrap(err.Err))
}

func (err *IOError) Unwrap() error { return err.Err }

// Trace renders the underlying error with its stack.
func (err *IOError) Trace() string {
	return fmt.Sprintf("%+v", err.Err)
}

// TransportError covers everything between the client and a decoded 200
// response: network faults, timeouts, non-200 statuses and undecodable bodies.
type TransportError struct {
	Method     string
	URL        string
	StatusCode int // 0 when no response was received
	Message    string
	Err        error
}

func (err *TransportError) Error() string {
	switch {
	case err.StatusCode != 0 && err.Message != "":
		return fmt.Sprintf("%s %s: endpoint responded with status %d - %s", err.Method, err.URL, err.StatusCode, err.Message)
	case err.StatusCode != 0:
		return fmt.Sprintf("%s %s: endpoint responded with status %d", err.Method, err.URL, err.StatusCode)
	case err.Err != nil:
		return fmt.Sprintf("%s %s: %v", err.Method, err.URL, err.Err)
	default:
		return fmt.Sprintf("%s %s: %s", err.Method, err.URL, err.Message)
	}
}

func (err *TransportError) Unwrap() error { return err.Err }

// Timeout reports whether the request failed because it ran out of time.
func (err *TransportError) Timeout() bool {
	var ne net.Error
	return errors.As(err.Err, &ne) && ne.Timeout()
}

func displayLocation(location string) string {
	if location == "" {
		return "undefined"
	}
	return location
}

// IsConfigError checks whether err is, or wraps, a ConfigError.
func IsConfigError(err error) bool {
	var target *ConfigError
	return errors.As(err, &target)
}

// IsConfigNotFoundError checks whether err is, or wraps, a ConfigNotFoundError.
func IsConfigNotFoundError(err error) bool {
	var target *ConfigNotFoundError
	return errors.As(err, &target)
}

// IsNotFoundError checks whether err is, or wraps, a NotFoundError.
func IsNotFoundError(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsUnsupportedTypeError checks whether err is, or wraps, an UnsupportedTypeError.
func IsUnsupportedTypeError(err error) bool {
	var target *UnsupportedTypeError
	return errors.As(err, &target)
}

// IsIOError checks whether err is, or wraps, an IOError.
func IsIOError(err error) bool {
	var target *IOError
	return errors.As(err, &target)
}

// IsTransportError checks whether err is, or wraps, a TransportError.
func IsTransportError(err error) bool {
	var target *TransportError
	return errors.As(err, &target)
}
