// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mss

import (
	pkgerrors "github.com/pkg/errors"
)

// Sentinel error kinds the core recognises. Callers match them with
// errors.Is; every returned error wraps one of these with call-site context
// using github.com/pkg/errors, which keeps the wrapped chain compatible with
// the standard errors package.
var (
	// ErrUnknownVariable is returned when an RPN or fault-tree expression
	// references an undeclared identifier.
	ErrUnknownVariable = pkgerrors.New("unknown variable")

	// ErrArityMismatch is returned when a children vector does not match the
	// arity of its header.
	ErrArityMismatch = pkgerrors.New("arity mismatch")

	// ErrLevelViolation is returned when a would-be non-terminal has a child
	// whose level is not strictly higher than its own.
	ErrLevelViolation = pkgerrors.New("level violation")

	// ErrKindMismatch is returned when a Boolean operator is applied to an
	// integer-valued node, or vice versa, in the combined diagram.
	ErrKindMismatch = pkgerrors.New("kind mismatch")

	// ErrInvalidExpression is returned on RPN stack underflow/overflow or an
	// unrecognised token.
	ErrInvalidExpression = pkgerrors.New("invalid expression")

	// ErrDomain is returned for domain errors such as an interval with
	// lo > hi.
	ErrDomain = pkgerrors.New("domain error")

	// ErrInvalidNode is returned when an operation meets a node it cannot
	// handle, such as asking a terminal for a child or evaluating the
	// probability of Undet.
	ErrInvalidNode = pkgerrors.New("invalid node")
)

func wrapf(sentinel error, format string, args ...interface{}) error {
	return pkgerrors.Wrapf(sentinel, format, args...)
}
