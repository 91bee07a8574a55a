// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/microjson

package microjson

import "errors"

var (
	// ErrBufferTooSmall is returned when rendered text plus the terminator
	// byte does not fit into the destination buffer.
	ErrBufferTooSmall = errors.New("output buffer too small")
	// ErrMaxDepth is returned when document nesting exceeds Options.MaxDepth.
	ErrMaxDepth = errors.New("max nesting depth exceeded")
	// ErrInvalidValue is returned when a zero or malformed Value or Array is
	// reached during rendering.
	ErrInvalidValue = errors.New("invalid value")
)
