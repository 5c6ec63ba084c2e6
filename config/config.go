/*
 * mexpr
 *
 * Copyright 2026 Gradely. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

// Package config holds the parser's configuration options as a typed
// struct, since this module's options are a small, fixed, compile-time-known
// set rather than a dynamically extended configuration map.
package config

/*
ProductVersion is the current version of this module.
*/
const ProductVersion = "1.0.0"

/*
Options controls parser and lexer behavior.
*/
type Options struct {
	// DecimalPlaces is the number of fractional digits a numeric literal is
	// rounded to by the numscale package. Negative disables scaling.
	DecimalPlaces int

	// AllowThousandsSeparator permits commas inside numeric literals
	// (e.g. "1,234.5") and validates their placement.
	AllowThousandsSeparator bool

	// AllowInterval rewrites a parenthesized/bracketed pair such as
	// "(a,b)" to an INTERVAL node instead of a LIST node.
	AllowInterval bool

	// IgnoreText treats \text{...} blocks as whitespace instead of as an
	// identifier.
	IgnoreText bool

	// PermissiveMixedFractions allows a mixed-fraction leading term to be
	// an additive expression instead of a bare integer. Off by default,
	// since the same surface form is ambiguous with implicit multiplication.
	PermissiveMixedFractions bool
}

/*
Default returns the zero-value-safe default Options: no scaling, no
thousands separators, intervals and mixed-fraction permissiveness both
off, \text{} treated as an identifier.
*/
func Default() Options {
	return Options{
		DecimalPlaces:            -1,
		AllowThousandsSeparator:  false,
		AllowInterval:            false,
		IgnoreText:               false,
		PermissiveMixedFractions: false,
	}
}
