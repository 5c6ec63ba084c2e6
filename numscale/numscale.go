/*
 * mexpr
 *
 * Copyright 2026 Gradely. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

// Package numscale adapts a numeric lexeme to a configured number of
// decimal places using arbitrary-precision decimal arithmetic. The decimal
// library performs the actual rounding; this package only canonicalizes
// the lexeme in and out of the grammar the pool expects.
package numscale

import (
	"strings"

	"github.com/shopspring/decimal"
)

/*
Scale rounds the numeric literal lexeme half-up to places fractional
digits and returns its canonical string form: no thousands separators, a
single leading '-' for negatives, no redundant trailing zeros beyond
places. A negative places leaves the lexeme unscaled.
*/
func Scale(lexeme string, places int) (string, error) {
	clean := strings.ReplaceAll(lexeme, ",", "")

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return "", err
	}

	if places < 0 {
		return d.String(), nil
	}

	return d.Round(int32(places)).String(), nil
}
