/*
 * mexpr
 *
 * Copyright 2026 Gradely. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

// Package mexpr is the top-level facade tying together the lexer, parser,
// structural pool, and renderer. These factory entry points live in a root
// package that depends on both model and parser, since model must not
// import parser (parser already imports model for the Node/Op types it
// builds - putting FromString on model would create an import cycle). See
// DESIGN.md.
package mexpr

import (
	"github.com/gradely/mexpr/config"
	"github.com/gradely/mexpr/env"
	"github.com/gradely/mexpr/model"
	"github.com/gradely/mexpr/parser"
	"github.com/gradely/mexpr/pool"
	"github.com/gradely/mexpr/render"
)

/*
FromString parses src into a Node using e for chemistry/unit symbol
resolution and opts for scaling/grammar options.
*/
func FromString(src string, e *env.Stack, opts config.Options) (*model.Node, error) {
	return parser.Parse(src, e, opts)
}

/*
FromRecord reconstructs a freestanding tree rooted at id from p.
*/
func FromRecord(p *pool.Pool, id int) *model.Node {
	return model.FromRecord(p, id)
}

/*
Render converts n back to its LaTeX surface form.
*/
func Render(n *model.Node) (string, error) {
	return render.Render(n)
}
