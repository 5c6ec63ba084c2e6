/*
 * mexpr
 *
 * Copyright 2026 Gradely. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gradely/mexpr/config"
	"github.com/gradely/mexpr/parser"
	"github.com/gradely/mexpr/pool"
	"github.com/gradely/mexpr/render"
)

func main() {
	flag.CommandLine.Init(os.Args[0], flag.ContinueOnError)

	dumpFlag := flag.Bool("dump", false, "print a structural dump of the parsed expression")
	idFlag := flag.Bool("id", false, "print the interned node id instead of the rendered form")

	flag.Usage = func() {
		fmt.Println(fmt.Sprintf("Usage of %s [flags] [expression]", os.Args[0]))
		fmt.Println()
		fmt.Println(fmt.Sprintf("mexpr %v - LaTeX expression parser, pool and renderer", config.ProductVersion))
		fmt.Println()
		fmt.Println("Reads a LaTeX expression from the first non-flag argument, or from stdin")
		fmt.Println("if no argument is given; parses it, interns it into the structural pool,")
		fmt.Println("and prints the rendered form (default), a pool dump (-dump), or the")
		fmt.Println("interned node id (-id).")
		fmt.Println()
	}

	if err := flag.CommandLine.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			return
		}
		fmt.Println(fmt.Sprintf("Error: %v", err))
		os.Exit(1)
	}

	src, err := readExpression(flag.Args())
	if err != nil {
		fmt.Println(fmt.Sprintf("Error: %v", err))
		os.Exit(1)
	}

	if err := run(src, *dumpFlag, *idFlag); err != nil {
		fmt.Println(fmt.Sprintf("Error: %v", err))
		os.Exit(1)
	}
}

func readExpression(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	data, err := io.ReadAll(bufio.NewReader(os.Stdin))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func run(src string, dump, showID bool) error {
	n, err := parser.Parse(src, nil, config.Default())
	if err != nil {
		return err
	}

	p := pool.Default()
	id := p.Intern(n)

	switch {
	case dump:
		fmt.Print(p.Dump(n))
	case showID:
		fmt.Println(id)
	default:
		out, err := render.Render(n)
		if err != nil {
			return err
		}
		fmt.Println(out)
	}

	return nil
}
