/*
 * mexpr
 *
 * Copyright 2026 Gradely. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package model

import (
	"fmt"
	"reflect"
	"sync"
)

/*
Plugin wraps a Go function value so it can be invoked dynamically by name
from a Node, with reflective argument coercion, panic recovery, and result
unwrapping.
*/
type Plugin struct {
	funcval reflect.Value
	doc     string
}

var (
	pluginsLock sync.RWMutex
	plugins     = make(map[string]*Plugin)
)

/*
RegisterPlugin registers fn under name. fn must be a function value; its
shape is validated lazily on first Call rather than at registration.
*/
func RegisterPlugin(name string, fn interface{}, doc string) {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		panic(fmt.Sprintf("mexpr: plugin %q is not a function", name))
	}

	pluginsLock.Lock()
	defer pluginsLock.Unlock()
	plugins[name] = &Plugin{funcval: v, doc: doc}
}

/*
LookupPlugin returns the plugin registered under name, if any.
*/
func LookupPlugin(name string) (*Plugin, bool) {
	pluginsLock.RLock()
	defer pluginsLock.RUnlock()
	p, ok := plugins[name]
	return p, ok
}

/*
DocString returns the docstring a plugin was registered with.
*/
func (p *Plugin) DocString() string {
	return p.doc
}

/*
Call invokes the named plugin. The receiver node n is passed as the first
argument unless the caller already supplied a *Node as the first element of
args, in which case args are forwarded verbatim: a two-argument equivalence
predicate is called as a.Call("eq", a, b). A call a.Call("eq", b) forwards
b alone and does not add the receiver.
*/
func (n *Node) Call(name string, args ...interface{}) (ret interface{}, err error) {
	p, ok := LookupPlugin(name)
	if !ok {
		return nil, fmt.Errorf("mexpr: unknown plugin %q", name)
	}

	callArgs := args
	if len(args) == 0 {
		callArgs = []interface{}{n}
	} else if _, isNode := args[0].(*Node); !isNode {
		callArgs = append([]interface{}{n}, args...)
	}

	return p.run(callArgs)
}

func (p *Plugin) run(args []interface{}) (ret interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("mexpr: plugin panic: %v", r)
		}
	}()

	funcType := p.funcval.Type()

	fargs := make([]reflect.Value, 0, len(args))
	for i, arg := range args {
		if i == funcType.NumIn() {
			return nil, fmt.Errorf("too many parameters - got %v expected %v", len(args), funcType.NumIn())
		}

		expectedType := funcType.In(i)

		if f, ok := arg.(float64); ok {
			switch expectedType.Kind() {
			case reflect.Int:
				arg = int(f)
			case reflect.Int8:
				arg = int8(f)
			case reflect.Int16:
				arg = int16(f)
			case reflect.Int32:
				arg = int32(f)
			case reflect.Int64:
				arg = int64(f)
			case reflect.Float32:
				arg = float32(f)
			}
		}

		givenType := reflect.TypeOf(arg)
		if givenType != expectedType &&
			!(expectedType.Kind() == reflect.Interface && givenType != nil && givenType.Implements(expectedType)) {
			return nil, fmt.Errorf("parameter %v should be of type %v but is of type %v", i+1, expectedType, givenType)
		}

		fargs = append(fargs, reflect.ValueOf(arg))
	}

	vals := p.funcval.Call(fargs)

	results := make([]interface{}, 0, len(vals))
	for i, v := range vals {
		res := v.Interface()

		if i == len(vals)-1 && funcType.Out(i) == reflect.TypeOf((*error)(nil)).Elem() {
			if res != nil {
				err = res.(error)
			}
			break
		}

		results = append(results, res)
	}

	ret = results
	if len(results) == 1 {
		ret = results[0]
	}

	return ret, err
}
