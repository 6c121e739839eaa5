// Copyright 2019 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hname implements the arithmetic of dot-separated hierarchical
// names used to qualify declarations for scope-aware lookup.
//
package hname

import "strings"

// Join qualifies name with the given scope path.
//
func Join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

// TrimLast removes the last component of a dotted path. It returns the
// shortened path and true, or "" and false if there is no component
// left to trim.
//
func TrimLast(path string) (string, bool) {
	i := strings.LastIndexByte(path, '.')
	if i < 0 {
		return "", false
	}
	return path[:i], true
}

// Last returns the last component of a dotted path.
//
func Last(path string) string {
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		return path[i+1:]
	}
	return path
}
