//go:build headless

package main

import "fmt"

func buildBackend(name string, width, height int) (Output, Pointer, Key, error) {
	if name != "auto" && name != "headless" {
		return nil, nil, nil, fmt.Errorf("backend %q unavailable in a headless build", name)
	}
	return NewHeadlessOutput(width, height), &HeadlessPointer{}, &HeadlessKey{}, nil
}
