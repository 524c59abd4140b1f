//go:build !headless

package main

import "fmt"

func buildBackend(name string, width, height int) (Output, Pointer, Key, error) {
	switch name {
	case "auto", "ebiten":
		out, err := NewEbitenOutput(width, height)
		if err != nil {
			return nil, nil, nil, err
		}
		return out, NewEbitenPointer(), NewEbitenKey(), nil
	case "term":
		key, err := NewTermKey()
		if err != nil {
			return nil, nil, nil, err
		}
		return NewTermOutput(width, height), nil, key, nil
	default:
		return nil, nil, nil, fmt.Errorf("unknown backend %q", name)
	}
}
