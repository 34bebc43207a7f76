//go:build js && wasm

package main

var Debug = false

func ProfileStart() func() {
	// profiles can not be written from the browser
	return func() {}
}
