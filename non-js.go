//go:build !(js && wasm)

package main

import (
	"github.com/pkg/profile"
)

var Debug = false

func ProfileStart() func() {
	return profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop
}
