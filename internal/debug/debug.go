// Package debug gates optional trace output behind NODEX_DEBUG_*
// environment variables so the library itself stays log-free.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Dispatch bool
	Connect  bool
	Scene    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Dispatch = boolEnv("NODEX_DEBUG_DISPATCH")
	d.Connect = boolEnv("NODEX_DEBUG_CONNECT")
	d.Scene = boolEnv("NODEX_DEBUG_SCENE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Dispatch() bool {
	return d.Dispatch
}

func Connect() bool {
	return d.Connect
}

func Scene() bool {
	return d.Scene
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
