// Command fluent checks and inspects component declaration files.
//
// Usage:
//
//	fluent check ui/*.fluent
//	fluent dump ui/settings.fluent --format json
//	fluent components
//	fluent describe Slider
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error: ")+err.Error())
		os.Exit(1)
	}
}
