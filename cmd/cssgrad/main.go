// Command cssgrad renders a CSS linear-gradient to an image file.
//
//	cssgrad -W 64 -H 256 -o bg.png "linear-gradient(to bottom, #3498db, transparent)"
//	cssgrad --file stripes.txt --watch -o stripes.png
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
