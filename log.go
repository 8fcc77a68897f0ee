package pathplot

import (
	"log"
	"os"
)

// Warning is the logger for problems which do not stop a render pass.
var Warning = log.New(os.Stderr, "[pathplot] ", log.Lshortfile)

var debug = false

func debugf(format string, args ...interface{}) {
	if !debug {
		return
	}
	Warning.Printf(format, args...)
}
