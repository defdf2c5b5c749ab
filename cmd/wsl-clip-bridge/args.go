package main

import "strings"

// Args is the xclip-compatible invocation surface.
type Args struct {
	Selection string // accepted and ignored, xclip compatibility
	MIME      string
	Output    bool
	InputFile string
}

// parseArgs scans argv the way xclip callers expect: flags are
// order-independent, -i takes an optional path, and anything
// unrecognized is silently ignored so existing xclip invocations keep
// working.
func parseArgs(argv []string) Args {
	args := Args{Selection: "clipboard"}

	for i := 0; i < len(argv); i++ {
		switch argv[i] {
		case "-selection":
			if i+1 < len(argv) {
				i++
				args.Selection = argv[i]
			}
		case "-t":
			if i+1 < len(argv) {
				i++
				args.MIME = argv[i]
			}
		case "-o":
			args.Output = true
		case "-i":
			// optional filename after -i if the next token isn't a flag
			if i+1 < len(argv) && !strings.HasPrefix(argv[i+1], "-") {
				i++
				args.InputFile = argv[i]
			}
		}
	}

	return args
}
