package material

import (
	"embed"
	"io/fs"
)

//go:embed data
var builtinData embed.FS

// Builtin returns the embedded parameter table rooted like a data directory.
func Builtin() fs.FS {
	sub, err := fs.Sub(builtinData, "data")
	if err != nil {
		// The embed pattern guarantees the directory exists.
		panic(err)
	}

	return sub
}
