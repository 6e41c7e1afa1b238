package catalog

import (
	"embed"
	"io/fs"

	"github.com/dmitrymomot/fakegen/pkg/wordlist"
)

//go:embed data
var data embed.FS

func sub(dir string) fs.FS {
	fsys, err := fs.Sub(data, dir)
	if err != nil {
		panic(err)
	}
	return fsys
}

// Definitions returns the embedded catalog definitions: common.yaml plus one
// file per locale.
func Definitions() fs.FS { return sub("data/catalogs") }

// Words returns the embedded word lists, one ".txt" file per list.
func Words() fs.FS { return sub("data/words") }

// EmbeddedLoader loads the embedded word lists by name, e.g. "en_us/first_names".
func EmbeddedLoader() wordlist.Loader {
	return wordlist.NewFSLoader(Words(), wordlist.WithExtension(".txt"))
}
