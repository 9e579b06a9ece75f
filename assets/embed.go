// Package assets embeds the default dictionary and the SQL migrations
// applied to a fresh word database.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed dictionary.txt sql/*.sql
var FS embed.FS

// Dictionary opens the embedded default word list.
func Dictionary() (fs.File, error) {
	return FS.Open("dictionary.txt")
}

// Migrations returns the embedded sql/ directory.
func Migrations() fs.FS {
	sub, err := fs.Sub(FS, "sql")
	if err != nil {
		// sql/ is embedded at build time; Sub only fails on an invalid path.
		panic(err)
	}
	return sub
}
