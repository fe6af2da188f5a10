// Package blob describes objects held in blob storage.
package blob

import (
	"io"
	"strings"
)

// PathPrefix is the URL prefix under which stored objects are served.
const PathPrefix = "/objects/"

// Object is an open stored object. Callers must close Body.
type Object struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.ReadCloser
}

// Upload is an issued direct-upload target.
type Upload struct {
	// URL accepts a single PUT of the object bytes until it expires.
	URL string
	// Path is where the object is served once uploaded.
	Path string
}

// PathFor returns the serving path of an object name.
func PathFor(name string) string {
	return PathPrefix + strings.TrimLeft(name, "/")
}

// NameFromPath extracts the object name from a serving path. ok is false
// when the path is outside PathPrefix, empty, or tries to climb out.
func NameFromPath(path string) (name string, ok bool) {
	name, found := strings.CutPrefix(path, PathPrefix)
	if !found || name == "" {
		return "", false
	}
	for _, seg := range strings.Split(name, "/") {
		if seg == "" || seg == "." || seg == ".." {
			return "", false
		}
	}
	return name, true
}
