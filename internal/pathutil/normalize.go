// Package pathutil provides small path helpers shared by the CLI.
package pathutil

// NormalizeRoot strips trailing slashes from a user-supplied root path.
// "foo///" becomes "foo"; a bare "/" is left alone.
func NormalizeRoot(path string) string {
	for len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}
	return path
}

// Basename returns the final component of a slash-separated path.
// Unlike filepath.Base it does not special-case trailing slashes,
// because roots are normalized before any traversal starts.
func Basename(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[i+1:]
		}
	}
	return path
}
