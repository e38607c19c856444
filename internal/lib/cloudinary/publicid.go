package cloudinary

import "strings"

// PublicIDFromURL extracts the public ID from a Cloudinary delivery URL, e.g.
// https://res.cloudinary.com/demo/image/upload/v12345/folder/pic.jpg -> "folder/pic".
// The optional version segment right after "upload" is dropped, the folder
// path is kept and the file extension is stripped. Returns "" when the URL
// does not contain an upload segment.
func PublicIDFromURL(url string) string {
	if url == "" {
		return ""
	}

	_, after, found := strings.Cut(url, "/upload/")
	if !found {
		return ""
	}

	parts := strings.Split(after, "/")
	if isVersionSegment(parts[0]) {
		parts = parts[1:]
	}

	publicID := strings.Join(parts, "/")

	if i := strings.LastIndex(publicID, "."); i > strings.LastIndex(publicID, "/") && i < len(publicID)-1 {
		publicID = publicID[:i]
	}

	return publicID
}

func isVersionSegment(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}
	for _, c := range s[1:] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
