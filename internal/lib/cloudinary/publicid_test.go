package cloudinary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicIDFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "versioned url with extension",
			url:  "https://res.cloudinary.com/demo/image/upload/v1712345678/sample.jpg",
			want: "sample",
		},
		{
			name: "versioned url with folder",
			url:  "https://res.cloudinary.com/demo/image/upload/v1712345678/portfolio/covers/sample.png",
			want: "portfolio/covers/sample",
		},
		{
			name: "no version segment",
			url:  "https://res.cloudinary.com/demo/image/upload/folder/sample.webp",
			want: "folder/sample",
		},
		{
			name: "no extension",
			url:  "https://res.cloudinary.com/demo/image/upload/v123/folder/sample",
			want: "folder/sample",
		},
		{
			name: "dot in folder name only strips the file extension",
			url:  "https://res.cloudinary.com/demo/image/upload/v123/folder.v2/sample.jpg",
			want: "folder.v2/sample",
		},
		{
			name: "no upload segment",
			url:  "https://example.com/static/sample.jpg",
			want: "",
		},
		{
			name: "empty url",
			url:  "",
			want: "",
		},
		{
			name: "segment starting with v but not a version",
			url:  "https://res.cloudinary.com/demo/image/upload/vacation/sample.jpg",
			want: "vacation/sample",
		},
		{
			name: "trailing dot is kept",
			url:  "https://res.cloudinary.com/demo/image/upload/v123/sample.",
			want: "sample.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PublicIDFromURL(tt.url))
		})
	}
}
