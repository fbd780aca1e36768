package imagestore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "local static url",
			url:  "/static/uploads/5f2c9c1e-aaaa-bbbb-cccc-0123456789ab.jpg",
			want: "5f2c9c1e-aaaa-bbbb-cccc-0123456789ab",
		},
		{
			name: "hosted url with version segment",
			url:  "https://media.example.com/image/upload/v1712345678/sample.jpg",
			want: "sample",
		},
		{
			name: "multiple dots strip from the first",
			url:  "/static/uploads/archive.tar.gz",
			want: "archive",
		},
		{
			name: "no extension",
			url:  "/static/uploads/rawname",
			want: "rawname",
		},
		{
			name: "bare filename",
			url:  "photo.png",
			want: "photo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PublicID(tt.url))
		})
	}
}
