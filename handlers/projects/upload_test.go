package projects

import (
	"mime/multipart"
	"testing"
)

func TestValidateSignImage(t *testing.T) {
	cases := []struct {
		name     string
		filename string
		size     int64
		wantErr  bool
	}{
		{"jpg ok", "site-plan.jpg", 1024, false},
		{"jpeg ok", "site-plan.jpeg", 1024, false},
		{"png ok", "logo.png", 4 * 1024 * 1024, false},
		{"gif ok", "banner.gif", 1024, false},
		{"uppercase extension ok", "PLAN.JPG", 1024, false},
		{"pdf rejected", "contract.pdf", 1024, true},
		{"no extension rejected", "image", 1024, true},
		{"oversize rejected", "huge.png", 5*1024*1024 + 1, true},
		{"at limit ok", "exact.png", 5 * 1024 * 1024, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			file := &multipart.FileHeader{Filename: tc.filename, Size: tc.size}
			err := validateSignImage(file)
			if tc.wantErr && err == nil {
				t.Errorf("validateSignImage(%q, %d) accepted, want error", tc.filename, tc.size)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("validateSignImage(%q, %d) rejected: %v", tc.filename, tc.size, err)
			}
		})
	}
}
