package vmod

import "testing"

func TestIsContentURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want bool
	}{
		{"marked markdown file", "/site/content/blog/post-1.md?loess-content", true},
		{"marker among other params", "/site/content/blog/post-1.mdx?v=2&loess-content", true},
		{"uppercase extension", "/site/content/blog/POST.MD?loess-content", true},
		{"no marker", "/site/content/blog/post-1.md", false},
		{"no marker with query", "/site/content/blog/post-1.md?v=2", false},
		{"marker but wrong extension", "/site/content/blog/data.json?loess-content", false},
		{"marker but no extension", "/site/content/blog/post-1?loess-content", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsContentURL(tt.url, nil); got != tt.want {
				t.Errorf("IsContentURL(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}

func TestIsContentURL_CustomExtensions(t *testing.T) {
	url := "/content/notes/a.txt?loess-content"
	if IsContentURL(url, nil) {
		t.Error(".txt should not match the default allow-list")
	}
	if !IsContentURL(url, []string{".txt"}) {
		t.Error(".txt should match a custom allow-list")
	}
}

func TestFilePath_StripsQuery(t *testing.T) {
	if got := FilePath("/content/blog/a.md?loess-content&v=3"); got != "/content/blog/a.md" {
		t.Errorf("FilePath() = %q", got)
	}
	if got := FilePath("/content/blog/a.md"); got != "/content/blog/a.md" {
		t.Errorf("FilePath() = %q", got)
	}
}
