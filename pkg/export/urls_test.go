package export

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeURLFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "urls.txt")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write url file: %v", err)
	}
	return path
}

func TestReadURLList(t *testing.T) {
	content := "https://example.atlassian.net/wiki/spaces/ENG/pages/1\n" +
		"\n" +
		"   https://example.atlassian.net/wiki/spaces/ENG/pages/2   \n" +
		"\t\n" +
		"https://example.atlassian.net/wiki/spaces/ENG/pages/3"

	urls, err := ReadURLList(writeURLFile(t, content))
	if err != nil {
		t.Fatalf("ReadURLList() error = %v", err)
	}

	want := []string{
		"https://example.atlassian.net/wiki/spaces/ENG/pages/1",
		"https://example.atlassian.net/wiki/spaces/ENG/pages/2",
		"https://example.atlassian.net/wiki/spaces/ENG/pages/3",
	}
	if len(urls) != len(want) {
		t.Fatalf("len = %d, want %d: %v", len(urls), len(want), urls)
	}
	for i := range want {
		if urls[i] != want[i] {
			t.Errorf("urls[%d] = %q, want %q", i, urls[i], want[i])
		}
	}
}

func TestReadURLList_MissingFile(t *testing.T) {
	_, err := ReadURLList(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("ReadURLList() error = nil, want error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ReadURLList() error = %v, want os.ErrNotExist", err)
	}
}

func TestReadURLList_EmptyFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "zero bytes", content: ""},
		{name: "only blank lines", content: "\n\n   \n\t\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadURLList(writeURLFile(t, tt.content))
			if !errors.Is(err, ErrEmptyURLList) {
				t.Errorf("ReadURLList() error = %v, want ErrEmptyURLList", err)
			}
		})
	}
}
