package export

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrEmptyURLList indicates the URL list file contained no URLs.
var ErrEmptyURLList = errors.New("url list is empty")

// ReadURLList reads page URLs from path, one per line. Surrounding
// whitespace is trimmed and blank lines are skipped. A missing file or an
// empty list is fatal to the run; both happen before any network activity.
func ReadURLList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open url list %s: %w", path, err)
	}
	defer f.Close()

	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read url list %s: %w", path, err)
	}

	if len(urls) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyURLList, path)
	}

	return urls, nil
}
