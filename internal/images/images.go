package images

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// imageExts lists the input containers handed to the renderer. The
// renderer's decoders cover all of them.
var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

// List returns the image files in dir sorted in natural order, so
// "card2.png" sorts before "card10.png". The returned order is the
// slot assignment order.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading input folder: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if imageExts[strings.ToLower(filepath.Ext(entry.Name()))] {
			files = append(files, entry.Name())
		}
	}

	sort.Slice(files, func(i, j int) bool {
		return naturalLess(files[i], files[j])
	})

	for i, name := range files {
		files[i] = filepath.Join(dir, name)
	}
	return files, nil
}

// naturalLess compares two names chunk by chunk, where a chunk is
// either a run of digits (compared numerically) or a run of other
// characters (compared case-insensitively).
func naturalLess(a, b string) bool {
	for a != "" && b != "" {
		ca, a2 := chunk(a)
		cb, b2 := chunk(b)

		if ca != cb {
			aNum, aOK := parseUint(ca)
			bNum, bOK := parseUint(cb)
			switch {
			case aOK && bOK:
				if aNum != bNum {
					return aNum < bNum
				}
			case aOK:
				return true
			case bOK:
				return false
			default:
				la, lb := strings.ToLower(ca), strings.ToLower(cb)
				if la != lb {
					return la < lb
				}
			}
		}
		a, b = a2, b2
	}
	return len(a) < len(b)
}

// chunk splits off the leading digit run or non-digit run of s.
func chunk(s string) (string, string) {
	first, _ := utf8.DecodeRuneInString(s)
	isDigit := unicode.IsDigit(first)
	for i, r := range s {
		if unicode.IsDigit(r) != isDigit {
			return s[:i], s[i:]
		}
	}
	return s, ""
}

// parseUint parses a digit run, reporting whether s was numeric.
// Leading zeros are fine; overflow falls back to string comparison.
func parseUint(s string) (uint64, bool) {
	var n uint64
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		d := uint64(r - '0')
		if n > (1<<63)/10 {
			return 0, false
		}
		n = n*10 + d
	}
	return n, true
}
