// Package detect finds JSP documents.
//
// Files are selected by extension first. Unknown extensions can be checked
// with go-enry, which recognizes JSP by extension and content.
package detect

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-enry/go-enry/v2"
)

// Language is the go-enry name of the JSP language.
const Language = "Java Server Pages"

// maxSniff is the number of bytes read to detect the language of a file.
const maxSniff = 8 << 10

// IsJSP reports whether content, read from the file name, is a JSP document
// according to go-enry.
func IsJSP(name string, content []byte) bool {
	if enry.IsBinary(content) {
		return false
	}
	if lang, ok := enry.GetLanguageByExtension(name); ok {
		return lang == Language
	}
	return enry.GetLanguage(filepath.Base(name), content) == Language
}

// A Filter selects files by name. Files it rejects are passed to go-enry if
// sniffing is enabled.
type Filter func(name string) bool

// Walk returns the files to lex among paths. Files named explicitly are always
// returned. Directories are walked, skipping hidden and vendored directories;
// their files are kept if match accepts them or, with sniff, if their content
// is detected as JSP.
func Walk(ctx context.Context, paths []string, match Filter, sniff bool) ([]string, error) {
	var files []string
	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", root, err)
		}
		if !info.IsDir() {
			files = append(files, root)
			continue
		}
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if d.IsDir() {
				if path == root {
					return nil
				}
				rel, err := filepath.Rel(root, path)
				if err != nil {
					return err
				}
				if enry.IsDotFile(rel) || enry.IsVendor(filepath.ToSlash(rel)+"/") {
					return filepath.SkipDir
				}
				return nil
			}
			if !d.Type().IsRegular() {
				return nil
			}
			if match(path) {
				files = append(files, path)
				return nil
			}
			if sniff {
				ok, err := sniffFile(path)
				if err != nil {
					return err
				}
				if ok {
					files = append(files, path)
				}
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}
	return files, nil
}

func sniffFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	buf := make([]byte, maxSniff)
	n, err := f.Read(buf)
	if err != nil && n == 0 {
		return false, nil
	}
	return IsJSP(path, buf[:n]), nil
}
