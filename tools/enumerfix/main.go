// Package main rewrites enumer-generated files to build their errors with
// cockroachdb/errors.
//
// Usage: enumerfix <file>...
package main

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
)

const (
	errorsImport = `"github.com/cockroachdb/errors"`
	fmtImport    = `"fmt"`
)

// ErrUsage indicates incorrect usage of the tool.
var ErrUsage = errors.New("usage: enumerfix <file>...")

var importBlock = regexp.MustCompile(`import \(\n([\s\S]*?)\n\)`)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run fixes every file named in args[1:], stopping at the first failure.
func run(args []string) error {
	if len(args) < 2 { //nolint:mnd // program name plus one file
		return ErrUsage
	}

	for _, filename := range args[1:] {
		if err := fixFile(filename); err != nil {
			return errors.Wrapf(err, "fixing %s", filename)
		}
	}

	return nil
}

func fixFile(filename string) error {
	info, err := os.Stat(filename)
	if err != nil {
		return errors.Wrap(err, "reading file")
	}

	content, err := os.ReadFile(filename) //nolint:gosec // G304: file named on the command line
	if err != nil {
		return errors.Wrap(err, "reading file")
	}

	if err := os.WriteFile(filename, fixEnumerFile(content), info.Mode().Perm()); err != nil {
		return errors.Wrap(err, "writing file")
	}

	return nil
}

// fixEnumerFile replaces fmt.Errorf with errors.Newf and fixes the imports.
// Files that already use errors.Newf are returned unchanged.
func fixEnumerFile(content []byte) []byte {
	src := string(content)
	if !strings.Contains(src, "fmt.Errorf") {
		return content
	}

	src = strings.ReplaceAll(src, "fmt.Errorf", "errors.Newf")

	if strings.Contains(src, "fmt.") {
		src = addErrorsImport(src)
	} else {
		src = replaceFmtImport(src)
	}

	return []byte(src)
}

// addErrorsImport appends the errors import to the import block as its own
// group, the way goimports separates third-party packages.
func addErrorsImport(src string) string {
	match := importBlock.FindStringSubmatch(src)
	if match == nil || strings.Contains(match[1], errorsImport) {
		return src
	}

	return strings.Replace(src, match[0], "import (\n"+match[1]+"\n\n\t"+errorsImport+"\n)", 1)
}

func replaceFmtImport(src string) string {
	if strings.Contains(src, "import "+fmtImport) {
		return strings.Replace(src, "import "+fmtImport, "import "+errorsImport, 1)
	}

	return strings.Replace(src, "\t"+fmtImport, "\t"+errorsImport, 1)
}
