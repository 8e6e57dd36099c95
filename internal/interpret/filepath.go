package interpret

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// FilePath probes content that looks like an absolute or home-relative
// filesystem path. The probe is read-only: Lstat plus, for symlinks, a
// Readlink — nothing is created, modified, or followed.
//
// A well-formed path that does not exist is still a result (Exists: false);
// only a non-absolute, non-~ path declines. Probe errors such as permission
// denied are indistinguishable from a missing path.
type FilePath struct{}

func (FilePath) Name() string { return "File Path" }

func (FilePath) Interpret(content string) *Result {
	p := strings.TrimSpace(content)
	if !strings.HasPrefix(p, "/") && !strings.HasPrefix(p, "~") {
		return nil
	}
	if strings.HasPrefix(p, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			home = ""
		}
		p = home + p[1:]
	}

	fi, err := os.Lstat(p)
	exists := err == nil

	kind := "none"
	var symlink bool
	if exists {
		switch {
		case fi.Mode()&fs.ModeSymlink != 0:
			kind = "symlink"
			symlink = true
		case fi.IsDir():
			kind = "directory"
		case fi.Mode().IsRegular():
			kind = "file"
		default:
			kind = "other"
		}
	}

	items := []Item{
		textItem("Exists", strconv.FormatBool(exists)),
		textItem("Kind", kind),
		textItem("Parent", filepath.Dir(p)),
		textItem("Filename", filepath.Base(p)),
	}
	if ext := strings.TrimPrefix(filepath.Ext(p), "."); ext != "" {
		items = append(items, textItem("Extension", ext))
	}
	if kind == "file" {
		size := fi.Size()
		items = append(items, textItem("Size",
			fmt.Sprintf("%s (%d bytes)", humanize.IBytes(uint64(size)), size)))
	}
	if symlink {
		if target, err := os.Readlink(p); err == nil {
			items = append(items, textItem("Target", target))
		}
	}

	return &Result{Items: items}
}
