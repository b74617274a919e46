package internal

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	marecmd "github.com/femnad/mare/cmd"
)

const defaultFileMode = 0o644

type ManagedFile struct {
	Content     string
	Path        string
	Mode        int
	ValidateCmd string
}

func ExpandUser(path string) string {
	return strings.Replace(path, "~", os.Getenv("HOME"), 1)
}

func Checksum(f string) (string, error) {
	_, err := os.Stat(f)
	if err != nil {
		return "", err
	}

	h := sha256.New()
	fd, err := os.Open(f)
	if err != nil {
		return "", err
	}
	defer fd.Close()

	_, err = io.Copy(h, fd)
	if err != nil {
		return "", err
	}

	sum := h.Sum(nil)
	return hex.EncodeToString(sum), nil
}

// WriteContent writes to a temporary file in the target's directory and renames
// it over the target, so an interrupted write cannot leave the target
// truncated. Returns whether the target's content changed.
func WriteContent(file ManagedFile) (bool, error) {
	var dstSum string
	dstExists := true
	target := ExpandUser(file.Path)
	mode := file.Mode

	fi, err := os.Stat(target)
	if os.IsNotExist(err) {
		dstExists = false
	} else if err != nil {
		return false, err
	}

	dir, _ := path.Split(target)
	if dir == "" {
		dir = "."
	}

	src, err := os.CreateTemp(dir, "pat")
	if err != nil {
		return false, err
	}
	srcPath := src.Name()
	defer os.Remove(srcPath)

	_, err = src.WriteString(file.Content)
	if err != nil {
		src.Close()
		return false, err
	}

	err = src.Close()
	if err != nil {
		return false, err
	}

	srcSum, err := Checksum(srcPath)
	if err != nil {
		return false, err
	}

	if dstExists {
		dstSum, err = Checksum(target)
		if err != nil {
			return false, err
		}
	}

	if dstExists && srcSum == dstSum {
		return false, nil
	}

	if file.ValidateCmd != "" {
		validateCmd := fmt.Sprintf("%s %s", file.ValidateCmd, srcPath)
		out, validateErr := marecmd.RunFmtErr(marecmd.Input{Command: validateCmd})
		if validateErr != nil {
			return false, fmt.Errorf("error running validate command %s, output %s", validateCmd,
				strings.TrimSpace(out.Stderr))
		}
	}

	if mode == 0 {
		if dstExists {
			// Keep the target's permission bits across the rename.
			mode = int(fi.Mode().Perm())
		} else {
			mode = defaultFileMode
		}
	}

	err = os.Chmod(srcPath, os.FileMode(mode))
	if err != nil {
		return false, err
	}

	err = os.Rename(srcPath, target)
	if err != nil {
		return false, err
	}

	return true, nil
}
