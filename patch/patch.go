package patch

import (
	"fmt"
	"os"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/femnad/pat/entity"
	"github.com/femnad/pat/internal"
)

const textMimeType = "text/plain"

type Patcher struct {
	Config entity.Config
}

func isText(mtype *mimetype.MIME) bool {
	for m := mtype; m != nil; m = m.Parent() {
		if m.Is(textMimeType) {
			return true
		}
	}
	return false
}

func readTarget(target string) (string, error) {
	content, err := os.ReadFile(target)
	if err != nil {
		return "", err
	}

	if len(content) > 0 {
		mtype := mimetype.Detect(content)
		if !isText(mtype) {
			return "", fmt.Errorf("refusing to patch %s with detected type %s", target, mtype)
		}
	}

	text, _, err := transform.String(encoding.UTF8Validator, string(content))
	if err != nil {
		return "", fmt.Errorf("error decoding %s as UTF-8: %v", target, err)
	}

	return text, nil
}

func replace(text string, r entity.Replacement) (string, bool) {
	if r.Old == "" || !strings.Contains(text, r.Old) {
		return text, false
	}

	replacement := r.New
	if r.Absent {
		replacement = ""
	}

	return strings.ReplaceAll(text, r.Old, replacement), true
}

func (p Patcher) applyPatch(patch entity.Patch) (bool, error) {
	target, err := resolveTarget(patch.File, p.Config.Settings)
	if err != nil {
		return false, err
	}

	text, err := readTarget(target)
	if err != nil {
		return false, err
	}

	patched := text
	for _, r := range patch.Replace {
		var found bool
		patched, found = replace(patched, r)
		if !found {
			internal.Log.Debugf("Not modifying %s as text `%s` was not found", target, r.Old)
		}
	}

	var changed bool
	if patched != text {
		changed, err = internal.WriteContent(internal.ManagedFile{
			Content:     patched,
			Path:        target,
			ValidateCmd: patch.Validate,
		})
		if err != nil {
			return false, fmt.Errorf("error writing %s: %v", target, err)
		}
	}

	fmt.Println(patch.Confirmation())
	return changed, nil
}

// Apply runs each patch in order. The first I/O failure aborts the run;
// replacements whose literals are absent are no-ops, not errors.
func (p Patcher) Apply() error {
	changed := mapset.NewSet[string]()

	for _, pt := range p.Config.Patches {
		didChange, err := p.applyPatch(pt)
		if err != nil {
			return err
		}
		if didChange {
			changed.Add(pt.File)
		}
	}

	if changed.Cardinality() > 0 {
		files := changed.ToSlice()
		sort.Strings(files)
		internal.Log.Infof("Modified %d file(s): %s", len(files), strings.Join(files, ", "))
	}

	return nil
}
