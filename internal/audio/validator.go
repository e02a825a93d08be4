package audio

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/nguyentantai21042004/meetscribe/internal/apperror"
)

type implValidator struct {
	allowed map[string]struct{}
	listed  string
}

// NewValidator creates a Validator over an extension allow-list such as ".mp3"
func NewValidator(extensions []string) Validator {
	allowed := make(map[string]struct{}, len(extensions))
	names := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if _, dup := allowed[ext]; !dup {
			names = append(names, ext)
		}
		allowed[ext] = struct{}{}
	}
	sort.Strings(names)

	return &implValidator{
		allowed: allowed,
		listed:  strings.Join(names, ", "),
	}
}

func (v *implValidator) Validate(filename string) (string, error) {
	base := filepath.Base(filename)
	ext := strings.ToLower(filepath.Ext(base))
	// a dotfile such as ".wav" has no suffix
	if ext == "" || ext == "." || len(ext) == len(base) {
		return "", apperror.InvalidFormat("invalid file format: missing extension. Allowed formats: %s", v.listed)
	}
	if _, ok := v.allowed[ext]; !ok {
		return "", apperror.InvalidFormat("invalid file format %q. Allowed formats: %s", ext, v.listed)
	}
	return ext, nil
}

func (v *implValidator) Allowed(filename string) bool {
	_, err := v.Validate(filename)
	return err == nil
}
