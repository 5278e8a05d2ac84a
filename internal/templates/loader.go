package templates

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/quillon/quillon/pkg/domain"
)

var frontmatterDelim = []byte("---")

// Parse decodes a single template document: YAML frontmatter carrying the
// metadata and questionnaire, followed by the document body. The name is
// used as a fallback template ID and in error messages.
func Parse(name string, data []byte) (domain.Template, error) {
	meta, body, err := splitFrontmatter(data)
	if err != nil {
		return domain.Template{}, fmt.Errorf("parse %s: %w", name, err)
	}

	// Decode in two steps: YAML into a loose map, then the map into the
	// domain struct. Unknown frontmatter keys fail loudly instead of being
	// dropped, so authoring typos surface immediately.
	var raw map[string]any
	if err := yaml.Unmarshal(meta, &raw); err != nil {
		return domain.Template{}, fmt.Errorf("parse %s: frontmatter: %w", name, err)
	}

	var tpl domain.Template
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     "yaml",
		ErrorUnused: true,
		Result:      &tpl,
	})
	if err != nil {
		return domain.Template{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return domain.Template{}, fmt.Errorf("parse %s: frontmatter: %w", name, err)
	}

	if tpl.ID == "" {
		tpl.ID = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	}
	if tpl.Category == "" {
		tpl.Category = domain.CategoryOther
	}
	tpl.DocumentBody = strings.TrimSpace(body)
	return tpl, nil
}

// LoadDir loads every .md template file in dir, sorted by file name so the
// catalogue order is stable across platforms. A missing directory is an
// error; an empty one is not.
func LoadDir(dir string) ([]domain.Template, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	loaded := make([]domain.Template, 0, len(names))
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("load templates: %w", err)
		}
		tpl, err := Parse(name, data)
		if err != nil {
			return nil, err
		}
		loaded = append(loaded, tpl)
	}
	return loaded, nil
}

func splitFrontmatter(data []byte) (meta []byte, body string, err error) {
	rest, found := bytes.CutPrefix(data, frontmatterDelim)
	if !found {
		return nil, "", fmt.Errorf("missing frontmatter delimiter")
	}
	rest = bytes.TrimPrefix(rest, []byte("\r"))
	rest, found = bytes.CutPrefix(rest, []byte("\n"))
	if !found {
		return nil, "", fmt.Errorf("missing frontmatter delimiter")
	}

	idx := bytes.Index(rest, append([]byte("\n"), frontmatterDelim...))
	if idx < 0 {
		return nil, "", fmt.Errorf("unterminated frontmatter")
	}
	meta = rest[:idx]

	after := rest[idx+1+len(frontmatterDelim):]
	after = bytes.TrimPrefix(after, []byte("\r"))
	after = bytes.TrimPrefix(after, []byte("\n"))
	return meta, string(after), nil
}
