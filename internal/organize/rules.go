package organize

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Rules maps destination category folders to the file extensions they
// collect. A YAML rules file can override or extend the built-in table.
type Rules struct {
	Categories map[string][]string `yaml:"categories"`

	// byExt is the inverted lookup built once after loading.
	byExt map[string]string
}

// DefaultCategory is used for extensions no category claims.
const DefaultCategory = "Other"

// DefaultRules returns the built-in extension table.
func DefaultRules() *Rules {
	r := &Rules{
		Categories: map[string][]string{
			"Documents": {"pdf", "doc", "docx", "odt", "rtf", "txt", "md", "xls", "xlsx", "ods", "csv", "ppt", "pptx"},
			"Images":    {"jpg", "jpeg", "png", "gif", "bmp", "svg", "webp", "tiff", "ico", "heic"},
			"Videos":    {"mp4", "mkv", "avi", "mov", "wmv", "flv", "webm", "m4v", "mpg", "mpeg"},
			"Audio":     {"mp3", "wav", "flac", "ogg", "aac", "m4a", "wma", "opus"},
			"Archives":  {"zip", "tar", "gz", "bz2", "xz", "7z", "rar", "zst", "tgz"},
			"Code":      {"go", "rs", "py", "js", "ts", "c", "cpp", "h", "java", "rb", "sh", "php", "html", "css", "json", "yaml", "yml", "toml", "sql"},
		},
	}
	r.index()
	return r
}

// LoadRules loads the category table, overlaying a YAML rules file on
// the defaults when path is non-empty. Categories named in the file
// replace the built-in extension list of the same name.
func LoadRules(path string) (*Rules, error) {
	rules := DefaultRules()
	if path == "" {
		return rules, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	var file Rules
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse rules file %s: %w", path, err)
	}

	for category, exts := range file.Categories {
		rules.Categories[category] = exts
	}
	rules.index()
	return rules, nil
}

func (r *Rules) index() {
	r.byExt = make(map[string]string)
	for category, exts := range r.Categories {
		for _, ext := range exts {
			r.byExt[strings.ToLower(ext)] = category
		}
	}
}

// CategoryFor returns the destination folder for an extension
// (without dot, any case).
func (r *Rules) CategoryFor(ext string) string {
	if category, ok := r.byExt[strings.ToLower(ext)]; ok {
		return category
	}
	return DefaultCategory
}
