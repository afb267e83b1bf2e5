package content

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/kovi/agls/internal/utils"
	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

var ErrUnknownFrontMatter = errors.New("unknown front matter format")

// FrontMatter is the header of a markdown page file.
type FrontMatter struct {
	Title       string `yaml:"title" toml:"title"`
	MetaTitle   string `yaml:"meta_title" toml:"meta_title"`
	Description string `yaml:"description" toml:"description"`
	Locale      string `yaml:"locale" toml:"locale"`
	Type        string `yaml:"type" toml:"type"`
	URL         string `yaml:"url" toml:"url"`
	Created     DateValue `yaml:"created" toml:"created"`
	Modified    DateValue `yaml:"modified" toml:"modified"`
}

// DateValue keeps a front matter date as written. TOML dates may be bare
// (created = 2024-03-01), which would not decode into a plain string.
type DateValue string

func (d *DateValue) UnmarshalText(text []byte) error {
	*d = DateValue(text)
	return nil
}

func (d *DateValue) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("date must be a scalar, line %d", n.Line)
	}
	*d = DateValue(n.Value)
	return nil
}

// ParseFrontMatter splits a YAML (---) or TOML (+++) headed document into its front
// matter and body.
func ParseFrontMatter(data []byte) (FrontMatter, string, error) {
	var fm FrontMatter
	str := strings.TrimPrefix(string(data), "\ufeff")

	switch {
	case strings.HasPrefix(str, "---"):
		parts := strings.SplitN(str, "---", 3) // "", FM, Body
		if len(parts) != 3 {
			return fm, "", fmt.Errorf("yaml: %w", ErrUnknownFrontMatter)
		}
		if err := yaml.Unmarshal([]byte(parts[1]), &fm); err != nil {
			return fm, "", fmt.Errorf("yaml front matter: %w", err)
		}
		return fm, strings.TrimSpace(parts[2]), nil

	case strings.HasPrefix(str, "+++"):
		parts := strings.SplitN(str, "+++", 3)
		if len(parts) != 3 {
			return fm, "", fmt.Errorf("toml: %w", ErrUnknownFrontMatter)
		}
		if err := toml.Unmarshal([]byte(parts[1]), &fm); err != nil {
			return fm, "", fmt.Errorf("toml front matter: %w", err)
		}
		return fm, strings.TrimSpace(parts[2]), nil
	}

	return fm, "", ErrUnknownFrontMatter
}

// ToPage builds a page from front matter. rel is the file path relative to the content
// root and names the URL when the front matter does not.
func (fm FrontMatter) ToPage(rel, body string) (*Page, error) {
	created, err := utils.ParseTimestamp(string(fm.Created))
	if err != nil {
		return nil, fmt.Errorf("created: %w", err)
	}
	modified, err := utils.ParseTimestamp(string(fm.Modified))
	if err != nil {
		return nil, fmt.Errorf("modified: %w", err)
	}

	url := fm.URL
	if url == "" {
		url = strings.TrimSuffix(filepath.ToSlash(rel), filepath.Ext(rel))
		if path.Base(url) == "index" {
			url = path.Dir(url)
		}
	}

	p := &Page{
		URLSegment:      NormalizeURL(url),
		PageType:        fm.Type,
		Title:           strings.TrimSpace(fm.Title),
		MetaTitle:       strings.TrimSpace(fm.MetaTitle),
		MetaDescription: strings.TrimSpace(fm.Description),
		Content:         body,
		Locale:          strings.TrimSpace(fm.Locale),
		CreatedAt:       created,
		UpdatedAt:       modified,
	}
	if p.PageType == "" {
		p.PageType = DefaultPageType
	}
	if p.Title == "" {
		return nil, errors.New("title is required")
	}
	return p, nil
}

// ImportResult counts what ImportDir did.
type ImportResult struct {
	Created   int `json:"created"`
	Updated   int `json:"updated"`
	Unchanged int `json:"unchanged"`
	Skipped   int `json:"skipped"`
}

// Outcome is what Upsert did with a page.
type Outcome int

const (
	OutcomeUnchanged Outcome = iota
	OutcomeCreated
	OutcomeUpdated
)

// ImportDir creates or updates a page for every markdown file below dir.
// Files that fail to parse are logged and skipped.
func ImportDir(db *gorm.DB, dir string, log *logrus.Entry) (ImportResult, error) {
	var res ImportResult

	err := filepath.WalkDir(dir, func(file string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(file) != ".md" {
			return nil
		}

		rel, err := filepath.Rel(dir, file)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(file)
		if err != nil {
			return err
		}

		fm, body, err := ParseFrontMatter(data)
		if err != nil {
			log.WithError(err).WithField("file", rel).Warn("Skipping content file")
			res.Skipped++
			return nil
		}
		page, err := fm.ToPage(rel, body)
		if err != nil {
			log.WithError(err).WithField("file", rel).Warn("Skipping content file")
			res.Skipped++
			return nil
		}

		outcome, err := Upsert(db, page)
		if err != nil {
			return fmt.Errorf("import %s: %w", rel, err)
		}
		switch outcome {
		case OutcomeCreated:
			res.Created++
		case OutcomeUpdated:
			res.Updated++
		default:
			res.Unchanged++
		}
		return nil
	})

	return res, err
}

// Upsert stores p keyed by its URL segment. Only fields that differ from the stored
// row are written, so an unchanged page keeps its modified time.
func Upsert(db *gorm.DB, p *Page) (Outcome, error) {
	outcome := OutcomeUnchanged
	err := db.Transaction(func(tx *gorm.DB) error {
		var existing Page
		r := tx.Where("url_segment = ?", p.URLSegment).Limit(1).Find(&existing)
		if r.Error != nil {
			return r.Error
		}

		if r.RowsAffected == 0 {
			outcome = OutcomeCreated
			return tx.Create(p).Error
		}

		updates := changedFields(&existing, p)
		if len(updates) == 0 {
			*p = existing
			return nil
		}

		outcome = OutcomeUpdated
		if err := tx.Model(&existing).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(p, existing.ID).Error
	})
	return outcome, err
}

// changedFields answers the columns of next that differ from cur. Zero timestamps in
// next mean "not given" and never overwrite the stored ones.
func changedFields(cur, next *Page) map[string]any {
	u := map[string]any{}
	set := func(col, a, b string) {
		if a != b {
			u[col] = b
		}
	}
	set("page_type", cur.PageType, next.PageType)
	set("title", cur.Title, next.Title)
	set("meta_title", cur.MetaTitle, next.MetaTitle)
	set("meta_description", cur.MetaDescription, next.MetaDescription)
	set("content", cur.Content, next.Content)
	set("locale", cur.Locale, next.Locale)

	if !next.CreatedAt.IsZero() && !next.CreatedAt.Equal(cur.CreatedAt) {
		u["created_at"] = next.CreatedAt
	}
	// a declared modified date wins over the write time
	if !next.UpdatedAt.IsZero() && (len(u) > 0 || !next.UpdatedAt.Equal(cur.UpdatedAt)) {
		u["updated_at"] = next.UpdatedAt
	}
	return u
}
