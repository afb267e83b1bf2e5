package content

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/kovi/agls/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

var site = SiteInfo{
	BaseURL:       "https://example.gov.au",
	DefaultLocale: "en-AU",
	SummaryLength: 40,
	Generator:     "agls",
}

func TestNormalizeURL(t *testing.T) {
	tests := map[string]string{
		"":             "/",
		"/":            "/",
		"about":        "/about",
		"/about/":      "/about",
		"a/b/../c":     "/a/c",
		" /news/2024 ": "/news/2024",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeURL(in), in)
	}
}

func TestPageSource(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	p := &Page{
		URLSegment: "/about-us",
		Title:      "About us",
		Content:    "# Who we are\n\nWe are the **Department** of Example &amp; friends.\n\n- one\n- two",
		Locale:     "en_gb",
		CreatedAt:  created,
		UpdatedAt:  created.Add(time.Hour),
	}
	s := NewPageSource(p, site)

	assert.Equal(t, "About us", s.MetaTitle())
	assert.Equal(t, created, s.MetaCreated())
	assert.Equal(t, created.Add(time.Hour), s.MetaModified())
	assert.Equal(t, "https://example.gov.au/about-us", s.AbsoluteLink())
	assert.Equal(t, "", s.MetaDescription())
	assert.Equal(t, "Who we are We are the Department of...", s.MetaSummary())
	assert.Equal(t, "en-GB", s.ContentLocale())
	assert.Equal(t, DefaultPageType, s.PageType())

	p.MetaTitle = "  About the department "
	p.MetaDescription = " Explicit "
	p.Locale = ""
	p.URLSegment = "/"
	assert.Equal(t, "About the department", s.MetaTitle())
	assert.Equal(t, "Explicit", s.MetaDescription())
	assert.Equal(t, "en-AU", s.ContentLocale())
	assert.Equal(t, "https://example.gov.au/", s.AbsoluteLink())
}

func TestCanonicalLocale(t *testing.T) {
	assert.Equal(t, "en-AU", CanonicalLocale("en_AU"))
	assert.Equal(t, "fr", CanonicalLocale("FR"))
	assert.Equal(t, "", CanonicalLocale(""))
	assert.Equal(t, "not a locale", CanonicalLocale("not a locale"))
}

func TestRenderBody(t *testing.T) {
	out, err := RenderBody("Hello *world*\n\n<script>alert(1)</script>")
	assert.NoError(t, err)
	assert.Contains(t, out, "<em>world</em>")
	assert.NotContains(t, out, "<script>")
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "Fish & chips", Summary("Fish &amp; chips", 100))
	assert.Equal(t, "", Summary("", 100))
	assert.Equal(t, "alpha beta...", Summary("alpha beta gamma", 13))
	assert.Equal(t, "alpha...", Summary("alpha beta gamma", 12))
}

func TestBaseMetaTags(t *testing.T) {
	p := &Page{Title: "Fish & chips", MetaDescription: "Say \"hi\""}
	out := BaseMetaTags(NewPageSource(p, site))

	assert.False(t, strings.HasSuffix(out, "\n"))
	assert.Equal(t, "<title>Fish &amp; chips</title>\n"+
		"<meta name=\"generator\" content=\"agls\" />\n"+
		"<meta http-equiv=\"Content-Type\" content=\"text/html; charset=utf-8\" />\n"+
		"<meta name=\"description\" content=\"Say &#34;hi&#34;\" />", out)
}

func TestParseFrontMatter(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		fm, body, err := ParseFrontMatter([]byte("---\ntitle: Home\ncreated: 2024-03-01\nlocale: en_AU\n---\n\nWelcome.\n"))
		assert.NoError(t, err)
		assert.Equal(t, "Home", fm.Title)
		assert.Equal(t, DateValue("2024-03-01"), fm.Created)
		assert.Equal(t, "en_AU", fm.Locale)
		assert.Equal(t, "Welcome.", body)
	})

	t.Run("toml", func(t *testing.T) {
		fm, body, err := ParseFrontMatter([]byte("+++\ntitle = \"Contact\"\ntype = \"ContactPage\"\nmodified = \"2024-05-06 10:00\"\n+++\nCall us.\n"))
		assert.NoError(t, err)
		assert.Equal(t, "Contact", fm.Title)
		assert.Equal(t, "ContactPage", fm.Type)
		assert.Equal(t, DateValue("2024-05-06 10:00"), fm.Modified)
		assert.Equal(t, "Call us.", body)
	})

	t.Run("toml bare dates", func(t *testing.T) {
		fm, _, err := ParseFrontMatter([]byte("+++\ntitle = \"Events\"\ncreated = 2024-03-01\nmodified = 2024-05-06T10:00:00\n+++\nSoon.\n"))
		assert.NoError(t, err)
		assert.Equal(t, DateValue("2024-03-01"), fm.Created)
		assert.Equal(t, DateValue("2024-05-06T10:00:00"), fm.Modified)

		p, err := fm.ToPage("events.md", "Soon.")
		assert.NoError(t, err)
		assert.Equal(t, time.March, p.CreatedAt.Month())
		assert.Equal(t, 10, p.UpdatedAt.Hour())
	})

	t.Run("unknown", func(t *testing.T) {
		_, _, err := ParseFrontMatter([]byte("# just markdown"))
		assert.True(t, errors.Is(err, ErrUnknownFrontMatter))
	})
}

func TestFrontMatter_ToPage(t *testing.T) {
	fm := FrontMatter{Title: "News", Created: "2024-03-01"}

	p, err := fm.ToPage(filepath.Join("news", "index.md"), "body")
	assert.NoError(t, err)
	assert.Equal(t, "/news", p.URLSegment)
	assert.Equal(t, DefaultPageType, p.PageType)
	assert.Equal(t, 2024, p.CreatedAt.Year())
	assert.True(t, p.UpdatedAt.IsZero())

	p, err = fm.ToPage("index.md", "")
	assert.NoError(t, err)
	assert.Equal(t, "/", p.URLSegment)

	fm.URL = "/custom/"
	p, err = fm.ToPage("whatever.md", "")
	assert.NoError(t, err)
	assert.Equal(t, "/custom", p.URLSegment)

	_, err = FrontMatter{}.ToPage("x.md", "")
	assert.Error(t, err)

	_, err = FrontMatter{Title: "x", Created: "yesterday"}.ToPage("x.md", "")
	assert.Error(t, err)
}

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.ConnectDB(filepath.Join(t.TempDir(), "content.db"))
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if err := db.AutoMigrate(&Page{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestImportDir(t *testing.T) {
	db := openDB(t)
	dir := t.TempDir()
	log := logrus.WithField("module", "test")

	files := map[string]string{
		"index.md":          "---\ntitle: Home\n---\nWelcome home.",
		"about/index.md":    "+++\ntitle = \"About\"\nlocale = \"en_GB\"\ncreated = \"2023-07-01\"\n+++\nAbout us.",
		"news/first.md":     "---\ntitle: First\ntype: NewsArticle\n---\nNews.",
		"notes/readme.txt":  "ignored",
		"broken/nofront.md": "no front matter here",
	}
	for name, data := range files {
		full := filepath.Join(dir, name)
		assert.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		assert.NoError(t, os.WriteFile(full, []byte(data), 0o644))
	}

	res, err := ImportDir(db, dir, log)
	assert.NoError(t, err)
	assert.Equal(t, ImportResult{Created: 3, Skipped: 1}, res)

	var about Page
	assert.NoError(t, db.Where("url_segment = ?", "/about").First(&about).Error)
	assert.Equal(t, "About", about.Title)
	assert.Equal(t, "en_GB", about.Locale)
	assert.Equal(t, 2023, about.CreatedAt.Year())

	var news Page
	assert.NoError(t, db.Where("url_segment = ?", "/news/first").First(&news).Error)
	assert.Equal(t, "NewsArticle", news.PageType)

	// second run updates in place
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "index.md"), []byte("---\ntitle: Home v2\nmodified: 2025-06-15\n---\nBody"), 0o644))
	res, err = ImportDir(db, dir, log)
	assert.NoError(t, err)
	assert.Equal(t, ImportResult{Updated: 1, Unchanged: 2, Skipped: 1}, res)

	var home Page
	assert.NoError(t, db.Where("url_segment = ?", "/").First(&home).Error)
	assert.Equal(t, "Home v2", home.Title)
	assert.Equal(t, 2025, home.UpdatedAt.Year())

	t.Run("unchanged files keep their modified time", func(t *testing.T) {
		var before Page
		assert.NoError(t, db.Where("url_segment = ?", "/news/first").First(&before).Error)

		time.Sleep(20 * time.Millisecond)
		res, err := ImportDir(db, dir, log)
		assert.NoError(t, err)
		assert.Equal(t, ImportResult{Unchanged: 3, Skipped: 1}, res)

		var after Page
		assert.NoError(t, db.Where("url_segment = ?", "/news/first").First(&after).Error)
		assert.True(t, before.UpdatedAt.Equal(after.UpdatedAt), "before %v, after %v", before.UpdatedAt, after.UpdatedAt)
	})

	t.Run("changed created date is stored", func(t *testing.T) {
		assert.NoError(t, os.WriteFile(filepath.Join(dir, "about", "index.md"),
			[]byte("+++\ntitle = \"About\"\nlocale = \"en_GB\"\ncreated = 2022-02-01\n+++\nAbout us."), 0o644))
		res, err := ImportDir(db, dir, log)
		assert.NoError(t, err)
		assert.Equal(t, 1, res.Updated)

		var about Page
		assert.NoError(t, db.Where("url_segment = ?", "/about").First(&about).Error)
		assert.Equal(t, 2022, about.CreatedAt.Year())
	})

	var count int64
	db.Model(&Page{}).Count(&count)
	assert.Equal(t, int64(3), count)
}
