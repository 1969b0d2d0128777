package commands

import (
	"embed"
	"fmt"
	"io"
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/fatih/color"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

var supportedLanguages = []language.Tag{language.English, language.German}

func newBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	paths, err := fs.Glob(localeFS, "locales/*.toml")
	if err != nil {
		return nil, err
	}
	for _, path := range paths {
		if _, err := bundle.LoadMessageFileFS(localeFS, path); err != nil {
			return nil, fmt.Errorf("load messages %s: %w", path, err)
		}
	}
	return bundle, nil
}

// printer writes localized lines.
type printer struct {
	out       io.Writer
	localizer *i18n.Localizer
}

func newPrinter(out io.Writer, lang string) (*printer, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("invalid language %q: %w", lang, err)
	}

	bundle, err := newBundle()
	if err != nil {
		return nil, err
	}

	matched, _, _ := language.NewMatcher(supportedLanguages).Match(tag)
	base, _ := matched.Base()

	return &printer{
		out:       out,
		localizer: i18n.NewLocalizer(bundle, base.String(), language.English.String()),
	}, nil
}

func (p *printer) text(id string, data map[string]any) string {
	return p.localizer.MustLocalize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
}

func (p *printer) say(id string, data map[string]any) {
	fmt.Fprintln(p.out, p.text(id, data))
}

// fail writes a localized line in red when color output is enabled.
func (p *printer) fail(id string, data map[string]any) {
	color.New(color.FgRed).Fprintln(p.out, p.text(id, data))
}

func (p *printer) sayCount(id string, count int) {
	fmt.Fprintln(p.out, p.localizer.MustLocalize(&i18n.LocalizeConfig{
		MessageID:    id,
		PluralCount:  count,
		TemplateData: map[string]any{"Count": count},
	}))
}
