// Copyright (c) 2026 Keymaster Team
// Keypad - on-screen terminal keyboard
// This source code is licensed under the MIT license found in the LICENSE file.

// package i18n provides internationalization and localization support for Keypad.
// It uses the go-i18n library to load the embedded translation files so the
// prompt and status messages can be displayed in multiple languages.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// localeFS embeds the YAML translation files from the 'locales' directory
// into the application binary.
//
//go:embed locales/*.yaml
var localeFS embed.FS

// bundle stores all the loaded translation messages from the locale files.
var bundle *i18n.Bundle

// localizer is used to translate messages into a specific language.
var localizer *i18n.Localizer

// current is the resolved language tag of localizer.
var current = language.English

// Init initializes the i18n bundle and sets up the localizer for a specific language.
// Unknown or malformed tags fall back to English.
func Init(lang string) {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, _ := localeFS.ReadFile("locales/" + f.Name())
		bundle.MustParseMessageFileBytes(data, f.Name())
	}

	current = language.English
	if tag, err := language.Parse(strings.TrimSpace(lang)); err == nil {
		matcher := language.NewMatcher(bundle.LanguageTags())
		_, idx, conf := matcher.Match(tag)
		if conf != language.No {
			current = bundle.LanguageTags()[idx]
		}
	}
	localizer = i18n.NewLocalizer(bundle, current.String())
}

// T translates a message by its ID. Extra arguments are applied to the
// translated text with fmt.Sprintf. If the i18n system has not been
// initialized, it defaults to English; unknown IDs are returned as-is.
func T(messageID string, args ...any) string {
	if localizer == nil {
		Init("en")
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		msg = messageID
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// Lang returns the base language currently in use, e.g. "en".
func Lang() string {
	base, _ := current.Base()
	return base.String()
}

// Available lists the languages shipped with the binary.
func Available() []string {
	if bundle == nil {
		Init("en")
	}
	var out []string
	for _, tag := range bundle.LanguageTags() {
		base, _ := tag.Base()
		out = append(out, base.String())
	}
	sort.Strings(out)
	return out
}
