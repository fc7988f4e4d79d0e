package utils

import (
	"encoding/json"
	"path/filepath"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

var (
	bundle     *i18n.Bundle
	bundleOnce sync.Once
)

// InitI18NBundle loads the message files from the configured i18n directory.
// The directory defaults to ./i18n and can be overridden with `i18n.dir`.
func InitI18NBundle() {
	bundleOnce.Do(func() {
		bundle = i18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

		dir := viper.GetString("i18n.dir")
		if dir == "" {
			dir = "i18n"
		}

		if _, err := bundle.LoadMessageFile(filepath.Join(dir, "en.json")); err != nil {
			log.WithField("prefix", "i18n").WithError(err).Error("fail to load message file")
		}
	})
}

// NewLocalizer returns a localizer preferring the given languages.
func NewLocalizer(langs ...string) *i18n.Localizer {
	InitI18NBundle()
	return i18n.NewLocalizer(bundle, langs...)
}

// Localize resolves a message by id with optional template data. It returns
// an error when the message is missing so callers can fall back.
func Localize(messageID string, data map[string]interface{}) (string, error) {
	return NewLocalizer("en").Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
}
