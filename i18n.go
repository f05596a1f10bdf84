package jsonschema

import (
	"embed"
	"sync"

	"github.com/kaptinlin/go-i18n"
)

//go:embed locales/*.json
var localesFS embed.FS

var (
	i18nBundle     *i18n.I18n
	i18nBundleErr  error
	i18nBundleOnce sync.Once
)

// I18n returns the package's internationalization bundle, loading the
// embedded locale files (locales/en.json, locales/zh-Hans.json) on first
// use. Grounded on the teacher's i18n.go.
func I18n() (*i18n.I18n, error) {
	i18nBundleOnce.Do(func() {
		bundle := i18n.NewBundle(
			i18n.WithDefaultLocale("en"),
			i18n.WithLocales("en", "zh-Hans"),
		)
		i18nBundleErr = bundle.LoadFS(localesFS, "locales/*.json")
		i18nBundle = bundle
	})
	return i18nBundle, i18nBundleErr
}

// localizeValidationError renders err's code in the given locale, falling
// back to the untranslated Error() string if the bundle or the locale's
// message for that code is unavailable.
func localizeValidationError(locale string, err *ValidationError) string {
	bundle, bundleErr := I18n()
	if bundleErr != nil || bundle == nil {
		return err.Error()
	}
	localizer := bundle.NewLocalizer(locale)
	if localizer == nil {
		return err.Error()
	}
	msg := localizer.Get(string(err.Code))
	if msg == "" || msg == string(err.Code) {
		return err.Error()
	}
	return msg
}
