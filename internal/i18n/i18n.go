// Package i18n renders the countdown messages in the caller's
// language. Locales are embedded; anything the bundle cannot resolve
// falls back to the engine's built-in English templates, so the API
// never returns a bare translation key.
package i18n

import (
	"embed"
	"log/slog"
	"strings"

	json "github.com/goccy/go-json"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/tartampluch/go-nextbirthday/internal/config"
	"github.com/tartampluch/go-nextbirthday/internal/engine"
)

//go:embed locales/*.json
var localeFS embed.FS

// NewBundle loads every embedded active.<lang>.json locale into a
// translation bundle with English as the default language.
func NewBundle() *goi18n.Bundle {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
		return bundle
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}
		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyFile, name,
		)
	}
	return bundle
}

// Messages renders countdown messages for a language preference list,
// typically the raw Accept-Language header value.
type Messages struct {
	localizer *goi18n.Localizer
}

// NewMessages builds a renderer for the given preferences. Empty or
// unknown preferences resolve to the bundle's default language.
func NewMessages(bundle *goi18n.Bundle, langs ...string) *Messages {
	return &Messages{localizer: goi18n.NewLocalizer(bundle, langs...)}
}

// Render implements engine.MessageFunc.
func (m *Messages) Render(tier engine.Tier, days int) string {
	msg, err := m.localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    tier.Key(),
		TemplateData: map[string]any{"Days": days},
	})
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, tier.Key(),
			config.LogKeyError, err,
		)
		return engine.Message(tier, days)
	}
	return msg
}

// RenderAge returns the localized age summary for the /api/age endpoint.
func (m *Messages) RenderAge(years int) string {
	msg, err := m.localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    config.TKeyMsgAge,
		TemplateData: map[string]any{"Years": years},
	})
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, config.TKeyMsgAge,
			config.LogKeyError, err,
		)
		return engine.AgeMessage(years)
	}
	return msg
}
