package i18n

import (
	"sync"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Thin wrapper around go-i18n. Message IDs are dotted paths
// ("orders.status_updated"); the default localizer resolves English.

var (
	mu        sync.RWMutex
	bundle    *goi18n.Bundle
	localizer *goi18n.Localizer
)

func Init() {
	mu.Lock()
	defer mu.Unlock()
	bundle = goi18n.NewBundle(language.English)
	localizer = goi18n.NewLocalizer(bundle, language.English.String())
}

// Load adds a JSON locale file (active.en.json style) to the bundle.
func Load(path string) error {
	mu.Lock()
	defer mu.Unlock()
	_, err := bundle.LoadMessageFile(path)
	return err
}

// T resolves a message ID with optional template data. Unknown IDs fall back
// to the ID itself so a missing translation never blanks a notification.
func T(id string, data map[string]interface{}) string {
	mu.RLock()
	defer mu.RUnlock()
	if localizer == nil {
		return id
	}
	msg, err := localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil || msg == "" {
		return id
	}
	return msg
}
