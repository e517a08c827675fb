// Package i18n provides internationalization support for the fulfillment
// service. The bakery serves the Montreal area, so the catalog carries
// English and French.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale,
// falling back to DefaultLocale and finally to the key itself.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the Accept-Language header, falling
// back to DefaultLocale for unsupported languages.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// e.g. "fr-CA,fr;q=0.9,en;q=0.8"
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		lang = strings.ToLower(lang)
		if _, ok := getDefaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			// Transport errors
			"error.invalid_request":      "Invalid request",
			"error.invalid_request_body": "Invalid request body",
			"error.internal_error":       "An unexpected error occurred",
			"error.unauthorized":         "Unauthorized",
			"error.api_key_required":     "API key is required",
			"error.invalid_api_key":      "Invalid API key",
			"error.forbidden":            "Forbidden",
			"error.not_found":            "Not found",
			"error.rate_limit_exceeded":  "Too many requests, please try again later",
			"error.invalid_token":        "Invalid or expired token",
			"error.token_required":       "Authentication token is required",
			"error.timeout":              "Request timeout",

			// Business conditions
			"error.fulfillment.zone_not_serviceable":   "We do not deliver to this postal code, please select a different postal code",
			"error.fulfillment.minimum_order_not_met":  "Your order is below the minimum for this delivery zone",
			"error.fulfillment.date_too_early":         "The selected date is before the earliest available delivery date",
			"error.fulfillment.invalid_time_slot":      "The selected delivery time slot is not available",
			"error.checkout.session_not_found":         "Checkout session not found or expired",
			"error.checkout.invalid_transition":        "This checkout step cannot be completed right now",
		},
		"fr": {
			// Transport errors
			"error.invalid_request":      "Requête invalide",
			"error.invalid_request_body": "Corps de requête invalide",
			"error.internal_error":       "Une erreur inattendue s'est produite",
			"error.unauthorized":         "Non autorisé",
			"error.api_key_required":     "Une clé API est requise",
			"error.invalid_api_key":      "Clé API invalide",
			"error.forbidden":            "Interdit",
			"error.not_found":            "Introuvable",
			"error.rate_limit_exceeded":  "Trop de requêtes, veuillez réessayer plus tard",
			"error.invalid_token":        "Jeton invalide ou expiré",
			"error.token_required":       "Un jeton d'authentification est requis",
			"error.timeout":              "Délai de requête dépassé",

			// Business conditions
			"error.fulfillment.zone_not_serviceable":   "Nous ne livrons pas à ce code postal, veuillez choisir un autre code postal",
			"error.fulfillment.minimum_order_not_met":  "Votre commande est inférieure au minimum pour cette zone de livraison",
			"error.fulfillment.date_too_early":         "La date choisie précède la première date de livraison disponible",
			"error.fulfillment.invalid_time_slot":      "Le créneau de livraison choisi n'est pas disponible",
			"error.checkout.session_not_found":         "Session de commande introuvable ou expirée",
			"error.checkout.invalid_transition":        "Cette étape de commande ne peut pas être complétée pour le moment",
		},
	}
}
