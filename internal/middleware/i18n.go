package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

type localeContextKey struct{}
type countryContextKey struct{}

var (
	LocaleKey  = localeContextKey{}
	CountryKey = countryContextKey{}
)

// CountryLookup resolves ISO country codes for an IP address.
type CountryLookup func(ip string) (string, error)

// supportedLocales are the languages error envelopes can be localized to,
// matching the languages the service can generate copy in.
var supportedLocales = language.NewMatcher([]language.Tag{
	language.Korean, // ko is the default
	language.English,
	language.Japanese,
})

var localeByCountry = map[string]string{
	"KR": "ko",
	"JP": "ja",
}

// I18N stores a resolved locale and country in the request context. Locale
// precedence: X-Locale header, Accept-Language negotiation, GeoIP country,
// configured default.
func I18N(defaultLocale string, lookup CountryLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			country := resolveCountry(r, lookup)
			locale := detectLocale(r, defaultLocale, country)
			ctx := context.WithValue(r.Context(), LocaleKey, locale)
			if country != "" {
				ctx = context.WithValue(ctx, CountryKey, strings.ToUpper(country))
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func detectLocale(r *http.Request, fallback, country string) string {
	if v := normalizeLocale(r.Header.Get("X-Locale")); v != "" {
		return v
	}
	if v := matchAcceptLanguage(r.Header.Get("Accept-Language")); v != "" {
		return v
	}
	if v, ok := localeByCountry[strings.ToUpper(country)]; ok {
		return v
	}
	if fallback != "" {
		return fallback
	}
	return "ko"
}

// matchAcceptLanguage negotiates the Accept-Language header against the
// supported set.
func matchAcceptLanguage(header string) string {
	if strings.TrimSpace(header) == "" {
		return ""
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return ""
	}
	_, index, conf := supportedLocales.Match(tags...)
	if conf == language.No {
		return ""
	}
	switch index {
	case 1:
		return "en"
	case 2:
		return "ja"
	}
	return "ko"
}

func normalizeLocale(locale string) string {
	locale = strings.ToLower(strings.TrimSpace(locale))
	switch {
	case strings.HasPrefix(locale, "ko"):
		return "ko"
	case strings.HasPrefix(locale, "en"):
		return "en"
	case strings.HasPrefix(locale, "ja"):
		return "ja"
	}
	return ""
}

func resolveCountry(r *http.Request, lookup CountryLookup) string {
	headerHints := []string{"X-Country-Code", "CF-IPCountry", "X-Appengine-Country"}
	for _, key := range headerHints {
		if val := strings.TrimSpace(r.Header.Get(key)); val != "" {
			return strings.ToUpper(val)
		}
	}
	if lookup != nil {
		if ip := ClientIP(r); ip != "" {
			if country, err := lookup(ip); err == nil && country != "" {
				return strings.ToUpper(country)
			}
		}
	}
	return ""
}

// ClientIP returns the best-effort client IP address for the request.
func ClientIP(r *http.Request) string {
	if r == nil {
		return ""
	}
	if xf := r.Header.Get("X-Forwarded-For"); xf != "" {
		parts := strings.Split(xf, ",")
		if len(parts) > 0 {
			return strings.TrimSpace(parts[0])
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// LocaleFromContext returns the locale stored by I18N, defaulting to Korean.
func LocaleFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(LocaleKey).(string); ok {
		return v
	}
	return "ko"
}

// CountryFromContext returns the ISO country code stored in the request context.
func CountryFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CountryKey).(string); ok {
		return v
	}
	return ""
}
