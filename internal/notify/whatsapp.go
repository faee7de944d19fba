package notify

import (
	"net/url"
	"regexp"
	"strings"
)

// OpenMode tells the client how to open the chat deep link.
type OpenMode string

const (
	// OpenModeAppWithFallback: try the app, fall back to the same tab.
	OpenModeAppWithFallback OpenMode = "app_with_fallback"
	// OpenModeNewTab: open a new browsing context.
	OpenModeNewTab OpenMode = "new_tab"
)

var mobileUA = regexp.MustCompile(`(?i)Android|webOS|iPhone|iPad|iPod|BlackBerry|IEMobile|Opera Mini`)

// OpenModeFor picks the open mode for a user agent string.
func OpenModeFor(userAgent string) OpenMode {
	if mobileUA.MatchString(userAgent) {
		return OpenModeAppWithFallback
	}
	return OpenModeNewTab
}

// WhatsAppURL builds the wa.me deep link for the given recipient number and
// preformatted message text.
func WhatsAppURL(number, message string) string {
	// url.QueryEscape encodes spaces as "+", which WhatsApp renders
	// literally; the deep link needs %20.
	escaped := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return "https://wa.me/" + number + "?text=" + escaped
}
