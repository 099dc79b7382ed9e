package jsonize

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
)

// Descriptor is a (code, phrase) pair. It encodes as the JSON array [code, phrase].
type Descriptor struct {
	Code   int
	Phrase string
}

// Fallback is what Resolve returns for codes missing from the catalog.
var Fallback = Descriptor{Code: http.StatusInternalServerError, Phrase: "Internal Server Error"}

func (d Descriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{d.Code, d.Phrase})
}

func (d *Descriptor) UnmarshalJSON(b []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(b, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("jsonize: status descriptor needs 2 elements, got %d", len(pair))
	}
	if err := json.Unmarshal(pair[0], &d.Code); err != nil {
		return fmt.Errorf("jsonize: status code: %w", err)
	}
	if err := json.Unmarshal(pair[1], &d.Phrase); err != nil {
		return fmt.Errorf("jsonize: status phrase: %w", err)
	}
	return nil
}

func (d Descriptor) String() string {
	return fmt.Sprintf("%d %s", d.Code, d.Phrase)
}

// Resolve returns the canonical descriptor for code, or Fallback.
func Resolve(code int) Descriptor {
	if d, ok := Lookup(code); ok {
		return d
	}
	return Fallback
}

// Lookup reports whether code is in the catalog.
func Lookup(code int) (Descriptor, bool) {
	phrase, ok := phrases[code]
	if !ok {
		return Descriptor{}, false
	}
	return Descriptor{Code: code, Phrase: phrase}, true
}

// Codes returns every known code in ascending order.
func Codes() []int {
	codes := make([]int, 0, len(phrases))
	for c := range phrases {
		codes = append(codes, c)
	}
	sort.Ints(codes)
	return codes
}

var phrases = map[int]string{
	// 1xx informational, including the caching warnings
	100: "Continue",
	101: "Switching Protocols",
	102: "Processing",
	103: "Early Hints",
	110: "Response is Stale",
	111: "Revalidation Failed",
	112: "Disconnected Operation",
	113: "Heuristic Expiration",
	199: "Miscellaneous Warning",

	// 2xx success
	200: "OK",
	201: "Created",
	202: "Accepted",
	203: "Non-Authoritative Information",
	204: "No Content",
	205: "Reset Content",
	206: "Partial Content",
	207: "Multi-Status",
	208: "Already Reported",
	214: "Transformation Applied",
	218: "This is fine (Apache Web Server)",
	226: "IM Used",
	299: "Miscellaneous Persistent Warning",

	// 3xx redirection
	300: "Multiple Choices",
	301: "Moved Permanently",
	302: "Found",
	303: "See Other",
	304: "Not Modified",
	305: "Use Proxy",
	306: "Switch Proxy",
	307: "Temporary Redirect",
	308: "Permanent Redirect",

	// 4xx client errors, including framework and proxy codes
	400: "Bad Request",
	401: "Unauthorized",
	402: "Payment Required",
	403: "Forbidden",
	404: "Not Found",
	405: "Method Not Allowed",
	406: "Not Acceptable",
	407: "Proxy Authentication Required",
	408: "Request Timeout",
	409: "Conflict",
	410: "Gone",
	411: "Length Required",
	412: "Precondition Failed",
	413: "Payload Too Large",
	414: "URI Too Long",
	415: "Unsupported Media Type",
	416: "Range Not Satisfiable",
	417: "Expectation Failed",
	418: "I'm a teapot",
	419: "Page Expired (Laravel Framework)",
	420: "Method Failure (Spring Framework)",
	421: "Misdirected Request",
	422: "Unprocessable Entity",
	423: "Locked",
	424: "Failed Dependency",
	425: "Too Early",
	426: "Upgrade Required",
	428: "Precondition Required",
	429: "Too Many Requests",
	430: "Request Header Fields Too Large (Shopify)",
	431: "Request Header Fields Too Large",
	444: "No Response (Nginx)",
	450: "Blocked by Windows Parental Controls (Microsoft)",
	451: "Unavailable For Legal Reasons",
	494: "Request Header Too Large (Nginx)",
	495: "SSL Certificate Error (Nginx)",
	496: "SSL Certificate Required (Nginx)",
	497: "HTTP Request Sent to HTTPS Port (Nginx)",
	498: "Invalid Token (Esri)",
	499: "Client Closed Request (Nginx)",

	// 5xx server errors, including proxy and CDN codes
	500: "Internal Server Error",
	501: "Not Implemented",
	502: "Bad Gateway",
	503: "Service Unavailable",
	504: "Gateway Timeout",
	505: "HTTP Version Not Supported",
	506: "Variant Also Negotiates",
	507: "Insufficient Storage",
	508: "Loop Detected",
	509: "Bandwidth Limit Exceeded (Apache Web Server)",
	510: "Not Extended",
	511: "Network Authentication Required",
	520: "Web Server Returned an Unknown Error (Cloudflare)",
	521: "Web Server Is Down (Cloudflare)",
	522: "Connection Timed Out (Cloudflare)",
	523: "Origin Is Unreachable (Cloudflare)",
	524: "A Timeout Occurred (Cloudflare)",
	525: "SSL Handshake Failed (Cloudflare)",
	526: "Invalid SSL Certificate (Cloudflare)",
	527: "Railgun Error (Cloudflare)",
	529: "Site is overloaded",
	530: "Site is frozen",
	598: "Network read timeout error",
	599: "Network connect timeout error",

	// application-defined codes
	701: "Meh (Drupal)",
	702: "Emacs (Drupal)",
	703: "Explosion (Drupal)",
	704: "Goto fail (Drupal)",
	705: "I wrote the code and missed the necessary validation by an oversight (Drupal)",
	706: "Enhance Your Calm (Drupal)",
	710: "PHP Out of Memory (Drupal)",
	711: "PHP Timeout (Drupal)",
	712: "PHP Fatal Error (Drupal)",
	720: "WTF (Drupal)",
	721: "DNS Issues (Drupal)",
	722: "Too Many Included Files (Drupal)",
	723: "MySQL Connection Failed (Drupal)",
	724: "MySQL Too Many Connections (Drupal)",
	725: "PDO Exception (Drupal)",
	726: "Random Bullshit (Drupal)",
	727: "MySQL Syntax Error (Drupal)",
	780: "GSM 7-bit text encoding error (Custom)",
	781: "GSM 8-bit text encoding error (Custom)",
	782: "GSM UCS2 text encoding error (Custom)",
	783: "GSM 7-bit and 8-bit text encoding error (Custom)",
}
