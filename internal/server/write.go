package server

import (
	"net/http"
	"strconv"
	"strings"
)

var jsonEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// escapeJSON escapes backslash, double quote, LF, CR and TAB and nothing
// else. The mock payloads contain no other control characters.
func escapeJSON(s string) string {
	return jsonEscaper.Replace(s)
}

// jsonObject renders {"key": "value"} with the same spacing the web client
// has always received.
func jsonObject(key, value string) string {
	return `{"` + key + `": "` + escapeJSON(value) + `"}`
}

func writeBody(w http.ResponseWriter, status int, contentType string, body []byte) {
	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func writeText(w http.ResponseWriter, status int, body string) {
	writeBody(w, status, "text/plain; charset=utf-8", []byte(body))
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	writeBody(w, status, "application/json", []byte(body))
}
