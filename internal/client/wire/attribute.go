package wire

import (
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// DecodePayload decodes the base64 content field of a diff record
func DecodePayload(payload string) (string, error) {
	b, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("failed to decode payload: %w", err)
	}
	return string(b), nil
}

// EncodePayload is the inverse of DecodePayload
func EncodePayload(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// ParseAttribute splits a decoded attribute payload of the form ` name="value"`.
// The name is trimmed, surrounding quotes are removed and HTML entities unescaped.
// A payload without "=" is a bare attribute with an empty value.
func ParseAttribute(data string) (name, value string) {
	idx := strings.Index(data, "=")
	if idx < 0 {
		return strings.TrimSpace(data), ""
	}

	name = strings.TrimSpace(data[:idx])
	value = data[idx+1:]

	if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
		value = value[1 : len(value)-1]
	} else if value == `"` {
		value = ""
	}

	return name, html.UnescapeString(value)
}

// FormatAttribute renders an attribute the way the server renderer does
func FormatAttribute(name, value string) string {
	return fmt.Sprintf(` %s="%s"`, name, html.EscapeString(value))
}

// DecodeAttribute decodes a base64 attribute payload into name and value
func DecodeAttribute(payload string) (name, value string, err error) {
	data, err := DecodePayload(payload)
	if err != nil {
		return "", "", err
	}

	name, value = ParseAttribute(data)
	if name == "" {
		return "", "", fmt.Errorf("attribute payload %q has no name", data)
	}

	return name, value, nil
}

// EncodeAttribute is the inverse of DecodeAttribute
func EncodeAttribute(name, value string) string {
	return EncodePayload(FormatAttribute(name, value))
}
