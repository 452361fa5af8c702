package wire

import (
	"strconv"
	"strings"

	"github.com/iudanet/liveclient/internal/models"
)

// Формат входящих записей:
//
//	d|<c|u|d>|<root>|<path>|<t|h|a|>|<base64>
//	s||<sessionID>
const (
	recordSeparator = "\n"
	fieldSeparator  = "|"
	pathSeparator   = ">"

	kindDiff    = "d"
	kindSession = "s"

	diffFieldCount    = 6
	sessionFieldCount = 3
)

// позиции полей в diff записи
const (
	fieldKind = iota
	fieldDiffType
	fieldRoot
	fieldPath
	fieldContentType
	fieldPayload
)

// Interceptor rewrites a raw record before it is parsed.
// An empty result drops the record.
type Interceptor func(raw string) string

// ParseBatch splits one inbound frame into typed records.
// Blank records are skipped, malformed ones are returned as errors and skipped;
// a bad record never stops the rest of the batch.
func ParseBatch(frame string, intercept Interceptor) ([]models.Record, []error) {
	lines := strings.Split(frame, recordSeparator)

	records := make([]models.Record, 0, len(lines))
	var errs []error

	for _, line := range lines {
		raw := strings.TrimSuffix(line, "\r")
		if raw == "" {
			continue
		}

		if intercept != nil {
			raw = intercept(raw)
			if raw == "" {
				continue
			}
		}

		rec, err := ParseRecord(raw)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		records = append(records, rec)
	}

	return records, errs
}

// ParseRecord parses a single non-blank record
func ParseRecord(raw string) (models.Record, error) {
	fields := strings.Split(raw, fieldSeparator)

	switch fields[fieldKind] {
	case kindDiff:
		return parseDiff(raw, fields)
	case kindSession:
		if len(fields) != sessionFieldCount {
			return nil, malformed(raw, "session record has %d fields, want %d", len(fields), sessionFieldCount)
		}
		return &models.SessionRecord{SessionID: fields[2], Raw: raw}, nil
	default:
		return nil, malformed(raw, "unknown record kind %q", fields[fieldKind])
	}
}

func parseDiff(raw string, fields []string) (*models.DiffRecord, error) {
	if len(fields) != diffFieldCount {
		return nil, malformed(raw, "diff record has %d fields, want %d", len(fields), diffFieldCount)
	}

	diffType, ok := parseDiffType(fields[fieldDiffType])
	if !ok {
		return nil, malformed(raw, "unknown diff type %q", fields[fieldDiffType])
	}

	content, ok := parseContentType(fields[fieldContentType])
	if !ok {
		return nil, malformed(raw, "unknown content type %q", fields[fieldContentType])
	}
	if content == models.ContentNone && diffType != models.DiffDelete {
		return nil, malformed(raw, "content type required for diff type %q", diffType)
	}

	path, err := ParsePath(fields[fieldPath])
	if err != nil {
		return nil, malformed(raw, "%v", err)
	}

	return &models.DiffRecord{
		Type:    diffType,
		Root:    fields[fieldRoot],
		Path:    path,
		Content: content,
		Payload: fields[fieldPayload],
		Raw:     raw,
	}, nil
}

// ParsePath parses a ">" separated path.
// Empty segments are no-op steps (a component path starts with ">") and are dropped.
func ParsePath(s string) (models.Path, error) {
	path := models.Path{}
	if s == "" {
		return path, nil
	}

	for _, seg := range strings.Split(s, pathSeparator) {
		if seg == "" {
			continue
		}

		idx, err := strconv.Atoi(seg)
		if err != nil || idx < 0 {
			return nil, malformed(s, "invalid path segment %q", seg)
		}

		path = append(path, idx)
	}

	return path, nil
}

func parseDiffType(s string) (models.DiffType, bool) {
	switch models.DiffType(strings.ToLower(s)) {
	case models.DiffCreate:
		return models.DiffCreate, true
	case models.DiffUpdate:
		return models.DiffUpdate, true
	case models.DiffDelete:
		return models.DiffDelete, true
	}
	return "", false
}

func parseContentType(s string) (models.ContentType, bool) {
	switch models.ContentType(strings.ToLower(s)) {
	case models.ContentNone:
		return models.ContentNone, true
	case models.ContentText:
		return models.ContentText, true
	case models.ContentHTML:
		return models.ContentHTML, true
	case models.ContentAttribute:
		return models.ContentAttribute, true
	}
	return "", false
}
