package wire

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/liveclient/internal/models"
)

func TestParseBatch_BlankRecords(t *testing.T) {
	records, errs := ParseBatch("\n\n\r\n", nil)

	assert.Empty(t, records)
	assert.Empty(t, errs)
}

func TestParseBatch_DiffAndSession(t *testing.T) {
	frame := "d|c|doc|1>1>0|h|PHA+PC9wPg==\n" +
		"d|d|comp1|>0>2||\n" +
		"s||sess-42\n"

	records, errs := ParseBatch(frame, nil)
	require.Empty(t, errs)
	require.Len(t, records, 3)

	create, ok := records[0].(*models.DiffRecord)
	require.True(t, ok)
	assert.Equal(t, models.DiffCreate, create.Type)
	assert.Equal(t, models.RootDocument, create.Root)
	assert.Equal(t, models.Path{1, 1, 0}, create.Path)
	assert.Equal(t, models.ContentHTML, create.Content)
	assert.Equal(t, "PHA+PC9wPg==", create.Payload)

	del, ok := records[1].(*models.DiffRecord)
	require.True(t, ok)
	assert.Equal(t, models.DiffDelete, del.Type)
	assert.Equal(t, "comp1", del.Root)
	assert.Equal(t, models.Path{0, 2}, del.Path)
	assert.Equal(t, models.ContentNone, del.Content)
	assert.True(t, del.IsNodeDelete())

	sess, ok := records[2].(*models.SessionRecord)
	require.True(t, ok)
	assert.Equal(t, "sess-42", sess.SessionID)
}

func TestParseBatch_UpperCaseTypes(t *testing.T) {
	records, errs := ParseBatch("d|U|doc|1|T|YQ==", nil)
	require.Empty(t, errs)
	require.Len(t, records, 1)

	diff := records[0].(*models.DiffRecord)
	assert.Equal(t, models.DiffUpdate, diff.Type)
	assert.Equal(t, models.ContentText, diff.Content)
}

func TestParseBatch_MalformedDoesNotAbort(t *testing.T) {
	frame := strings.Join([]string{
		"d|c|doc|1|t",        // wrong field count
		"d|u|doc|1|a|YQ==",   // valid
		"x|whatever",         // unknown kind
		"s|only-two",         // wrong session field count
		"d|q|doc|1|t|YQ==",   // unknown diff type
		"d|u|doc|1|z|YQ==",   // unknown content type
		"d|u|doc|1||YQ==",    // content required for updates
		"d|u|doc|1>x|t|YQ==", // bad path segment
		"d|d|doc|0>1||",      // valid
	}, "\n")

	records, errs := ParseBatch(frame, nil)

	assert.Len(t, records, 2)
	require.Len(t, errs, 7)
	for _, err := range errs {
		assert.True(t, errors.Is(err, ErrMalformedMessage), err.Error())

		var me *MalformedError
		assert.True(t, errors.As(err, &me))
		assert.NotEmpty(t, me.Raw)
	}
}

func TestParseBatch_Interceptor(t *testing.T) {
	var seen []string
	intercept := func(raw string) string {
		seen = append(seen, raw)
		if strings.HasPrefix(raw, "s|") {
			return ""
		}
		return strings.Replace(raw, "comp-old", "comp-new", 1)
	}

	records, errs := ParseBatch("d|d|comp-old|0||\n\ns||drop-me", intercept)
	require.Empty(t, errs)
	require.Len(t, records, 1)

	assert.Equal(t, []string{"d|d|comp-old|0||", "s||drop-me"}, seen)
	assert.Equal(t, "comp-new", records[0].(*models.DiffRecord).Root)
}

func TestParsePath(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected models.Path
		wantErr  bool
	}{
		{name: "empty", in: "", expected: models.Path{}},
		{name: "doc path", in: "1>1>0", expected: models.Path{1, 1, 0}},
		{name: "component path with leading separator", in: ">0>3", expected: models.Path{0, 3}},
		{name: "negative", in: "1>-1", wantErr: true},
		{name: "not a number", in: "a", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePath(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(p), "got %v", p)
		})
	}
}
