package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultCompact(t *testing.T) {
	var buf bytes.Buffer
	emitter := NewEmitter(&buf, false, false)

	require.NoError(t, emitter.Result([]string{"m5.large", "t3.micro"}))
	assert.Equal(t, "[\"m5.large\",\"t3.micro\"]\n", buf.String())
}

func TestResultPretty(t *testing.T) {
	var buf bytes.Buffer
	emitter := NewEmitter(&buf, true, false)

	require.NoError(t, emitter.Result([]string{"a"}))
	assert.Equal(t, "[\n  \"a\"\n]\n", buf.String())
}

func TestResultEmptyIsNeverNull(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
	}{
		{"nil value", nil},
		{"nil string slice", []string(nil)},
		{"nil map slice", []map[string]interface{}(nil)},
		{"empty slice", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			emitter := NewEmitter(&buf, false, false)

			require.NoError(t, emitter.Result(tt.value))
			assert.Equal(t, "[]\n", buf.String())
		})
	}
}

func TestErrorShape(t *testing.T) {
	var buf bytes.Buffer
	emitter := NewEmitter(&buf, false, false)

	require.NoError(t, emitter.Error("Missing command"))
	assert.Equal(t, "{\"error\":\"Missing command\"}\n", buf.String())
}

func TestFailExitContract(t *testing.T) {
	var buf bytes.Buffer

	// Compatible mode: error body, nil error, caller exits zero
	err := NewEmitter(&buf, false, false).Fail("boom")
	assert.NoError(t, err)
	assert.Equal(t, "{\"error\":\"boom\"}\n", buf.String())

	// Strict mode: same body, ErrReported signals a nonzero exit
	buf.Reset()
	err = NewEmitter(&buf, false, true).Fail("boom")
	assert.ErrorIs(t, err, ErrReported)
	assert.Equal(t, "{\"error\":\"boom\"}\n", buf.String())
}

func TestResultRoundTrip(t *testing.T) {
	type descriptor struct {
		Code           string   `json:"code"`
		AttributeNames []string `json:"attributeNames"`
	}
	in := []descriptor{
		{Code: "AmazonEC2", AttributeNames: []string{"instanceType", "location"}},
		{Code: "AmazonS3", AttributeNames: []string{"storageClass"}},
	}

	var buf bytes.Buffer
	require.NoError(t, NewEmitter(&buf, false, false).Result(in))

	var out []descriptor
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, in, out)
}
