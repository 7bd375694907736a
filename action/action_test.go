package action

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_PlainTextReturnsNil(t *testing.T) {
	for _, text := range []string{
		"",
		"Sure, I can help with that.",
		"no braces at all",
		"unbalanced { fragment",
		"} backwards {",
	} {
		assert.Nil(t, Parse(text), "input: %q", text)
	}
}

func TestParse_ToolObject(t *testing.T) {
	a := Parse(`{"type":"tool","name":"read_file","args":{"path":"go.mod"}}`)
	require.NotNil(t, a)
	assert.Equal(t, TypeTool, a.Type)
	assert.Equal(t, "read_file", a.Name)
	assert.Equal(t, "go.mod", a.Args["path"])
}

func TestParse_ToolEmbeddedInProse(t *testing.T) {
	text := "I'll read the file now:\n{\"type\":\"tool\",\"name\":\"read_file\",\"args\":{\"path\":\"a.txt\"}}\nDone."
	a := Parse(text)
	require.NotNil(t, a)
	assert.Equal(t, "read_file", a.Name)
}

func TestParse_ReplyInProseNotDetected(t *testing.T) {
	// The loose brace scan only accepts tool actions; a reply object buried
	// in prose stays a plain reply.
	text := `As JSON that would be {"type":"reply","content":"hi"} I think.`
	assert.Nil(t, Parse(text))
}

func TestParse_FencedBlock(t *testing.T) {
	text := "Here is the action:\n```json\n{\"type\":\"reply\",\"content\":\"all done\"}\n```\n"
	a := Parse(text)
	require.NotNil(t, a)
	assert.Equal(t, TypeReply, a.Type)
	assert.Equal(t, "all done", a.Content)
}

func TestParse_FencedBlockMalformedFallsThrough(t *testing.T) {
	// Broken fence contents must not error; the loose scan still picks up
	// a later tool object.
	text := "```json\nnot json at all\n```\n{\"type\":\"tool\",\"name\":\"x\"}"
	a := Parse(text)
	require.NotNil(t, a)
	assert.Equal(t, "x", a.Name)
}

func TestParse_ArgsDefaultToEmptyMap(t *testing.T) {
	a := Parse(`{"type":"tool","name":"list_files"}`)
	require.NotNil(t, a)
	require.NotNil(t, a.Args)
	assert.Empty(t, a.Args)
}

func TestParse_MissingNameStillParses(t *testing.T) {
	// Missing name resolves to "unknown tool" at dispatch, not parse.
	a := Parse(`{"type":"tool","args":{"x":1}}`)
	require.NotNil(t, a)
	assert.Equal(t, "", a.Name)
}

func TestParse_UnknownTypeIgnored(t *testing.T) {
	assert.Nil(t, Parse(`{"type":"thought","content":"hmm"}`))
}

func TestParseStrict(t *testing.T) {
	assert.NotNil(t, ParseStrict(`{"type":"reply","content":"C"}`))
	assert.NotNil(t, ParseStrict("  {\"type\":\"tool\",\"name\":\"x\"}\n"))
	// Surrounding prose is rejected in strict mode.
	assert.Nil(t, ParseStrict(`prefix {"type":"reply","content":"C"}`))
	assert.Nil(t, ParseStrict(`{"type":"reply","content":"C"} suffix`))
	assert.Nil(t, ParseStrict("just text"))
}

func TestParse_NestedBracesInsideStrings(t *testing.T) {
	// Braces inside string values survive because the whole substring is
	// still valid JSON from first to last brace.
	a := Parse(`{"type":"tool","name":"write_file","args":{"content":"func main() {}"}}`)
	require.NotNil(t, a)
	assert.Equal(t, "write_file", a.Name)
}
