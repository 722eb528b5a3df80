package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock_PlainJSON(t *testing.T) {
	assert.Equal(t, `{"a":1}`, cleanJSONBlock(`{"a":1}`))
}

func TestCleanJSONBlock_JSONFence(t *testing.T) {
	input := "```json\n{\"summary\": \"ok\"}\n```"
	assert.Equal(t, `{"summary": "ok"}`, cleanJSONBlock(input))
}

func TestCleanJSONBlock_BareFence(t *testing.T) {
	input := "```\n{\"summary\": \"ok\"}\n```"
	assert.Equal(t, `{"summary": "ok"}`, cleanJSONBlock(input))
}

func TestCleanJSONBlock_SurroundingWhitespace(t *testing.T) {
	input := "  \n```json\n{}\n```  \n"
	assert.Equal(t, "{}", cleanJSONBlock(input))
}

func TestCleanJSONBlock_EmptyString(t *testing.T) {
	assert.Equal(t, "", cleanJSONBlock(""))
}
