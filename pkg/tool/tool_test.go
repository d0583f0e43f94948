package tool_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	af "github.com/mutablelogic/go-apiframe"
	tool "github.com/mutablelogic/go-apiframe/pkg/tool"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// STUB TOOL

type stubInput struct {
	Text string `json:"text" jsonschema:"Text to echo"`
}

type stubTool struct {
	name string
	err  error
}

func (s *stubTool) Name() string        { return s.name }
func (s *stubTool) Description() string { return "stub" }
func (s *stubTool) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[stubInput](nil)
}
func (s *stubTool) Run(_ context.Context, input json.RawMessage) (any, error) {
	if s.err != nil {
		return nil, s.err
	}
	var in stubInput
	if len(input) > 0 {
		if err := json.Unmarshal(input, &in); err != nil {
			return nil, err
		}
	}
	return in.Text, nil
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_toolkit_001(t *testing.T) {
	// Tools are returned sorted by name
	assert := assert.New(t)
	tk, err := tool.NewToolkit(&stubTool{name: "b_tool"}, &stubTool{name: "a_tool"})
	if !assert.NoError(err) {
		t.FailNow()
	}
	tools := tk.Tools()
	if assert.Len(tools, 2) {
		assert.Equal("a_tool", tools[0].Name())
		assert.Equal("b_tool", tools[1].Name())
	}
}

func Test_toolkit_002(t *testing.T) {
	// Registration rejects nil, invalid and duplicate tools
	assert := assert.New(t)
	tk, err := tool.NewToolkit(&stubTool{name: "my_tool"})
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.ErrorIs(tk.Register(nil), af.ErrBadParameter)
	assert.ErrorIs(tk.Register(&stubTool{name: "not a name"}), af.ErrBadParameter)
	assert.ErrorIs(tk.Register(&stubTool{name: "my_tool"}), af.ErrConflict)

	_, err = tool.NewToolkit(&stubTool{name: "x"}, &stubTool{name: "x"})
	assert.ErrorIs(err, af.ErrConflict)
}

func Test_toolkit_003(t *testing.T) {
	// Lookup and Meta for existing and missing tools
	assert := assert.New(t)
	tk, err := tool.NewToolkit(&stubTool{name: "my_tool"})
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.NotNil(tk.Lookup("my_tool"))
	assert.Nil(tk.Lookup("other_tool"))

	meta, err := tk.Meta("my_tool")
	if assert.NoError(err) {
		assert.Equal("my_tool", meta.Name)
		assert.Equal("stub", meta.Description)
		assert.NotNil(meta.InputSchema)
	}

	_, err = tk.Meta("other_tool")
	assert.ErrorIs(err, af.ErrNotFound)
}

func Test_toolkit_004(t *testing.T) {
	// Run validates the input and passes it to the tool
	assert := assert.New(t)
	tk, err := tool.NewToolkit(&stubTool{name: "echo"})
	if !assert.NoError(err) {
		t.FailNow()
	}

	// Map input
	result, err := tk.Run(context.Background(), "echo", map[string]any{"text": "hello"})
	assert.NoError(err)
	assert.Equal("hello", result)

	// Raw input
	result, err = tk.Run(context.Background(), "echo", json.RawMessage(`{"text":"world"}`))
	assert.NoError(err)
	assert.Equal("world", result)

	// Missing required field
	_, err = tk.Run(context.Background(), "echo", json.RawMessage(`{}`))
	assert.ErrorIs(err, af.ErrBadParameter)

	// Not an object
	_, err = tk.Run(context.Background(), "echo", []byte(`"text"`))
	assert.ErrorIs(err, af.ErrBadParameter)

	// Missing tool
	_, err = tk.Run(context.Background(), "missing", nil)
	assert.ErrorIs(err, af.ErrNotFound)
}

func Test_toolkit_005(t *testing.T) {
	// Errors from the tool are returned unchanged
	assert := assert.New(t)
	failed := errors.New("failed")
	tk, err := tool.NewToolkit(&stubTool{name: "fail", err: failed})
	if !assert.NoError(err) {
		t.FailNow()
	}
	_, err = tk.Run(context.Background(), "fail", nil)
	assert.ErrorIs(err, failed)
}
