package testutil

import (
	"io"
	"strings"
	"testing"
)

func TestDecodeJSON(t *testing.T) {
	body := io.NopCloser(strings.NewReader(`{"name":"frame-1"}`))

	var out struct {
		Name string `json:"name"`
	}
	DecodeJSON(t, body, &out)

	if out.Name != "frame-1" {
		t.Errorf("decoded name = %q, want frame-1", out.Name)
	}
}

func TestReadAll(t *testing.T) {
	body := io.NopCloser(strings.NewReader("hello"))
	if got := ReadAll(t, body); got != "hello" {
		t.Errorf("ReadAll = %q, want hello", got)
	}
}
