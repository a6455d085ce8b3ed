//go:build unit || e2e

// Package testutil builds request bodies for validation tables: start from a
// valid DTO, then break one field per case.
package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

type Edit func(body map[string]any)

// JSONBody round-trips dto through its JSON tags so edits address wire names.
func JSONBody(t *testing.T, dto any, edits ...Edit) map[string]any {
	t.Helper()
	raw, err := json.Marshal(dto)
	require.NoError(t, err)

	body := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &body))
	for _, edit := range edits {
		edit(body)
	}
	return body
}

func With(key string, value any) Edit {
	return func(body map[string]any) { body[key] = value }
}

func Without(key string) Edit {
	return func(body map[string]any) { delete(body, key) }
}
