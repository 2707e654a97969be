package main

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/arrmate/internal/history"
	"github.com/vmunix/arrmate/internal/intent"
	"github.com/vmunix/arrmate/internal/pipeline"
	"github.com/vmunix/arrmate/internal/registry"
)

func TestClient_Execute(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/v1/execute").
		ExpectMethod(http.MethodPost).
		ExpectAPIKey("secret").
		Handle(func(w http.ResponseWriter, r *http.Request) {
			var body map[string]any
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "list my movies", body["command"])
			assert.Equal(t, true, body["dry_run"])
			respondJSON(t, w, pipeline.Response{
				ID:      "abc",
				Command: "list my movies",
				Result:  intent.ExecutionResult{Success: true, Message: "Would list movie"},
				DryRun:  true,
			})
		}).
		Build()
	defer srv.Close()

	client := NewClient(srv.URL+"/", "secret")
	resp, err := client.Execute(context.Background(), "list my movies", true)
	require.NoError(t, err)
	assert.Equal(t, "abc", resp.ID)
	assert.True(t, resp.DryRun)
	assert.True(t, resp.Result.Success)
}

func TestClient_Parse(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/v1/parse").
		ExpectMethod(http.MethodPost).
		RespondJSON(map[string]any{
			"intent":     map[string]any{"action": "delete", "media_type": "tv", "title": "Angel", "episodes": []int{1}},
			"violations": []string{"episodes require a season"},
		}).
		Build()
	defer srv.Close()

	out, err := NewClient(srv.URL, "").Parse(context.Background(), "delete episode 1 of angel")
	require.NoError(t, err)
	require.NotNil(t, out.Intent)
	assert.Equal(t, intent.ActionDelete, out.Intent.Action)
	assert.Equal(t, []int{1}, out.Intent.Episodes)
	assert.Equal(t, []string{"episodes require a season"}, out.Violations)
}

func TestClient_ServicesRefresh(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/v1/services/refresh").
		ExpectMethod(http.MethodPost).
		RespondJSON(ServicesResponse{
			Services:  []registry.Descriptor{{Name: "sonarr", Type: "sonarr", Available: true}},
			Total:     1,
			Available: 1,
		}).
		Build()
	defer srv.Close()

	resp, err := NewClient(srv.URL, "").Services(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, resp.Services, 1)
	assert.True(t, resp.Services[0].Available)
}

func TestClient_History(t *testing.T) {
	srv := newMockServer(t).
		ExpectPath("/api/v1/history").
		ExpectMethod(http.MethodGet).
		Handle(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "5", r.URL.Query().Get("limit"))
			respondJSON(t, w, HistoryResponse{
				Items: []*history.Entry{{ID: "1", Command: "list movies"}},
				Total: 1,
				Limit: 5,
			})
		}).
		Build()
	defer srv.Close()

	resp, err := NewClient(srv.URL, "").History(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "list movies", resp.Items[0].Command)
}

func TestClient_ErrorBody(t *testing.T) {
	srv := newMockServer(t).
		RespondError(http.StatusUnauthorized, "UNAUTHORIZED", "invalid or missing API key").
		Build()
	defer srv.Close()

	_, err := NewClient(srv.URL, "").Services(context.Background(), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "invalid or missing API key")
}

func TestClient_ConnectionError(t *testing.T) {
	_, err := NewClient("http://127.0.0.1:1", "").History(context.Background(), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request failed")
}
