package parser

import (
	"github.com/vmunix/arrmate/internal/intent"
	"github.com/vmunix/arrmate/internal/llm"
)

// ToolName is the name of the single extraction tool.
const ToolName = "parse_media_command"

const schemaURL = "arrmate://parse_media_command.json"

// Schema returns the JSON Schema document of the extraction tool. The same
// document is sent to the model and used to validate its answer.
func Schema() map[string]any {
	actions := make([]string, len(intent.Actions))
	for i, a := range intent.Actions {
		actions[i] = string(a)
	}
	media := make([]string, len(intent.MediaTypes))
	for i, m := range intent.MediaTypes {
		media[i] = string(m)
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"action": map[string]any{
				"type": "string",
				"enum": actions,
				"description": "The action to perform. 'remove' or 'delete' deletes files, 'search' looks for media " +
					"or re-searches a library item, 'add' adds to the library, 'upgrade' upgrades quality, " +
					"'list' shows library items, 'info' shows details, 'download_subtitle' fetches subtitles, " +
					"'sync_subtitles' rescans subtitles.",
			},
			"media_type": map[string]any{
				"type": "string",
				"enum": media,
				"description": "Type of media: 'tv' for shows and series, 'movie' for films, 'music' for artists " +
					"and albums, 'audiobook' for audio books, 'book' for ebooks and authors, 'adult' for adult content.",
			},
			"title": map[string]any{
				"type":        "string",
				"description": "The title exactly as mentioned.",
			},
			"season": map[string]any{
				"type":        "integer",
				"description": "Season number for TV shows ('season 1' = 1).",
			},
			"episodes": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "integer"},
				"description": "Episode numbers for TV shows ('episodes 1 and 2' = [1, 2]).",
			},
			"criteria": map[string]any{
				"type":        "object",
				"description": "Additional search, filter or routing hints.",
				"properties": map[string]any{
					intent.CriteriaLanguage: map[string]any{
						"type":        "string",
						"description": "Language code ('en', 'es') or name ('English').",
					},
					intent.CriteriaQuality: map[string]any{
						"type":        "string",
						"description": "Quality preference ('4K', '1080p', 'BluRay').",
					},
					intent.CriteriaYear: map[string]any{
						"type":        "integer",
						"description": "Release year for disambiguation.",
					},
					intent.CriteriaService: map[string]any{
						"type":        "string",
						"description": "Explicit backend name when the user addresses one ('plex', 'huntarr', 'bazarr').",
					},
					intent.CriteriaOperation: map[string]any{
						"type":        "string",
						"description": "Backend operation for service commands ('refresh', 'sessions', 'libraries', 'stats', 'missing').",
					},
				},
				"additionalProperties": true,
			},
		},
		"required":             []string{"action", "media_type"},
		"additionalProperties": false,
	}
}

// Tool returns the extraction tool handed to the model.
func Tool() llm.Tool {
	return llm.Tool{
		Name:        ToolName,
		Description: "Extract structured intent from a natural language media management command",
		Parameters:  Schema(),
	}
}
