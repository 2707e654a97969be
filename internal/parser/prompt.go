package parser

import (
	"fmt"
	"strings"

	"github.com/vmunix/arrmate/internal/config"
	"github.com/vmunix/arrmate/internal/registry"
)

const promptHeader = `You are a media management assistant that extracts structured intent from natural language commands.

Key guidelines:
- Extract the ACTION (remove/delete, search, add, upgrade, list, info, download_subtitle, sync_subtitles)
- Identify the MEDIA TYPE (tv, movie, music, audiobook, book, adult)
- Extract the TITLE exactly as mentioned
- For TV shows, extract SEASON and EPISODE numbers if mentioned
- Extract any CRITERIA (language, quality, year, service, operation)
`

const promptExamples = `
Examples:
- "remove episode 1 and 2 of Angel season 1" -> action=remove, media_type=tv, title="Angel", season=1, episodes=[1,2]
- "add Breaking Bad to my library" -> action=add, media_type=tv, title="Breaking Bad"
- "find 4K version of Blade Runner" -> action=search, media_type=movie, title="Blade Runner", criteria={quality: "4K"}
- "show me all my TV shows" -> action=list, media_type=tv
- "get English subtitles for The Wire season 2" -> action=download_subtitle, media_type=tv, title="The Wire", season=2, criteria={language: "en"}
- "refresh plex" -> action=list, media_type=movie, criteria={service: "plex", operation: "refresh"}

Always use the parse_media_command function to return structured data.`

// BuildPrompt renders the system prompt for the given discovery snapshot.
// Only available backends are listed; missing TV or movie support is called
// out so the model does not emit those media types.
func BuildPrompt(descriptors []registry.Descriptor) string {
	var b strings.Builder
	b.WriteString(promptHeader)

	b.WriteString("\nAvailable services:\n")
	available := make(map[string]bool)
	for _, d := range descriptors {
		if !d.Available {
			continue
		}
		available[d.Type] = true
		line := d.Type
		if p, ok := registry.ProductFor(d.Type); ok {
			line = p.Purpose
		}
		fmt.Fprintf(&b, "- %s: %s\n", d.Name, line)
	}
	if len(available) == 0 {
		b.WriteString("- none\n")
	}

	if !available[config.TypeSonarr] {
		b.WriteString("\nNo TV backend (sonarr) is available. Do not use media_type=tv.\n")
	}
	if !available[config.TypeRadarr] {
		b.WriteString("\nNo movie backend (radarr) is available. Do not use media_type=movie.\n")
	}

	b.WriteString(promptExamples)
	return b.String()
}
