// Package platform holds the static catalog of profile-hosting sites that
// probes are issued against. The catalog is fixed at build time; a YAML
// override file can adjust or extend URL templates but ids are never
// registered dynamically at runtime.
package platform

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Entry maps a platform id to its profile URL template. The template
// contains a single %s placeholder for the username.
type Entry struct {
	ID          string `yaml:"id" json:"id"`
	URLTemplate string `yaml:"url_template" json:"url_template"`
}

// builtInEntries is the default probing catalog.
var builtInEntries = []Entry{
	{ID: "twitter", URLTemplate: "https://twitter.com/%s"},
	{ID: "instagram", URLTemplate: "https://www.instagram.com/%s"},
	{ID: "facebook", URLTemplate: "https://www.facebook.com/%s"},
	{ID: "linkedin", URLTemplate: "https://www.linkedin.com/in/%s"},
	{ID: "github", URLTemplate: "https://github.com/%s"},
	{ID: "pinterest", URLTemplate: "https://www.pinterest.com/%s"},
	{ID: "tiktok", URLTemplate: "https://www.tiktok.com/@%s"},
	{ID: "behance", URLTemplate: "https://www.behance.net/%s"},
	{ID: "dribbble", URLTemplate: "https://dribbble.com/%s"},
	{ID: "medium", URLTemplate: "https://medium.com/@%s"},
	{ID: "youtube", URLTemplate: "https://www.youtube.com/user/%s"},
	{ID: "reddit", URLTemplate: "https://www.reddit.com/user/%s"},
	{ID: "telegram", URLTemplate: "https://t.me/%s"},
	{ID: "twitch", URLTemplate: "https://www.twitch.tv/%s"},
	{ID: "snapchat", URLTemplate: "https://www.snapchat.com/add/%s"},
}

// professionalPlatforms get a flat confidence bonus when a profile exists.
var professionalPlatforms = map[string]struct{}{
	"linkedin": {},
	"github":   {},
	"behance":  {},
	"dribbble": {},
}

// Registry is an immutable platform catalog.
type Registry struct {
	entries []Entry
	byID    map[string]Entry
}

// NewRegistry builds a registry from the given entries.
func NewRegistry(entries []Entry) *Registry {
	byID := make(map[string]Entry, len(entries))
	position := make(map[string]int, len(entries))
	kept := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		id := strings.ToLower(strings.TrimSpace(entry.ID))
		if id == "" || strings.TrimSpace(entry.URLTemplate) == "" {
			continue
		}
		entry.ID = id
		if i, ok := position[id]; ok {
			kept[i] = entry
		} else {
			position[id] = len(kept)
			kept = append(kept, entry)
		}
		byID[id] = entry
	}
	return &Registry{entries: kept, byID: byID}
}

// Default returns the built-in registry.
func Default() *Registry {
	return NewRegistry(builtInEntries)
}

// All returns the catalog entries in declaration order.
func (r *Registry) All() []Entry {
	if r == nil {
		return nil
	}
	entries := make([]Entry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// IDs returns the sorted set of platform ids.
func (r *Registry) IDs() []string {
	if r == nil {
		return nil
	}
	ids := make([]string, 0, len(r.entries))
	for _, entry := range r.entries {
		ids = append(ids, entry.ID)
	}
	sort.Strings(ids)
	return ids
}

// Len reports the number of catalog entries.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}

// Lookup finds a platform entry by id.
func (r *Registry) Lookup(id string) (Entry, bool) {
	if r == nil {
		return Entry{}, false
	}
	entry, ok := r.byID[strings.ToLower(strings.TrimSpace(id))]
	return entry, ok
}

// ProfileURL substitutes the username into the platform URL template.
func (r *Registry) ProfileURL(id, username string) (string, error) {
	entry, ok := r.Lookup(id)
	if !ok {
		return "", fmt.Errorf("unknown platform: %s", id)
	}
	return fmt.Sprintf(entry.URLTemplate, url.PathEscape(username)), nil
}

// IsProfessional reports whether the platform carries the professional
// scoring bonus.
func IsProfessional(id string) bool {
	_, ok := professionalPlatforms[strings.ToLower(strings.TrimSpace(id))]
	return ok
}
