package model

import (
	"regexp"
	"strconv"
	"strings"
)

// StoreKind identifies the storefront or rating source a record came from.
type StoreKind string

const (
	StoreSteam      StoreKind = "steam"
	StoreGog        StoreKind = "gog"
	StoreEpic       StoreKind = "epic"
	StoreMetacritic StoreKind = "metacritic"
)

// StoreRecord is the capability shared by all store-specific payloads.
// Each store exposes its identifier, the game's name as that store knows
// it, and a link to the game's page. Any of them may be absent (nil).
type StoreRecord interface {
	StoreID() *string
	StoreName() *string
	StoreLink() *string
}

const (
	steamStoreURL      = "https://store.steampowered.com/app/"
	epicStoreURL       = "https://store.epicgames.com/p/"
	metacriticBaseURL  = "https://www.metacritic.com/game/"
	epicSearchBaseURL  = "https://store.epicgames.com/browse?q="
)

// SteamData is the Steam store payload. The name may differ from the
// canonical name.
type SteamData struct {
	AppID *int    `json:"app_id,omitempty"`
	Name  *string `json:"name,omitempty"`
}

func (d SteamData) StoreID() *string {
	if d.AppID == nil {
		return nil
	}
	s := strconv.Itoa(*d.AppID)
	return &s
}

func (d SteamData) StoreName() *string { return d.Name }

func (d SteamData) StoreLink() *string {
	if d.AppID == nil {
		return nil
	}
	s := steamStoreURL + strconv.Itoa(*d.AppID)
	return &s
}

// GogData is the GOG store payload.
type GogData struct {
	GogID *int64  `json:"gog_id,omitempty"`
	Name  *string `json:"name,omitempty"`
	Link  *string `json:"link,omitempty"`
}

func (d GogData) StoreID() *string {
	if d.GogID == nil {
		return nil
	}
	s := strconv.FormatInt(*d.GogID, 10)
	return &s
}

func (d GogData) StoreName() *string { return d.Name }

// StoreLink returns the explicit link if one was provided. GOG store
// pages use slugified game names rather than ids, so a link cannot be
// reconstructed from the id alone.
func (d GogData) StoreLink() *string {
	if d.Link != nil && strings.TrimSpace(*d.Link) != "" {
		return d.Link
	}
	return nil
}

// EpicData is the Epic Games store payload.
type EpicData struct {
	EpicID *string `json:"epic_id,omitempty"`
	Name   *string `json:"name,omitempty"`
	Link   *string `json:"link,omitempty"`
}

func (d EpicData) StoreID() *string   { return d.EpicID }
func (d EpicData) StoreName() *string { return d.Name }

// StoreLink prefers the explicit link, but only when its /p/ slug does
// not look like a raw UUID (scraped sources sometimes hand us internal
// ids instead of slugs). A non-UUID EpicID builds a /p/ link; otherwise
// fall back to a store search by name.
func (d EpicData) StoreLink() *string {
	if d.Link != nil {
		if id := epicIDFromLink(*d.Link); id != "" && !isUUIDLike(id) {
			return d.Link
		}
	}
	if d.EpicID != nil && *d.EpicID != "" && !isUUIDLike(*d.EpicID) {
		s := epicStoreURL + *d.EpicID
		return &s
	}
	if d.Name != nil && strings.TrimSpace(*d.Name) != "" {
		s := epicSearchBaseURL + strings.ReplaceAll(*d.Name, " ", "%20")
		return &s
	}
	return nil
}

var hexRe = regexp.MustCompile(`^[0-9a-fA-F]+$`)

// isUUIDLike reports whether id is 32 hex chars, with or without dashes,
// e.g. "d4b6a615ea794a6295d34608c5426d4f".
func isUUIDLike(id string) bool {
	normalized := strings.ReplaceAll(id, "-", "")
	return len(normalized) == 32 && hexRe.MatchString(normalized)
}

// epicIDFromLink extracts the slug after /p/ from an Epic store URL,
// stripping query params and fragments. Empty when the URL has no /p/
// segment.
func epicIDFromLink(url string) string {
	idx := strings.Index(url, "/p/")
	if idx < 0 || idx+3 >= len(url) {
		return ""
	}
	id := url[idx+3:]
	if end := strings.IndexAny(id, "?/#"); end > 0 {
		id = id[:end]
	}
	return id
}

// MetacriticData is the Metacritic payload. Metacritic has no numeric
// ids; the slugified game name serves as the identifier.
type MetacriticData struct {
	Score    *int    `json:"score,omitempty"`
	GameName *string `json:"game_name,omitempty"`
	Link     *string `json:"link,omitempty"`
}

func (d MetacriticData) StoreID() *string {
	if d.GameName == nil {
		return nil
	}
	s := Slugify(*d.GameName)
	return &s
}

func (d MetacriticData) StoreName() *string { return d.GameName }

func (d MetacriticData) StoreLink() *string {
	if d.Link != nil && strings.TrimSpace(*d.Link) != "" {
		return d.Link
	}
	if d.GameName != nil && strings.TrimSpace(*d.GameName) != "" {
		s := metacriticBaseURL + Slugify(*d.GameName)
		return &s
	}
	return nil
}

var (
	slugStripRe    = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpaceRe    = regexp.MustCompile(`\s+`)
	slugHyphenRe   = regexp.MustCompile(`-+`)
	slugEdgeRe     = regexp.MustCompile(`^-|-$`)
)

// Slugify converts a game name to a Metacritic-style URL slug:
// "The Witcher 3: Wild Hunt" -> "the-witcher-3-wild-hunt".
func Slugify(name string) string {
	s := strings.ToLower(name)
	s = slugStripRe.ReplaceAllString(s, "")
	s = slugSpaceRe.ReplaceAllString(s, "-")
	s = slugHyphenRe.ReplaceAllString(s, "-")
	s = slugEdgeRe.ReplaceAllString(s, "")
	return s
}
