package search

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrMissingItems is returned when a page lacks the items key and the
	// variant does not allow that.
	ErrMissingItems = errors.New("page has no items key")
	// ErrMissingTitle is returned when an item's snippet carries no title.
	ErrMissingTitle = errors.New("item has no title")
)

// Page is one page of results, items in response order.
type Page struct {
	Items []Item
}

type Item struct {
	ID      ItemID
	Snippet Snippet
}

// ItemID keeps key presence: a nil field means the key was absent.
type ItemID struct {
	VideoID   *string
	ChannelID *string
}

type Snippet struct {
	Title       *string
	Description *string
}

// Keys are matched exactly; encoding/json struct decoding would fold case.
func (it *Item) UnmarshalJSON(b []byte) error {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	if raw, ok := m["id"]; ok && !isNull(raw) {
		if err := json.Unmarshal(raw, &it.ID); err != nil {
			return errors.Wrap(err, "id")
		}
	}
	if raw, ok := m["snippet"]; ok && !isNull(raw) {
		if err := json.Unmarshal(raw, &it.Snippet); err != nil {
			return errors.Wrap(err, "snippet")
		}
	}
	return nil
}

func (id *ItemID) UnmarshalJSON(b []byte) error {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	id.VideoID = stringField(m, "videoId")
	id.ChannelID = stringField(m, "channelId")
	return nil
}

func (s *Snippet) UnmarshalJSON(b []byte) error {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	s.Title = stringField(m, "title")
	s.Description = stringField(m, "description")
	return nil
}

// stringField returns the value under key; non-string scalars keep their JSON text.
func stringField(m map[string]json.RawMessage, key string) *string {
	raw, ok := m[key]
	if !ok || isNull(raw) {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		s = strings.TrimSpace(string(raw))
	}
	return &s
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// DecodePages parses a response body: a JSON array of page objects, each
// listing items under itemsKey.
func DecodePages(body []byte, itemsKey string, itemsRequired bool) ([]Page, error) {
	var rawPages []json.RawMessage
	if err := json.Unmarshal(body, &rawPages); err != nil {
		return nil, errors.Wrap(err, "decode pages")
	}
	pages := make([]Page, 0, len(rawPages))
	for i, rp := range rawPages {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(rp, &obj); err != nil {
			return nil, errors.Wrapf(err, "decode page %d", i)
		}
		rawItems, ok := obj[itemsKey]
		if !ok {
			if itemsRequired {
				return nil, errors.Wrapf(ErrMissingItems, "page %d: key %q", i, itemsKey)
			}
			pages = append(pages, Page{})
			continue
		}
		var items []json.RawMessage
		if err := json.Unmarshal(rawItems, &items); err != nil {
			return nil, errors.Wrapf(err, "decode page %d items", i)
		}
		page := Page{Items: make([]Item, 0, len(items))}
		for j, ri := range items {
			if isNull(ri) {
				continue
			}
			var it Item
			if err := json.Unmarshal(ri, &it); err != nil {
				return nil, errors.Wrapf(err, "decode page %d item %d", i, j)
			}
			page.Items = append(page.Items, it)
		}
		pages = append(pages, page)
	}
	return pages, nil
}

// ItemCount is the number of items across all pages.
func ItemCount(pages []Page) int {
	n := 0
	for _, p := range pages {
		n += len(p.Items)
	}
	return n
}
