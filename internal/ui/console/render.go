package console

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/mediasearch/mediasearch-cli/internal/search"
)

const (
	videoURLPrefix   = "https://youtu.be/"
	channelURLPrefix = "https://www.youtube.com/channel/"
	unknownText      = "Unknown"
)

// Render writes one block per item, pages and items in response order.
// An item without a title stops rendering after its URL line.
func Render(w io.Writer, pages []search.Page) error {
	for i, page := range pages {
		for j, item := range page.Items {
			if err := renderItem(w, item); err != nil {
				return errors.Wrapf(err, "page %d item %d", i, j)
			}
		}
	}
	return nil
}

func renderItem(w io.Writer, item search.Item) error {
	switch {
	case item.ID.VideoID != nil:
		if _, err := fmt.Fprintf(w, "URL: %s%s\n", videoURLPrefix, *item.ID.VideoID); err != nil {
			return err
		}
	case item.ID.ChannelID != nil:
		if _, err := fmt.Fprintf(w, "ChannelURL: %s%s\n", channelURLPrefix, *item.ID.ChannelID); err != nil {
			return err
		}
	}
	if item.Snippet.Title == nil {
		return search.ErrMissingTitle
	}
	desc := unknownText
	if item.Snippet.Description != nil {
		desc = *item.Snippet.Description
	}
	_, err := fmt.Fprintf(w, "Title: %s\nDescription: %s\n\n", *item.Snippet.Title, desc)
	return err
}
