package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/mediasearch/mediasearch-cli/internal/search"
)

func decode(t *testing.T, body, key string, required bool) []search.Page {
	t.Helper()
	pages, err := search.DecodePages([]byte(body), key, required)
	if err != nil {
		t.Fatalf("DecodePages: %v", err)
	}
	return pages
}

func TestRender_VideoDefaultsDescription(t *testing.T) {
	var out bytes.Buffer
	pages := decode(t, `[{"Items":[{"id":{"videoId":"abc"},"snippet":{"title":"T"}}]}]`, "Items", true)
	if err := Render(&out, pages); err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "URL: https://youtu.be/abc\nTitle: T\nDescription: Unknown\n\n"
	if out.String() != want {
		t.Fatalf("got %q, want %q", out.String(), want)
	}
}

func TestRender_Channel(t *testing.T) {
	var out bytes.Buffer
	pages := decode(t, `[{"Items":[{"id":{"channelId":"xyz"},"snippet":{"title":"T","description":"D"}}]}]`, "Items", true)
	if err := Render(&out, pages); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out.String(), "ChannelURL: https://www.youtube.com/channel/xyz\n") {
		t.Fatalf("missing channel url: %q", out.String())
	}
	if !strings.Contains(out.String(), "Description: D\n") {
		t.Fatalf("missing description: %q", out.String())
	}
}

func TestRender_VideoWinsOverChannel(t *testing.T) {
	var out bytes.Buffer
	pages := decode(t, `[{"Items":[{"id":{"channelId":"c","videoId":"v"},"snippet":{"title":"T"}}]}]`, "Items", true)
	if err := Render(&out, pages); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.HasPrefix(out.String(), "URL: https://youtu.be/v\n") || strings.Contains(out.String(), "ChannelURL") {
		t.Fatalf("videoId should take precedence: %q", out.String())
	}
}

func TestRender_NoIDKeys(t *testing.T) {
	var out bytes.Buffer
	pages := decode(t, `[{"Items":[{"id":{},"snippet":{"title":"T"}}]}]`, "Items", true)
	if err := Render(&out, pages); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(out.String(), "URL:") {
		t.Fatalf("no url line expected: %q", out.String())
	}
	if !strings.Contains(out.String(), "Title: T\n") {
		t.Fatalf("title missing: %q", out.String())
	}
}

func TestRender_MissingTitleFaultsAfterURL(t *testing.T) {
	var out bytes.Buffer
	pages := decode(t, `[{"Items":[{"id":{"videoId":"a"},"snippet":{"title":"A"}},{"id":{"videoId":"b"},"snippet":{"description":"x"}},{"id":{"videoId":"c"},"snippet":{"title":"C"}}]}]`, "Items", true)
	err := Render(&out, pages)
	if !errors.Is(err, search.ErrMissingTitle) {
		t.Fatalf("want ErrMissingTitle, got %v", err)
	}
	got := out.String()
	if !strings.HasSuffix(got, "URL: https://youtu.be/b\n") {
		t.Fatalf("url line of faulting item should be written: %q", got)
	}
	if strings.Contains(got, "youtu.be/c") {
		t.Fatalf("rendering must stop at the fault: %q", got)
	}
}

func TestRender_OrderAndCount(t *testing.T) {
	body := `[
		{"Items":[{"id":{"videoId":"p0i0"},"snippet":{"title":"0-0"}},{"id":{"videoId":"p0i1"},"snippet":{"title":"0-1"}}]},
		{"Items":[]},
		{"Items":[{"id":{"channelId":"p2i0"},"snippet":{"title":"2-0"}},{"id":{"videoId":"p2i1"},"snippet":{"title":"2-1"}},{"id":{"videoId":"p2i1"},"snippet":{"title":"2-1"}}]}
	]`
	var out bytes.Buffer
	if err := Render(&out, decode(t, body, "Items", true)); err != nil {
		t.Fatalf("Render: %v", err)
	}
	var titles []string
	for _, line := range strings.Split(out.String(), "\n") {
		if strings.HasPrefix(line, "Title: ") {
			titles = append(titles, strings.TrimPrefix(line, "Title: "))
		}
	}
	want := []string{"0-0", "0-1", "2-0", "2-1", "2-1"}
	if strings.Join(titles, ",") != strings.Join(want, ",") {
		t.Fatalf("titles = %v, want %v", titles, want)
	}
	if n := strings.Count(out.String(), "Description: "); n != 5 {
		t.Fatalf("want 5 blocks, got %d", n)
	}
}

func TestRender_MissingItemsKeyTolerated(t *testing.T) {
	var out bytes.Buffer
	pages := decode(t, `[{"kind":"page"},{"items":[{"id":{"videoId":"v"},"snippet":{"title":"T"}}]}]`, "items", false)
	if err := Render(&out, pages); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Count(out.String(), "Title: ") != 1 {
		t.Fatalf("want one block: %q", out.String())
	}
}
