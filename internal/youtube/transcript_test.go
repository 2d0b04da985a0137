package youtube

import (
	"testing"
)

func TestRetrieveVideoID(t *testing.T) {
	cases := map[string]string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ":       "dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ":                      "dQw4w9WgXcQ",
		"https://www.youtube.com/embed/dQw4w9WgXcQ":         "dQw4w9WgXcQ",
		"https://www.youtube.com/watch?list=x&v=dQw4w9WgXcQ": "dQw4w9WgXcQ",
		"dQw4w9WgXcQ":                                       "dQw4w9WgXcQ",
	}
	for url, want := range cases {
		got, err := retrieveVideoID(url)
		if err != nil {
			t.Errorf("retrieveVideoID(%q) failed: %v", url, err)
			continue
		}
		if got != want {
			t.Errorf("retrieveVideoID(%q) = %q, want %q", url, got, want)
		}
	}

	for _, url := range []string{"", "https://example.com/video", "not a url"} {
		if _, err := retrieveVideoID(url); err == nil {
			t.Errorf("retrieveVideoID(%q) should fail", url)
		}
	}
}

func TestJoinFragments(t *testing.T) {
	t.Run("SingleSpaceJoin", func(t *testing.T) {
		fragments := []Fragment{{Text: "olá"}, {Text: "mundo"}, {Text: "aqui"}}
		if got := JoinFragments(fragments); got != "olá mundo aqui" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("AbsentTextIsEmptyString", func(t *testing.T) {
		fragments := []Fragment{{Text: "a"}, {}, {Text: "b"}}
		if got := JoinFragments(fragments); got != "a  b" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("HTMLEntitiesUnescaped", func(t *testing.T) {
		fragments := []Fragment{{Text: "p &amp; q"}, {Text: "&#39;ok&#39;"}}
		if got := JoinFragments(fragments); got != "p & q 'ok'" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		if got := JoinFragments(nil); got != "" {
			t.Errorf("got %q", got)
		}
	})
}
