package catalog

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func abc() Catalog {
	return MustNew(
		Card{ID: "a", Title: "A", Source: "a.mp4"},
		Card{ID: "b", Title: "B", Source: "b.mp4"},
		Card{ID: "c", Title: "C", Source: "c.mp4"},
	)
}

func ids(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.ID
	}
	return strings.Join(parts, ",")
}

func TestNew_RejectsEmpty(t *testing.T) {
	if _, err := New(); !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
}

func TestNew_RejectsDuplicateID(t *testing.T) {
	_, err := New(Card{ID: "a", Source: "1.mp4"}, Card{ID: "a", Source: "2.mp4"})
	if !errors.Is(err, ErrDuplicateID) {
		t.Errorf("expected ErrDuplicateID, got %v", err)
	}
}

func TestNew_RejectsDuplicateSource(t *testing.T) {
	_, err := New(Card{ID: "a", Source: "1.mp4"}, Card{ID: "b", Source: "1.mp4"})
	if !errors.Is(err, ErrDuplicateFile) {
		t.Errorf("expected ErrDuplicateFile, got %v", err)
	}
}

func TestNew_RejectsMissingSource(t *testing.T) {
	if _, err := New(Card{ID: "a"}); err == nil {
		t.Error("expected error for card without source")
	}
}

func TestFeatured_IsFirstCard(t *testing.T) {
	if got := abc().Featured().ID; got != "a" {
		t.Errorf("expected featured a, got %s", got)
	}
}

func TestPreviews_ExcludeMainSource(t *testing.T) {
	tests := []struct {
		main string
		want string
	}{
		{"a.mp4", "b,c"},
		{"b.mp4", "a,c"},
		{"c.mp4", "a,b"},
		{"unknown.mp4", "a,b,c"},
	}
	for _, tt := range tests {
		t.Run(tt.main, func(t *testing.T) {
			if got := ids(abc().Previews(tt.main)); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestCards_ReturnsCopy(t *testing.T) {
	c := abc()
	cards := c.Cards()
	cards[0].ID = "mutated"
	if c.Featured().ID != "a" {
		t.Error("expected catalog to be unaffected by caller mutation")
	}
}

func TestLookupAndBySource(t *testing.T) {
	c := abc()
	if card, ok := c.Lookup("b"); !ok || card.Source != "b.mp4" {
		t.Errorf("expected lookup of b to succeed, got %+v %v", card, ok)
	}
	if _, ok := c.Lookup("z"); ok {
		t.Error("expected lookup of unknown id to fail")
	}
	if card, ok := c.BySource("c.mp4"); !ok || card.ID != "c" {
		t.Errorf("expected c for c.mp4, got %+v %v", card, ok)
	}
}

type prefixResolver struct{ fail string }

func (r prefixResolver) URL(_ context.Context, name string) (string, error) {
	if name == r.fail {
		return "", errors.New("boom")
	}
	return "/media/" + name, nil
}

func TestResolve_RewritesSources(t *testing.T) {
	resolved, err := abc().Resolve(context.Background(), prefixResolver{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := resolved.Featured().Source; got != "/media/a.mp4" {
		t.Errorf("expected /media/a.mp4, got %s", got)
	}
	if got := ids(resolved.Previews("/media/b.mp4")); got != "a,c" {
		t.Errorf("expected a,c, got %s", got)
	}
}

func TestResolve_PropagatesError(t *testing.T) {
	_, err := abc().Resolve(context.Background(), prefixResolver{fail: "b.mp4"})
	if err == nil || !strings.Contains(err.Error(), "resolve b") {
		t.Errorf("expected resolve error for b, got %v", err)
	}
}

func TestDefault_FeaturesRusticBean(t *testing.T) {
	c := Default()
	if c.Featured().Title != "The Rustic Bean" {
		t.Errorf("expected The Rustic Bean, got %s", c.Featured().Title)
	}
	if len(c.Previews(c.Featured().Source)) != c.Len()-1 {
		t.Error("expected every other card as preview")
	}
}
