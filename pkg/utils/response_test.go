package utils

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

// pageOn runs NewPage inside a real request so BaseURL, path and query
// parameters behave the way they do in handlers.
func pageOn(t *testing.T, target string, count int64, page int) *Page {
	t.Helper()

	var got *Page
	app := fiber.New()
	app.Get("/api/v1/cattle", func(c *fiber.Ctx) error {
		got = NewPage(c, count, page, DefaultPageSize, []string{})
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	return got
}

func TestNewPageLinks(t *testing.T) {
	// 45 records over page size 20: three pages.
	p := pageOn(t, "http://example.com/api/v1/cattle?page=2&sex=cow", 45, 2)

	if p.Count != 45 {
		t.Errorf("count = %d", p.Count)
	}
	if p.Next == nil {
		t.Fatal("next missing")
	}
	if !strings.Contains(*p.Next, "page=3") || !strings.Contains(*p.Next, "sex=cow") {
		t.Errorf("next = %s", *p.Next)
	}
	if !strings.HasPrefix(*p.Next, "http://example.com/api/v1/cattle?") {
		t.Errorf("next not absolute: %s", *p.Next)
	}
	if p.Previous == nil || !strings.Contains(*p.Previous, "page=1") {
		t.Errorf("previous = %v", p.Previous)
	}
}

func TestNewPageBoundaries(t *testing.T) {
	first := pageOn(t, "http://example.com/api/v1/cattle", 45, 1)
	if first.Previous != nil {
		t.Errorf("first page previous = %v", *first.Previous)
	}
	if first.Next == nil {
		t.Error("first page next missing")
	}

	last := pageOn(t, "http://example.com/api/v1/cattle?page=3", 45, 3)
	if last.Next != nil {
		t.Errorf("last page next = %v", *last.Next)
	}
	if last.Previous == nil {
		t.Error("last page previous missing")
	}

	empty := pageOn(t, "http://example.com/api/v1/cattle", 0, 1)
	if empty.Next != nil || empty.Previous != nil {
		t.Errorf("empty page links: next=%v previous=%v", empty.Next, empty.Previous)
	}
}
