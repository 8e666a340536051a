package form

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func parseURLEncoded(t *testing.T, body url.Values) *Form {
	t.Helper()
	r := httptest.NewRequest("POST", "/", strings.NewReader(body.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	f, err := Parse(r)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return f
}

func parseJSON(t *testing.T, body string) *Form {
	t.Helper()
	r := httptest.NewRequest("POST", "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	f, err := Parse(r)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return f
}

func TestHasDistinguishesAbsentFromEmpty(t *testing.T) {
	f := parseURLEncoded(t, url.Values{"name": {""}})
	if !f.Has("name") {
		t.Error("empty field should be present")
	}
	if f.Has("price") {
		t.Error("unsent field should be absent")
	}
}

func TestPriceCoercion(t *testing.T) {
	cases := []struct {
		raw   string
		valid bool
		want  string
	}{
		{"42.5", true, "42.5"},
		{"", false, ""},
		{"abc", false, ""},
		{"15", true, "15"},
	}
	for _, c := range cases {
		f := parseURLEncoded(t, url.Values{"price": {c.raw}})
		p := f.Price("price")
		if p.Valid != c.valid {
			t.Errorf("Price(%q).Valid = %v, want %v", c.raw, p.Valid, c.valid)
			continue
		}
		if c.valid && p.Decimal.String() != c.want {
			t.Errorf("Price(%q) = %s, want %s", c.raw, p.Decimal.String(), c.want)
		}
	}
}

func TestJSONNullCoercesToNullPrice(t *testing.T) {
	f := parseJSON(t, `{"id": 3, "price": null}`)
	if !f.Has("price") {
		t.Fatal("null price should still count as present")
	}
	if f.Price("price").Valid {
		t.Error("null price should coerce to null")
	}
	if id, ok := f.Int("id"); !ok || id != 3 {
		t.Errorf("Int(id) = %d, %v; want 3, true", id, ok)
	}
}

func TestJSONNumbersAndBools(t *testing.T) {
	f := parseJSON(t, `{"category_id": 7, "is_available": true}`)
	if id, ok := f.Int("category_id"); !ok || id != 7 {
		t.Errorf("Int(category_id) = %d, %v; want 7, true", id, ok)
	}
	if !f.Bool("is_available") {
		t.Error("is_available true should coerce to true")
	}
}

func TestIntRejectsGarbage(t *testing.T) {
	f := parseURLEncoded(t, url.Values{"id": {"12x"}})
	if _, ok := f.Int("id"); ok {
		t.Error("non-numeric id should not parse")
	}
}
