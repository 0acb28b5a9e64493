package event

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestTimestampTimeLayouts(t *testing.T) {
	cases := []struct {
		raw  string
		ok   bool
		want time.Time
	}{
		{"2030-01-01T10:00", true, time.Date(2030, 1, 1, 10, 0, 0, 0, time.Local)},
		{"2030-01-01T10:00:30", true, time.Date(2030, 1, 1, 10, 0, 30, 0, time.Local)},
		{"2030-01-01", true, time.Date(2030, 1, 1, 0, 0, 0, 0, time.Local)},
		{"2030-01-01T10:00:00Z", true, time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)},
		{"", false, time.Time{}},
		{"not a date", false, time.Time{}},
	}
	for _, tc := range cases {
		got, ok := Timestamp(tc.raw).Time()
		if ok != tc.ok {
			t.Fatalf("%q: parse ok = %v, want %v", tc.raw, ok, tc.ok)
		}
		if ok && !got.Equal(tc.want) {
			t.Fatalf("%q: parsed %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestTimestampAfter(t *testing.T) {
	now := time.Date(2029, 1, 1, 0, 0, 0, 0, time.UTC)
	if !Timestamp("2030-01-01T10:00").After(now) {
		t.Fatalf("future timestamp should be after now")
	}
	if Timestamp("2028-01-01T10:00").After(now) {
		t.Fatalf("past timestamp should not be after now")
	}
	if Timestamp("garbage").After(now) {
		t.Fatalf("unparsable timestamp should never count as upcoming")
	}
}

func TestMarshalWritesBothColorFields(t *testing.T) {
	e := New("Trip", "2030-01-01T10:00", "2030-01-01T12:00")
	e.ID = "abc"
	e.Color = "#FF0000"

	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(data)
	if !strings.Contains(s, `"backgroundColor":"#ff0000"`) {
		t.Fatalf("backgroundColor not normalized in %s", s)
	}
	if !strings.Contains(s, `"borderColor":"#ff0000"`) {
		t.Fatalf("borderColor not written in %s", s)
	}
}

func TestUnmarshalRecoversSingleColor(t *testing.T) {
	raw := `{"id":"1","title":"x","start":"2030-01-01","end":"2030-01-02","description":"","backgroundColor":"#3788d8","borderColor":"#3788d8"}`
	var e Event
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if e.Color != "#3788d8" {
		t.Fatalf("color = %q, want #3788d8", e.Color)
	}

	var blank Event
	if err := json.Unmarshal([]byte(`{"id":"2","title":"y"}`), &blank); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if blank.Color != DefaultColor {
		t.Fatalf("missing color should default, got %q", blank.Color)
	}
}

func TestNormalizeColor(t *testing.T) {
	cases := map[string]string{
		"":         DefaultColor,
		"#3788D8":  "#3788d8",
		"#ff0000":  "#ff0000",
		"purple":   DefaultColor,
		"#zzzzzz":  DefaultColor,
		"not-hex!": DefaultColor,
	}
	for in, want := range cases {
		if got := NormalizeColor(in); got != want {
			t.Fatalf("NormalizeColor(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCollectionFind(t *testing.T) {
	c := Collection{
		{ID: "a", Title: "first"},
		{ID: "b", Title: "second"},
	}
	if got, ok := c.Find("b"); !ok || got.Title != "second" {
		t.Fatalf("Find(b) = %v, %v", got, ok)
	}
	if _, ok := c.Find("missing"); ok {
		t.Fatalf("Find(missing) should report absence")
	}
	if idx := c.IndexOf("a"); idx != 0 {
		t.Fatalf("IndexOf(a) = %d", idx)
	}
	if idx := c.IndexOf("nope"); idx != -1 {
		t.Fatalf("IndexOf(nope) = %d", idx)
	}
}
