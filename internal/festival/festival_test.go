package festival

import (
	"strings"
	"testing"
	"time"
)

func TestMessagesWindow(t *testing.T) {
	festivals := map[string]string{
		"10-01": "国庆节",
		"10-02": "次日节",
		"10-04": "边界节",
		"10-05": "场外节",
		"09-30": "昨日节",
	}
	today := time.Date(2025, 10, 1, 9, 30, 0, 0, time.UTC)

	messages := Messages(festivals, today)
	if len(messages) != 3 {
		t.Fatalf("got %d messages, want 3: %v", len(messages), messages)
	}
	if messages[0] != "🎊 今天是国庆节！" {
		t.Fatalf("today message = %q", messages[0])
	}
	if messages[1] != "🎈 明天是次日节" {
		t.Fatalf("tomorrow message = %q", messages[1])
	}
	if messages[2] != "🎁 边界节还有3天" {
		t.Fatalf("countdown message = %q", messages[2])
	}
}

func TestMessagesSkipsMalformedKeys(t *testing.T) {
	festivals := map[string]string{
		"not-a-date": "bad",
		"13-40":      "impossible",
		"02-30":      "overflow",
	}
	today := time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)

	if messages := Messages(festivals, today); len(messages) != 0 {
		t.Fatalf("malformed keys produced messages: %v", messages)
	}
}

func TestText(t *testing.T) {
	festivals := map[string]string{
		"05-01": "劳动节",
		"05-02": "青年节",
	}
	today := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	text := Text(festivals, today)
	if !strings.Contains(text, " | ") {
		t.Fatalf("text = %q, want pipe-joined lines", text)
	}
	if !strings.HasPrefix(text, "🎊 今天是劳动节！") {
		t.Fatalf("text = %q, today must come first", text)
	}
}

func TestValidKey(t *testing.T) {
	cases := []struct {
		key  string
		want bool
	}{
		{key: "01-01", want: true},
		{key: "12-31", want: true},
		{key: "1-1", want: true},
		{key: "00-10", want: false},
		{key: "13-01", want: false},
		{key: "10-32", want: false},
		{key: "abc", want: false},
	}

	for _, tc := range cases {
		if got := ValidKey(tc.key); got != tc.want {
			t.Fatalf("ValidKey(%q) = %v, want %v", tc.key, got, tc.want)
		}
	}
}
