// Package festival turns the configured MM-DD festival table into the
// reminder lines shown in notifications and `dwr festival upcoming`.
package festival

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// lookahead window in days for festival reminders
const window = 3

// Messages returns one line per festival falling within the next few days,
// sorted by how soon they are. Malformed MM-DD keys are skipped.
func Messages(festivals map[string]string, today time.Time) []string {
	type hit struct {
		delta int
		text  string
	}
	var hits []hit

	for key, name := range festivals {
		var mm, dd int
		if _, err := fmt.Sscanf(key, "%d-%d", &mm, &dd); err != nil {
			continue
		}
		fdate := time.Date(today.Year(), time.Month(mm), dd, 0, 0, 0, 0, today.Location())
		if fdate.Month() != time.Month(mm) || fdate.Day() != dd {
			continue
		}

		midnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
		delta := int(fdate.Sub(midnight).Hours() / 24)
		if delta < 0 || delta > window {
			continue
		}

		var text string
		switch delta {
		case 0:
			text = fmt.Sprintf("🎊 今天是%s！", name)
		case 1:
			text = fmt.Sprintf("🎈 明天是%s", name)
		default:
			text = fmt.Sprintf("🎁 %s还有%d天", name, delta)
		}
		hits = append(hits, hit{delta: delta, text: text})
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].delta < hits[j].delta })

	texts := make([]string, len(hits))
	for i, h := range hits {
		texts[i] = h.text
	}
	return texts
}

// Text joins the current festival messages into the single status line shown
// alongside the date.
func Text(festivals map[string]string, today time.Time) string {
	return strings.Join(Messages(festivals, today), " | ")
}

// ValidKey reports whether key is a usable MM-DD entry.
func ValidKey(key string) bool {
	var mm, dd int
	if _, err := fmt.Sscanf(key, "%d-%d", &mm, &dd); err != nil {
		return false
	}
	return mm >= 1 && mm <= 12 && dd >= 1 && dd <= 31
}
