// Package notify delivers desktop notifications from the watch daemon.
package notify

import (
	"log"

	"github.com/gen2brain/beeep"
)

// Send pops a desktop notification and mirrors it to the log. Delivery
// failures (headless session, missing notification service) are logged and
// swallowed so the daemon keeps running.
func Send(title, message string) {
	if err := beeep.Notify(title, message, ""); err != nil {
		log.Printf("⚠️ Failed to deliver notification %q: %v", title, err)
	}
	log.Printf("🔔 %s: %s", title, message)
}
