package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// versionTag is fixed, it is not derived from build metadata.
const versionTag = "v1.0.0"

// updatePlaceholder is left in the file verbatim for the app's own f-string
// interpolation.
const updatePlaceholder = "{update_message}"

func dateStamp(t time.Time) string {
	return t.Format("20060102")
}

func timeStamp(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}

// shortID returns the first 4 characters of a lowercased UUID.
func shortID() string {
	return strings.ToLower(uuid.NewString())[:4]
}

// newCaption builds "v1.0.0-20250321.1a2b", full mode wraps it in the update
// banner.
func newCaption(t time.Time, id string, full bool) string {
	caption := fmt.Sprintf("%s-%s.%s", versionTag, dateStamp(t), id)
	if full {
		caption = fmt.Sprintf("⚙️ %s - %s", caption, updatePlaceholder)
	}

	return caption
}
