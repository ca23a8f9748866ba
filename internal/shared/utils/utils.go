package utils

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/hibiken/asynq"
)

// UnmarshalTask decodes an asynq task payload into dest
func UnmarshalTask(t *asynq.Task, dest interface{}) error {
	if err := json.Unmarshal(t.Payload(), dest); err != nil {
		return fmt.Errorf("unmarshal task %s: %w", t.Type(), err)
	}
	return nil
}

var (
	slugInvalidChars = regexp.MustCompile("[^a-z0-9-]+")
	slugDashRuns     = regexp.MustCompile("-+")
)

// GenerateSlug builds a URL slug from a product title
func GenerateSlug(title string) string {
	slug := strings.ToLower(title)
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = slugInvalidChars.ReplaceAllString(slug, "")
	slug = slugDashRuns.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
