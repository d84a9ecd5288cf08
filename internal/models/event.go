package models

import (
	"encoding/json"
	"time"
)

// Event represents an AWS EventBridge event.
type Event struct {
	ID         string          `json:"id"`
	Time       time.Time       `json:"time"`
	Region     string          `json:"region"`
	Source     string          `json:"source"`
	Account    string          `json:"account"`
	Version    string          `json:"version"`
	Detail     json.RawMessage `json:"detail"`
	DetailType string          `json:"detail-type"`
	Resources  []string        `json:"resources"`
}

// ObjectCreatedDetail is the detail payload of an S3 "Object Created" EventBridge event.
type ObjectCreatedDetail struct {
	Bucket struct {
		Name string `json:"name"`
	} `json:"bucket"`
	Object struct {
		Key       string `json:"key"`
		Size      int64  `json:"size"`
		VersionID string `json:"version-id,omitempty"`
	} `json:"object"`
}
