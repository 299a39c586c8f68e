package entity

import "time"

type PolicyDocument struct {
	Id          uint
	PolicyType  string
	Title       string
	Content     string
	SourceURL   string
	LastUpdated time.Time
	Metadata    map[string]interface{}
}
