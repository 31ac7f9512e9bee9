package config

import "time"

const defaultFeedURL = "https://www.cbr-xml-daily.ru/daily_json.js"

type CbrConfig struct {
	FeedURL    string        `yaml:"url"`
	ReqTimeout time.Duration `yaml:"timeout"`
}

func (c *CbrConfig) URL() string {
	return c.FeedURL
}

// Timeout of zero means the request may block indefinitely.
func (c *CbrConfig) Timeout() time.Duration {
	return c.ReqTimeout
}
