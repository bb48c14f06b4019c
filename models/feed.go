package models

// FeedDocument is the shape of the bangers.json catalog feed: each
// category is an ordered list of records shaped like its variant.
// Missing categories simply contribute no entries.
type FeedDocument struct {
	Quotes       []string      `json:"quotes"`
	Memes        []Meme        `json:"memes"`
	Videos       []Video       `json:"videos"`
	DoubleImages []DoubleImage `json:"double-images"`
	QuadImages   []QuadImage   `json:"quad-images"`
	Images       []string      `json:"images"`
	Gifs         []string      `json:"gifs"`
}

type ResponseHTTP struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}
