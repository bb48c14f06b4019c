package models

// Kind identifies the shape of a catalog entry. Every entry has exactly
// one kind and carries exactly the fields that kind declares.
type Kind string

const (
	KindQuote       Kind = "quote"
	KindMeme        Kind = "meme"
	KindVideo       Kind = "video"
	KindGif         Kind = "gif"
	KindImage       Kind = "image"
	KindDoubleImage Kind = "double-image"
	KindQuadImage   Kind = "quad-image"
)

// Kinds lists every content kind in the order sources are concatenated
// during catalog construction.
var Kinds = []Kind{
	KindQuote,
	KindMeme,
	KindVideo,
	KindDoubleImage,
	KindQuadImage,
	KindImage,
	KindGif,
}

// Content is the sum of the seven entry shapes. Consumers switch on the
// concrete type rather than sniffing fields so a new shape can't slip
// through a renderer unnoticed.
type Content interface {
	Kind() Kind
}

type Quote struct {
	Text string `json:"content"`
}

func (Quote) Kind() Kind { return KindQuote }

type Meme struct {
	ImageURL string `json:"image"`
	Caption  string `json:"caption"`
}

func (Meme) Kind() Kind { return KindMeme }

type Video struct {
	VideoURL string `json:"src"`
	Caption  string `json:"caption"`
}

func (Video) Kind() Kind { return KindVideo }

type Gif struct {
	ImageURL string `json:"image"`
}

func (Gif) Kind() Kind { return KindGif }

type Image struct {
	ImageURL string `json:"image"`
}

func (Image) Kind() Kind { return KindImage }

type DoubleImage struct {
	LeftURL  string `json:"leftImage"`
	RightURL string `json:"rightImage"`
	Caption  string `json:"caption"`
}

func (DoubleImage) Kind() Kind { return KindDoubleImage }

type QuadImage struct {
	TopLeftURL     string `json:"topLeftImage"`
	TopRightURL    string `json:"topRightImage"`
	BottomLeftURL  string `json:"bottomLeftImage"`
	BottomRightURL string `json:"bottomRightImage"`
	Caption        string `json:"caption"`
}

func (QuadImage) Kind() Kind { return KindQuadImage }

// ContentEntry is one unit of displayable content in the catalog.
// The ID is deterministic over the entry's fields so rebuilding the same
// catalog yields the same IDs.
type ContentEntry struct {
	ID      string  `json:"id"`
	Content Content `json:"content"`
}
