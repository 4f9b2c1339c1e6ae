package theader

type (
	Header struct {
		MagicNumber       uint32 `json:"magic_number"`
		BackgroundUnknown uint8  `json:"background_unknown"`
		BackgroundColor   uint8  `json:"background_color"`
		Title             string `json:"title"`
		Description       string `json:"description"`
	}
)

const (
	MagicNumber uint32 = 0xEFAC1301
	// FixedSize counts the magic and the background pair.
	FixedSize = 6
)
