package helpers

const (
	SuccessStatus = "success"
	ErrorStatus   = "error"
)

const (
	DefaultTake = 250
	MaxTake     = 250
)

const DefaultLang = "en"
