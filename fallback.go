package headlines

// FallbackSource labels the static placeholder headlines.
const FallbackSource = "Fallback"

// Fallback returns the static headlines shown when no live source is
// available. A fresh slice is returned on every call.
func Fallback() []*Headline {
	return []*Headline{
		{Type: TypeCorporate, Text: "Tech startup raises $10M in Series A funding", Source: FallbackSource},
		{Type: TypeWeather, Text: "Mild temperatures continue through weekend", Source: FallbackSource},
		{Type: TypeMarket, Text: "Markets close slightly higher on light trading", Source: FallbackSource},
		{Type: TypeTraffic, Text: "Highway construction enters final phase", Source: FallbackSource},
	}
}
