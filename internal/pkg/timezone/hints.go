package timezone

// Hint maps a case-insensitive keyword found in a free-text location to an
// IANA zone identifier. Hints are evaluated in order; first match wins.
type Hint struct {
	Keyword string
	Zone    string
}

// DefaultHints covers the regions our customers are concentrated in. Append
// new entries here; the resolver never needs to change.
func DefaultHints() []Hint {
	return []Hint{
		{Keyword: "jakarta", Zone: "Asia/Jakarta"},
		{Keyword: "bandung", Zone: "Asia/Jakarta"},
		{Keyword: "surabaya", Zone: "Asia/Jakarta"},
		{Keyword: "bali", Zone: "Asia/Makassar"},
		{Keyword: "dhaka", Zone: "Asia/Dhaka"},
		{Keyword: "singapore", Zone: "Asia/Singapore"},
		{Keyword: "kuala lumpur", Zone: "Asia/Kuala_Lumpur"},
		{Keyword: "manila", Zone: "Asia/Manila"},
		{Keyword: "tokyo", Zone: "Asia/Tokyo"},
		{Keyword: "seoul", Zone: "Asia/Seoul"},
		{Keyword: "mumbai", Zone: "Asia/Kolkata"},
		{Keyword: "delhi", Zone: "Asia/Kolkata"},
		{Keyword: "karachi", Zone: "Asia/Karachi"},
		{Keyword: "dubai", Zone: "Asia/Dubai"},
		{Keyword: "sydney", Zone: "Australia/Sydney"},
		{Keyword: "melbourne", Zone: "Australia/Melbourne"},
		{Keyword: "london", Zone: "Europe/London"},
		{Keyword: "berlin", Zone: "Europe/Berlin"},
		{Keyword: "paris", Zone: "Europe/Paris"},
		{Keyword: "amsterdam", Zone: "Europe/Amsterdam"},
		{Keyword: "new york", Zone: "America/New_York"},
		{Keyword: "chicago", Zone: "America/Chicago"},
		{Keyword: "san francisco", Zone: "America/Los_Angeles"},
		{Keyword: "los angeles", Zone: "America/Los_Angeles"},
		{Keyword: "toronto", Zone: "America/Toronto"},
		{Keyword: "sao paulo", Zone: "America/Sao_Paulo"},
	}
}
