package scraper

import "fmt"

// InvalidURLError means no player id could be extracted from the submitted
// URL. It is one of the two conditions fatal to a whole extraction.
type InvalidURLError struct {
	URL string
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("player id not found in URL %q", e.URL)
}

// NetworkError wraps a transport failure, timeout, or non-200 response. The
// other fatal condition: a page that cannot be fetched yields no partial
// record.
type NetworkError struct {
	URL        string
	StatusCode int // 0 when the request never completed
	Err        error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch %s: status %d", e.URL, e.StatusCode)
}

func (e *NetworkError) Unwrap() error { return e.Err }
