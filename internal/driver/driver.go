// Thin abstraction over the browser page so the extraction pipeline can be
// exercised without a running browser. The playwright adapter lives in
// playwright.go; test fakes live in drivertest.

package driver

// Page exposes the page operations the pipeline needs. Every method may
// fail; "no match" is never reported as an error.
type Page interface {
	// Navigate loads url, waiting for DOMContentLoaded at most timeoutMS.
	Navigate(url string, timeoutMS float64) error

	// WaitForSelector blocks until selector matches or timeoutMS elapses.
	WaitForSelector(selector string, timeoutMS float64) error

	// QueryAll returns all elements matching selector. An empty slice with
	// a nil error means nothing matched.
	QueryAll(selector string) ([]Element, error)

	// Evaluate runs a script in the page and returns its value.
	Evaluate(expression string) (interface{}, error)

	// Screenshot writes a full-page capture to path.
	Screenshot(path string) error
}

// Element is a handle to one DOM element.
type Element interface {
	// Query returns the first descendant matching selector, or (nil, nil)
	// when nothing matches. A non-nil error means the lookup itself failed.
	Query(selector string) (Element, error)

	// InnerText returns the rendered text of the element.
	InnerText() (string, error)

	// Attribute returns the value of the named attribute, empty when the
	// attribute is absent.
	Attribute(name string) (string, error)
}
