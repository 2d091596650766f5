// In-memory fakes for driver.Page and driver.Element.

package drivertest

import (
	"go-leadgen-automation/internal/driver"
)

// FakeElement implements driver.Element from static data.
type FakeElement struct {
	// Children maps a selector to the element Query returns for it.
	Children map[string]*FakeElement
	// QueryErrs maps a selector to a lookup failure.
	QueryErrs map[string]error

	Text    string
	TextErr error
	Attrs   map[string]string
	AttrErr error
}

func (e *FakeElement) Query(selector string) (driver.Element, error) {
	if err := e.QueryErrs[selector]; err != nil {
		return nil, err
	}
	child, ok := e.Children[selector]
	if !ok {
		return nil, nil
	}
	return child, nil
}

func (e *FakeElement) InnerText() (string, error) {
	return e.Text, e.TextErr
}

func (e *FakeElement) Attribute(name string) (string, error) {
	if e.AttrErr != nil {
		return "", e.AttrErr
	}
	return e.Attrs[name], nil
}

// FakePage implements driver.Page from static data.
type FakePage struct {
	// NavigateFunc, when set, decides the outcome of Navigate per URL.
	NavigateFunc func(url string) error
	WaitErr      error
	// Elements maps a selector to the elements QueryAll returns.
	Elements map[string][]driver.Element

	NavigatedURLs []string
	Screenshots   []string
}

func (p *FakePage) Navigate(url string, timeoutMS float64) error {
	p.NavigatedURLs = append(p.NavigatedURLs, url)
	if p.NavigateFunc != nil {
		return p.NavigateFunc(url)
	}
	return nil
}

func (p *FakePage) WaitForSelector(selector string, timeoutMS float64) error {
	return p.WaitErr
}

func (p *FakePage) QueryAll(selector string) ([]driver.Element, error) {
	return p.Elements[selector], nil
}

func (p *FakePage) Evaluate(expression string) (interface{}, error) {
	return float64(0), nil
}

func (p *FakePage) Screenshot(path string) error {
	p.Screenshots = append(p.Screenshots, path)
	return nil
}
