package driver

import (
	"github.com/playwright-community/playwright-go"
)

type pwPage struct {
	page playwright.Page
}

// NewPage wraps a playwright page as a driver.Page.
func NewPage(page playwright.Page) Page {
	return &pwPage{page: page}
}

func (p *pwPage) Navigate(url string, timeoutMS float64) error {
	_, err := p.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(timeoutMS),
	})
	return err
}

func (p *pwPage) WaitForSelector(selector string, timeoutMS float64) error {
	_, err := p.page.WaitForSelector(selector, playwright.PageWaitForSelectorOptions{
		Timeout: playwright.Float(timeoutMS),
	})
	return err
}

func (p *pwPage) QueryAll(selector string) ([]Element, error) {
	handles, err := p.page.QuerySelectorAll(selector)
	if err != nil {
		return nil, err
	}
	elements := make([]Element, len(handles))
	for i, h := range handles {
		elements[i] = &pwElement{handle: h}
	}
	return elements, nil
}

func (p *pwPage) Evaluate(expression string) (interface{}, error) {
	return p.page.Evaluate(expression)
}

func (p *pwPage) Screenshot(path string) error {
	_, err := p.page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	})
	return err
}

type pwElement struct {
	handle playwright.ElementHandle
}

func (e *pwElement) Query(selector string) (Element, error) {
	h, err := e.handle.QuerySelector(selector)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, nil
	}
	return &pwElement{handle: h}, nil
}

func (e *pwElement) InnerText() (string, error) {
	return e.handle.InnerText()
}

func (e *pwElement) Attribute(name string) (string, error) {
	return e.handle.GetAttribute(name)
}
