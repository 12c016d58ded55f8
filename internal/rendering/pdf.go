package rendering

import (
	"context"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// A4 paper size in inches.
const (
	a4WidthInches  = 8.27
	a4HeightInches = 11.69
	pointsPerInch  = 72.0
)

// DefaultPDFTimeout bounds one headless-browser print.
const DefaultPDFTimeout = 60 * time.Second

// PDFRenderer turns a layout into a PDF document.
type PDFRenderer interface {
	Render(ctx context.Context, l Layout) ([]byte, error)
}

// ChromePDFRenderer prints the HTML rendering of a layout with headless Chrome.
type ChromePDFRenderer struct {
	// ExecPath overrides the Chrome binary. Empty uses chromedp's lookup.
	ExecPath string
	Timeout  time.Duration
}

// NewChromePDFRenderer returns a renderer using the given Chrome binary.
func NewChromePDFRenderer(execPath string) *ChromePDFRenderer {
	return &ChromePDFRenderer{ExecPath: execPath, Timeout: DefaultPDFTimeout}
}

// Render implements PDFRenderer.
func (r *ChromePDFRenderer) Render(ctx context.Context, l Layout) ([]byte, error) {
	html, err := RenderHTML(l)
	if err != nil {
		return nil, err
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(r.ExecPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultPDFTimeout
	}
	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	margin := l.Style.PageMargin / pointsPerInch
	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(a4WidthInches).
				WithPaperHeight(a4HeightInches).
				WithMarginTop(margin).
				WithMarginBottom(margin).
				WithMarginLeft(margin).
				WithMarginRight(margin).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, &RenderError{Message: "headless Chrome failed to print PDF", Cause: err}
	}
	return pdf, nil
}
