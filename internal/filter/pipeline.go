package filter

import "github.com/dgallion1/mandown/internal/pandoc"

// DefaultManURLHost serves the canonical man-page link targets.
const DefaultManURLHost = "man7.org"

// DefaultManSection is the manual section used in the synthesized title.
const DefaultManSection = "1"

// Options configure the rewrite pipeline.
type Options struct {
	ManURLHost string // host for man-page cross-reference links
	ManSection string // manual section appended to the page title
}

func (o Options) withDefaults() Options {
	if o.ManURLHost == "" {
		o.ManURLHost = DefaultManURLHost
	}
	if o.ManSection == "" {
		o.ManSection = DefaultManSection
	}
	return o
}

// Run applies the fixed rewrite pipeline to doc. The last two passes read
// the TOC gathered by the fourth, so the order is load-bearing. format is
// the writer name pandoc hands a filter; the rewrites do not depend on it.
func Run(doc *pandoc.Doc, format string, opts Options) error {
	opts = opts.withDefaults()

	gather := NewGatherToc()
	passes := []Pass{
		NewAutoLinkURIs(),
		NewAutoLinkMans(opts.ManURLHost),
		NewEscapeDashes(),
		gather,
		NewAutoLinkSections(gather.Toc()),
		NewNameToTitle(gather.Toc(), opts.ManSection),
	}
	for _, p := range passes {
		if err := Apply(doc, p); err != nil {
			return err
		}
	}
	return nil
}
