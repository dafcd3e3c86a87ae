package cssgrad

// RenderOption configures a single RenderToBuffer call.
//
// Example:
//
//	pm := cssgrad.NewPixmap(320, 32)
//	for _, g := range gradients {
//	    cssgrad.RenderToBuffer(g, 320, 32, cssgrad.WithPixmap(pm))
//	    encode(pm)
//	}
type RenderOption func(*renderOptions)

type renderOptions struct {
	pixmap *Pixmap
}

func defaultRenderOptions() renderOptions {
	return renderOptions{
		pixmap: nil, // allocated per call
	}
}

// WithPixmap renders into pm instead of allocating a new buffer. pm is
// cleared to transparent first. A pixmap whose size differs from the
// requested size is ignored and a new one is allocated.
//
// A pixmap must not be shared by concurrent renders.
func WithPixmap(pm *Pixmap) RenderOption {
	return func(o *renderOptions) {
		o.pixmap = pm
	}
}
