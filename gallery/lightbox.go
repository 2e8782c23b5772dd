package gallery

// Lightbox holds at most one enlarged image.
type Lightbox struct {
	selected string
}

// Select shows src, replacing any image already shown.
func (l *Lightbox) Select(src string) {
	l.selected = src
}

// Close hides the lightbox.
func (l *Lightbox) Close() {
	l.selected = ""
}

// Selected returns the shown image, if any.
func (l *Lightbox) Selected() (string, bool) {
	return l.selected, l.selected != ""
}

func (l *Lightbox) IsOpen() bool {
	return l.selected != ""
}
