package shell

// ScrollIndicatorMargin is how far past the hero offset the visitor can
// scroll before the "scroll down" hint disappears.
const ScrollIndicatorMargin = 100

// ScrollIndicator tracks whether the scroll hint is shown. It starts visible
// and is recomputed on every scroll notification.
type ScrollIndicator struct {
	heroOffset float64
	visible    bool
}

// NewScrollIndicator creates a visible indicator for a hero section whose
// top sits at heroOffset pixels.
func NewScrollIndicator(heroOffset float64) *ScrollIndicator {
	return &ScrollIndicator{heroOffset: heroOffset, visible: true}
}

// Update recomputes visibility for the current vertical scroll position.
func (s *ScrollIndicator) Update(scrollY float64) bool {
	s.visible = scrollY < s.heroOffset+ScrollIndicatorMargin
	return s.visible
}

// Visible reports the last computed visibility.
func (s *ScrollIndicator) Visible() bool {
	return s.visible
}
