package components

import "github.com/yohamta/donburi"

// CardKind distinguishes project cards from team member cards
type CardKind int

const (
	CardProject CardKind = iota
	CardTeam
)

// CardData is a project or team member card.
type CardData struct {
	Kind     CardKind
	Title    string
	Subtitle string // team role, or project date
	Location string
	Summary  string
	Details  string
	Image    string
	Gallery  []string
	Links    []string // team social profiles
	Group    string   // team tab key; empty for projects
	Lines    []string // summary wrapped to the card width

	Hidden  bool // filtered out by the active tab
	Hovered bool
	Lift    float64 // current upward offset
	LiftVel float64
}

var Card = donburi.NewComponentType[CardData]()

// ModalData is the project detail modal of a page.
type ModalData struct {
	Open     bool
	Card     *donburi.Entry
	Lightbox LightboxData // enlarged gallery image inside the modal
}

var Modal = donburi.NewComponentType[ModalData]()
