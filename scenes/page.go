package scenes

import (
	"sync"

	cfg "github.com/automoto/racrec/config"
	"github.com/automoto/racrec/systems"
	"github.com/automoto/racrec/ui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// PageBuilder fills a fresh page world and returns the content height.
type PageBuilder func(e *ecs.ECS) float64

// PanelBuilder returns a fixed ebitenui panel for a page.
type PanelBuilder func(e *ecs.ECS) *widget.Container

// PageScene is one routed page: a donburi world of page content under the
// navbar, with the dissolve overlay on top.
type PageScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	route        string
	build        PageBuilder
	panel        PanelBuilder
	dissolve     bool // play the transition when the page first shows
	pageUI       *ui.PageUI
	once         sync.Once
	next         string
}

// Route returns the path this scene was created for.
func (ps *PageScene) Route() string {
	return ps.route
}

func (ps *PageScene) Update() {
	ps.once.Do(ps.configure)

	if !systems.OverlayOpen(ps.ecs) {
		ps.pageUI.Update()
	}
	ps.ecs.Update()

	if ps.next != "" {
		ps.sceneChanger.ChangeScene(NewRouteScene(ps.sceneChanger, ps.next, cfg.Transition.OnNavigate))
		ps.next = ""
	}
}

func (ps *PageScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Page.BackgroundColor)

	if ps.ecs == nil {
		return
	}
	ps.ecs.DrawLayer(cfg.Default, screen)
	ps.pageUI.Draw(screen)
	ps.ecs.DrawLayer(cfg.Overlay, screen)
	ps.ecs.DrawLayer(cfg.TransitionLayer, screen)
	ps.ecs.DrawLayer(cfg.Diagnostics, screen)
}

// navigate queues a page change; it happens after the current update.
func (ps *PageScene) navigate(path string) {
	ps.next = path
}

func (ps *PageScene) configure() {
	ps.ecs = ecs.NewECS(donburi.NewWorld())

	ps.ecs.AddSystem(systems.UpdateInput)
	ps.ecs.AddSystem(systems.UpdateObjects)

	// Overlays take clicks before the page below
	ps.ecs.AddSystem(systems.UpdateLightbox)
	ps.ecs.AddSystem(systems.UpdateModal)

	ps.ecs.AddSystem(systems.UpdateCards)
	ps.ecs.AddSystem(systems.WithOverlayCheck(systems.UpdateTabs))
	ps.ecs.AddSystem(systems.UpdateGallery)
	ps.ecs.AddSystem(systems.UpdateScroll)
	ps.ecs.AddSystem(systems.UpdateCounters)
	ps.ecs.AddSystem(systems.UpdateReveals)
	if ps.route == cfg.RoutePixelDemo {
		ps.ecs.AddSystem(systems.UpdateDemo)
	}
	ps.ecs.AddSystem(systems.NewUpdateNavigation(ps.route, ps.navigate))
	ps.ecs.AddSystem(systems.UpdatePixelTransition)
	ps.ecs.AddSystem(systems.UpdateDebug)

	ps.ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ps.ecs.AddRenderer(cfg.Default, systems.DrawPanels)
	ps.ecs.AddRenderer(cfg.Default, systems.DrawTexts)
	ps.ecs.AddRenderer(cfg.Default, systems.DrawCounters)
	ps.ecs.AddRenderer(cfg.Default, systems.DrawCards)
	ps.ecs.AddRenderer(cfg.Default, systems.DrawGalleryTiles)
	ps.ecs.AddRenderer(cfg.Default, systems.DrawTabs)
	ps.ecs.AddRenderer(cfg.Overlay, systems.DrawModal)
	ps.ecs.AddRenderer(cfg.Overlay, systems.DrawLightbox)
	ps.ecs.AddRenderer(cfg.TransitionLayer, systems.DrawPixelTransition)
	ps.ecs.AddRenderer(cfg.Diagnostics, systems.DrawDebug)

	height := ps.build(ps.ecs)
	systems.SetPageHeight(ps.ecs, height)

	var panel *widget.Container
	if ps.panel != nil {
		panel = ps.panel(ps.ecs)
	}
	ps.pageUI = ui.NewPageUI(ps.route, ps.navigate, panel)

	if ps.dissolve {
		systems.TriggerPixelTransition(ps.ecs, cfg.Transition.PixelSize, cfg.DefaultTransitionDuration())
	}
}
