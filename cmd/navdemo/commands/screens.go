package commands

import (
	"context"
	"strings"

	"github.com/BrandonKowalski/autonav/pkg/autonav"
)

// Screen kinds of the demo host.
const (
	KindMain     autonav.Kind = "main"
	KindSub      autonav.Kind = "sub"
	KindSettings autonav.Kind = "settings"
)

// controller is the view-model of a demo page.
type controller struct {
	requests autonav.Requests
	message  string
}

var _ autonav.Requester = (*controller)(nil)

func (c *controller) NavigationRequests() *autonav.Requests {
	return &c.requests
}

// page is a demo screen. Disposal is reported on the printer.
type page struct {
	kind       autonav.Kind
	controller *controller
	out        *printer
}

func (p *page) Kind() autonav.Kind {
	return p.kind
}

func (p *page) Controller() any {
	return p.controller
}

func (p *page) Dispose() {
	p.out.say("ScreenDisposed", map[string]any{"Screen": p.kind})
}

func newPage(kind autonav.Kind, out *printer) *page {
	return &page{kind: kind, controller: &controller{}, out: out}
}

func registerScreens(engine *autonav.Engine, out *printer) error {
	for _, kind := range []autonav.Kind{KindMain, KindSub, KindSettings} {
		if err := engine.RegisterScreen(kind, func() autonav.Screen { return newPage(kind, out) }); err != nil {
			return err
		}
	}
	return nil
}

// builtinActions mirrors the classic main/sub example. Names already
// registered from an action file are left alone.
func builtinActions(engine *autonav.Engine, out *printer) autonav.Container {
	return autonav.ContainerFunc(func(b *autonav.ContainerBuilder) {
		declare := func(name string) *autonav.ActionBuilder {
			if engine.HasAction(name) {
				return autonav.NewAction()
			}
			return b.RegisterAction(name)
		}

		declare("PrepareSub").BufferPushKind(KindSub)
		declare("Open").FlushBuffer()
		declare("Back").
			Pop().
			Custom(func(_ context.Context, view autonav.ActionView) error {
				out.sayCount("PoppedPages", len(view.PoppedScreens()))
				return nil
			})
		declare("Settings").PushKind(KindSettings)
		declare("Home").PopToRoot()
		declare("CloseSettings").RemoveKind(KindSettings)
	})
}

func kinds(screens []autonav.Screen) string {
	names := make([]string, len(screens))
	for i, s := range screens {
		names[i] = string(s.Kind())
	}
	return "[" + strings.Join(names, " ") + "]"
}
