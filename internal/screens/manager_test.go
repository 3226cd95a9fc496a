package screens

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/starcatch/internal/config"
	"github.com/vovakirdan/starcatch/internal/core"
	"github.com/vovakirdan/starcatch/internal/games/starcatch"
)

const (
	long  = 2 * time.Second
	short = 10 * time.Millisecond
)

type sinkFunc func(Result) error

func (f sinkFunc) RecordResult(r Result) error { return f(r) }

type fakeScores []ScoreRow

func (f fakeScores) TopResults(limit int) ([]ScoreRow, error) {
	if len(f) > limit {
		return f[:limit], nil
	}
	return f, nil
}

func testOptions() Options {
	return Options{
		Game: config.DefaultStarcatchConfig(),
		Caps: starcatch.Capabilities{PointerKeys: true, AnalogStick: true},
		Seed: 5,
	}
}

func pressed(actions ...core.Action) Input {
	in := Input{Pressed: core.NewInputFrame()}
	for _, a := range actions {
		in.Pressed.Set(a)
	}
	return in
}

func TestManagerFocusGoesToTop(t *testing.T) {
	m := NewManager(testOptions())
	bottom, top := newStub(false), newStub(true)
	m.AddScreen(bottom)
	m.AddScreen(top)

	m.Update(short, Input{})

	if top.handled != 1 || bottom.handled != 0 {
		t.Errorf("handled top=%d bottom=%d, expected 1 and 0", top.handled, bottom.handled)
	}
	if top.ctx.OtherHasFocus || top.ctx.Overlaid {
		t.Errorf("top screen ctx = %+v, expected nothing above", top.ctx)
	}
	if !bottom.ctx.OtherHasFocus || !bottom.ctx.Overlaid || bottom.ctx.Covered {
		t.Errorf("below a popup ctx = %+v, expected focus taken, overlaid, not covered", bottom.ctx)
	}
}

func TestManagerNonPopupCovers(t *testing.T) {
	m := NewManager(testOptions())
	bottom, top := newStub(false), newStub(false)
	m.AddScreen(bottom)
	m.AddScreen(top)

	for i := 0; i < 5; i++ {
		m.Update(50*time.Millisecond, Input{})
	}
	if !bottom.ctx.Covered {
		t.Error("a non-popup above should cover")
	}
	if bottom.State() != StateHidden {
		t.Errorf("covered screen State() = %s, expected Hidden", bottom.State())
	}
}

func TestManagerBlurredWindowHasNoFocus(t *testing.T) {
	m := NewManager(testOptions())
	p := newStub(false)
	m.AddScreen(p)
	m.SetWindowFocus(false)

	m.Update(short, Input{})
	if p.handled != 0 || !p.ctx.OtherHasFocus {
		t.Error("no screen should take input while the window is blurred")
	}

	m.SetWindowFocus(true)
	m.Update(short, Input{})
	if p.handled != 1 {
		t.Error("input should resume once the window is focused")
	}
}

func TestManagerExitRemoves(t *testing.T) {
	m := NewManager(testOptions())
	p := newStub(false)
	m.AddScreen(p)
	m.Update(long, Input{})

	p.Exit()
	m.Update(long, Input{})
	if len(m.Screens()) != 0 {
		t.Errorf("exited screen should be removed, stack has %d", len(m.Screens()))
	}
	if !m.Done() {
		t.Error("an empty stack is done")
	}
}

func TestMainMenuEntries(t *testing.T) {
	m := NewManager(testOptions())
	menu := NewMainMenu(m)
	if got := menu.Entries(); len(got) != 3 {
		t.Errorf("entries without scores = %v, expected Play, Controls, Exit", got)
	}

	opts := testOptions()
	opts.Scores = fakeScores{}
	menu = NewMainMenu(NewManager(opts))
	if got := menu.Entries(); len(got) != 4 || got[2] != "High Scores" {
		t.Errorf("entries with scores = %v", got)
	}
}

type headedScores struct{ fakeScores }

func (headedScores) Heading() string { return "Your Recent Runs" }

func TestScoresTitle(t *testing.T) {
	tests := []struct {
		name  string
		table ScoreTable
		want  string
	}{
		{"plain table", fakeScores{}, "High Scores"},
		{"table with heading", headedScores{}, "Your Recent Runs"},
		{"no table", nil, "High Scores"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NewScores(tc.table).Title(); got != tc.want {
				t.Errorf("Title() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestMenuCursorWraps(t *testing.T) {
	m := NewManager(testOptions())
	menu := m.Push(KindMenu).(*MenuScreen)
	m.Update(long, Input{})

	m.Update(short, pressed(core.ActionUp))
	if menu.Cursor() != len(menu.Entries())-1 {
		t.Errorf("Up from the first entry should wrap, cursor = %d", menu.Cursor())
	}
	m.Update(short, pressed(core.ActionDown))
	if menu.Cursor() != 0 {
		t.Errorf("Down from the last entry should wrap, cursor = %d", menu.Cursor())
	}
}

func TestMenuPlayStartsGameplay(t *testing.T) {
	m := NewManager(testOptions())
	m.Push(KindMenu)
	m.Update(long, Input{})

	m.Update(short, pressed(core.ActionConfirm))
	if top := m.Top(); top == nil || top.Kind() != KindGameplay {
		t.Fatalf("Play should push gameplay, top = %v", top)
	}

	m.Update(long, Input{})
	if n := len(m.Screens()); n != 1 {
		t.Errorf("menu should exit behind gameplay, stack has %d", n)
	}
}

func TestMenuExitQuits(t *testing.T) {
	m := NewManager(testOptions())
	m.Push(KindMenu)
	m.Update(long, Input{})
	m.Update(short, pressed(core.ActionBack))
	if !m.Done() {
		t.Error("Back on the main menu should quit")
	}
}

func TestGameplayPauseFlow(t *testing.T) {
	m := NewManager(testOptions())
	g := m.Push(KindGameplay).(*Gameplay)
	m.Update(long, Input{})
	if g.State() != StateActive {
		t.Fatalf("gameplay State() = %s, expected Active", g.State())
	}

	in := Input{Snapshot: starcatch.Snapshot{Keys: starcatch.KeyState{Pause: true}}}
	m.Update(short, in)
	if top := m.Top(); top.Kind() != KindPause {
		t.Fatalf("pause key should push the pause menu, top = %s", top.Kind())
	}

	ticks := g.Session().Ticks()
	m.Update(short, Input{Snapshot: starcatch.Snapshot{Keys: starcatch.KeyState{Up: true}}})
	if g.Session().Ticks() != ticks {
		t.Error("a paused session must not simulate")
	}
	if g.Session().Blend() == 0 {
		t.Error("a paused session should start fading")
	}
	if g.LastFrame().State != starcatch.StateObscured {
		t.Errorf("session state = %s, expected Obscured", g.LastFrame().State)
	}
	if g.State() != StateActive {
		t.Errorf("gameplay should stay Active under the popup, got %s", g.State())
	}

	m.Update(long, pressed(core.ActionBack))
	if g.Session().Ticks() != ticks {
		t.Error("session should stay paused while the popup closes")
	}

	m.Update(long, Input{})
	if top := m.Top(); top != Screen(g) {
		t.Fatalf("resume should return to gameplay, top = %s", top.Kind())
	}
	if g.Session().Ticks() != ticks+1 {
		t.Errorf("resumed session should simulate, ticks %d -> %d", ticks, g.Session().Ticks())
	}
}

func TestGameplayWinReportsResult(t *testing.T) {
	opts := testOptions()
	opts.Game.Gameplay.WinScore = 1
	opts.Game.Target.StartX = opts.Game.Player.StartX
	opts.Game.Target.StartY = opts.Game.Player.StartY
	opts.InputMode = "keyboard"

	var results []Result
	opts.Sink = sinkFunc(func(r Result) error {
		results = append(results, r)
		return nil
	})

	m := NewManager(opts)
	m.Push(KindGameplay)
	m.Update(long, Input{})
	if top := m.Top(); top.Kind() != KindWin {
		t.Fatalf("capturing the last star should push the win menu, top = %s", top.Kind())
	}

	m.Update(long, Input{})
	m.Update(short, pressed(core.ActionDown))
	m.Update(short, pressed(core.ActionConfirm))
	m.Update(long, Input{})

	if top := m.Top(); top.Kind() != KindMenu {
		t.Errorf("Main menu should leave the menu on top, got %s", top.Kind())
	}
	if len(results) != 1 {
		t.Fatalf("expected one result, got %d", len(results))
	}
	r := results[0]
	if r.Score != 1 || !r.Won || r.InputMode != "keyboard" || r.Ticks == 0 {
		t.Errorf("unexpected result %+v", r)
	}
}

func TestGameplayTickErrorEndsSession(t *testing.T) {
	opts := testOptions()
	var results []Result
	opts.Sink = sinkFunc(func(r Result) error {
		results = append(results, r)
		return nil
	})

	m := NewManager(opts)
	g := m.Push(KindGameplay).(*Gameplay)
	m.Update(long, Input{})
	ticks := g.Session().Ticks()

	m.Update(-short, Input{})
	for _, s := range m.Screens() {
		if s == Screen(g) {
			t.Fatal("gameplay should be removed after a failed tick")
		}
	}
	if top := m.Top(); top == nil || top.Kind() != KindMenu {
		t.Errorf("a failed tick should return to the main menu, top = %v", top)
	}
	if len(results) != 1 {
		t.Fatalf("expected the ended session to be reported once, got %d", len(results))
	}
	if results[0].Ticks != ticks {
		t.Errorf("reported ticks = %d, want %d", results[0].Ticks, ticks)
	}
	if m.Done() {
		t.Error("the manager should keep running on the main menu")
	}
}

func TestManagerCloseReports(t *testing.T) {
	opts := testOptions()
	reported := 0
	opts.Sink = sinkFunc(func(Result) error {
		reported++
		return nil
	})
	m := NewManager(opts)
	m.Push(KindGameplay)
	m.Update(long, Input{})

	m.Close()
	if reported != 1 || !m.Done() {
		t.Errorf("Close should report the running session, reported %d", reported)
	}
}

func TestNextSeedVaries(t *testing.T) {
	m := NewManager(testOptions())
	if a, b := m.nextSeed(), m.nextSeed(); a != 5 || b != 6 {
		t.Errorf("seeds = %d, %d, expected 5, 6", a, b)
	}
}

func TestPopupBackdropFade(t *testing.T) {
	m := NewManager(testOptions())
	m.Push(KindGameplay)
	m.Update(long, Input{})
	m.Push(KindPause)
	m.Update(long, Input{})

	if got := m.fadeAbove(0); math.Abs(got-2.0/3) > 1e-9 {
		t.Errorf("fadeAbove(gameplay) = %f, expected 2/3", got)
	}
	if got := m.fadeAbove(1); got != 0 {
		t.Errorf("nothing above the popup, got %f", got)
	}

	scr := core.NewScreen(80, 24)
	m.Draw(scr)
	if scr.Fade() < 2.0/3 {
		t.Errorf("drawn frame fade = %f, expected at least 2/3", scr.Fade())
	}
}
