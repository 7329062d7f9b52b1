package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/idilsaglam/packlist/internal/config"
	"github.com/idilsaglam/packlist/internal/model"
	"github.com/idilsaglam/packlist/internal/ui"
)

type fakeRunner struct {
	got   *config.Config
	items []model.Item
	err   error
}

func (f *fakeRunner) run(_ context.Context, cfg config.Config) ([]model.Item, error) {
	f.got = &cfg
	return f.items, f.err
}

func execute(t *testing.T, f *fakeRunner, env []string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(f.run, config.FromEnv(env))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCmdDefaults(t *testing.T) {
	f := &fakeRunner{}
	if _, err := execute(t, f, nil); err != nil {
		t.Fatalf("execute: %v", err)
	}
	want := config.Config{Theme: "classic", AltScreen: true}
	if f.got == nil || *f.got != want {
		t.Fatalf("expected %+v, got %+v", want, f.got)
	}
}

func TestRootCmdFlagsOverrideEnv(t *testing.T) {
	f := &fakeRunner{}
	env := []string{config.EnvTheme + "=neon", config.EnvTrace + "=true"}
	if _, err := execute(t, f, env, "--theme", "mono", "--log-file", "x.log", "--alt-screen=false"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	want := config.Config{Theme: "mono", LogFile: "x.log", Trace: true, AltScreen: false}
	if *f.got != want {
		t.Fatalf("expected %+v, got %+v", want, *f.got)
	}
}

func TestRootCmdPrintsFinalStats(t *testing.T) {
	f := &fakeRunner{items: []model.Item{
		{ID: 1, Description: "Socks", Quantity: model.QuantityTwo, Packed: true},
		{ID: 2, Description: "Hat", Quantity: model.QuantityOne},
	}}
	out, err := execute(t, f, nil, "--theme", "mono")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got := ui.StripANSI(out); !strings.Contains(got, "You have 2 items in the list. You already packed 1 (50%).") {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRootCmdConfigErrors(t *testing.T) {
	cases := [][]string{
		{"--theme", "plaid"},
		{"--no-such-flag"},
		{"extra-arg"},
	}
	for _, args := range cases {
		f := &fakeRunner{}
		_, err := execute(t, f, nil, args...)
		if err == nil {
			t.Fatalf("%v: expected error", args)
		}
		if code := exitCode(err); code != 2 {
			t.Fatalf("%v: expected exit code 2, got %d (%v)", args, code, err)
		}
		if f.got != nil {
			t.Fatalf("%v: runner should not start", args)
		}
	}
}

func TestRootCmdRunnerErrorIsRuntimeFailure(t *testing.T) {
	f := &fakeRunner{err: errors.New("terminal went away")}
	_, err := execute(t, f, nil)
	if err == nil || exitCode(err) != 1 {
		t.Fatalf("expected runtime error with exit code 1, got %v", err)
	}
}
