package intent

import (
	"context"
	"errors"
	"testing"
)

// fakeTranslator is a deterministic stand-in for the LLM boundary.
type fakeTranslator struct {
	reply string
	err   error
	calls int
}

func (f *fakeTranslator) Translate(_ context.Context, _ string) (string, error) {
	f.calls++
	return f.reply, f.err
}

func TestChain_RulesWinBeforeTranslator(t *testing.T) {
	fake := &fakeTranslator{reply: "remove firefox"}
	chain := Chain{Rules{}, TranslatorResolver{Translator: fake}}

	it := chain.Resolve(context.Background(), "install firefox")
	if it.Action != ActionInstall {
		t.Fatalf("action = %s, want install", it.Action)
	}
	if fake.calls != 0 {
		t.Errorf("translator was called %d times for rule-matchable input", fake.calls)
	}
}

func TestChain_TranslatorFallbackReparsed(t *testing.T) {
	fake := &fakeTranslator{reply: "install libreoffice-fresh"}
	chain := Chain{Rules{}, TranslatorResolver{Translator: fake}}

	it := chain.Resolve(context.Background(), "i need something to write documents")
	if it.Action != ActionInstall || it.Target != "libreoffice-fresh" {
		t.Fatalf("got %s %q, want install libreoffice-fresh", it.Action, it.Target)
	}
	if fake.calls != 1 {
		t.Errorf("translator calls = %d, want 1", fake.calls)
	}
}

func TestTranslatorResolver_ReplyNeverTrustedAsShell(t *testing.T) {
	// A reply outside the closed vocabulary must not produce an intent,
	// even when it looks like a runnable command.
	fake := &fakeTranslator{reply: "sudo pacman -S firefox"}
	it := Chain{Rules{}, TranslatorResolver{Translator: fake}}.Resolve(context.Background(), "gibberish")
	if it.Action != ActionUnknown {
		t.Fatalf("out-of-vocabulary reply classified as %s", it.Action)
	}
}

func TestTranslatorResolver_DegradesToUnknown(t *testing.T) {
	cases := []struct {
		name string
		fake *fakeTranslator
	}{
		{"transport error", &fakeTranslator{err: errors.New("timeout")}},
		{"empty reply", &fakeTranslator{reply: ""}},
		{"explicit unknown", &fakeTranslator{reply: "unknown"}},
		{"markdown noise", &fakeTranslator{reply: "```\n```"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			it := Chain{Rules{}, TranslatorResolver{Translator: tc.fake}}.Resolve(context.Background(), "gibberish")
			if it.Action != ActionUnknown {
				t.Errorf("action = %s, want unknown", it.Action)
			}
		})
	}
}

func TestTranslatorResolver_MultilineReplyFirstValidLineWins(t *testing.T) {
	fake := &fakeTranslator{reply: "\n`install firefox`\nremove firefox"}
	it, ok := TranslatorResolver{Translator: fake}.Resolve(context.Background(), "browser please")
	if !ok || it.Action != ActionInstall || it.Target != "firefox" {
		t.Fatalf("got ok=%v %s %q, want install firefox", ok, it.Action, it.Target)
	}
}

func TestChain_EmptyYieldsUnknown(t *testing.T) {
	if it := (Chain{}).Resolve(context.Background(), "install firefox"); it.Action != ActionUnknown {
		t.Fatalf("empty chain resolved to %s", it.Action)
	}
}

func TestTranslatorResolver_NilTranslator(t *testing.T) {
	if _, ok := (TranslatorResolver{}).Resolve(context.Background(), "anything"); ok {
		t.Fatal("nil translator must not match")
	}
}
