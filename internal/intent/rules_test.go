package intent

import "testing"

func TestMatch_Verbs(t *testing.T) {
	cases := []struct {
		text   string
		action Action
		target string
	}{
		{"install firefox", ActionInstall, "firefox"},
		{"get firefox", ActionInstall, "firefox"},
		{"add vlc", ActionInstall, "vlc"},
		{"Install Firefox", ActionInstall, "Firefox"},
		{"remove firefox", ActionRemove, "firefox"},
		{"uninstall vlc", ActionRemove, "vlc"},
		{"delete chrome", ActionRemove, "chrome"},
		{"open vlc", ActionOpen, "vlc"},
		{"launch steam", ActionOpen, "steam"},
		{"start firefox", ActionOpen, "firefox"},
		{"logs sshd", ActionLogs, "sshd"},
		{"journal NetworkManager", ActionLogs, "NetworkManager"},
	}

	for _, tc := range cases {
		it, ok := Match(tc.text)
		if !ok {
			t.Errorf("Match(%q) did not match", tc.text)
			continue
		}
		if it.Action != tc.action {
			t.Errorf("Match(%q) action = %s, want %s", tc.text, it.Action, tc.action)
		}
		if it.Target != tc.target {
			t.Errorf("Match(%q) target = %q, want %q", tc.text, it.Target, tc.target)
		}
	}
}

func TestMatch_Phrases(t *testing.T) {
	cases := []struct {
		text     string
		action   Action
		modifier string
	}{
		{"upgrade system", ActionUpgrade, ""},
		{"please update system now", ActionUpgrade, ""},
		{"upgrade", ActionUpgrade, ""},
		{"clean cache", ActionCleanCache, ""},
		{"clear cache please", ActionCleanCache, ""},
		{"fix sound", ActionFix, "sound"},
		{"fix my audio", ActionFix, "sound"},
		{"the sound is broken", ActionFix, "sound"},
		{"fix internet", ActionFix, "internet"},
		{"my wifi does not work", ActionFix, "internet"},
		{"fix bluetooth", ActionFix, "bluetooth"},
		{"fix time", ActionFix, "time"},
		{"my clock is wrong", ActionFix, "time"},
		{"test ai", ActionTestAI, ""},
	}

	for _, tc := range cases {
		it, ok := Match(tc.text)
		if !ok {
			t.Errorf("Match(%q) did not match", tc.text)
			continue
		}
		if it.Action != tc.action {
			t.Errorf("Match(%q) action = %s, want %s", tc.text, it.Action, tc.action)
		}
		if it.Modifier != tc.modifier {
			t.Errorf("Match(%q) modifier = %q, want %q", tc.text, it.Modifier, tc.modifier)
		}
	}
}

func TestMatch_TargetlessVerbKeepsAction(t *testing.T) {
	it, ok := Match("install")
	if !ok {
		t.Fatal("expected bare verb to match")
	}
	if it.Action != ActionInstall || it.Target != "" {
		t.Errorf("got action=%s target=%q, want install with empty target", it.Action, it.Target)
	}
}

func TestMatch_NoMatch(t *testing.T) {
	for _, text := range []string{"", "   ", "what is the meaning of life", "please make me a sandwich"} {
		if it, ok := Match(text); ok {
			t.Errorf("Match(%q) unexpectedly matched %s", text, it.Action)
		}
	}
}
