// ABOUTME: Tests for root command configuration
// ABOUTME: API URL resolution order: flag, environment, default

package cmd

import "testing"

func TestGetAPIURL_Default(t *testing.T) {
	apiURL = ""
	t.Setenv("FIREPLAN_API_URL", "")

	if got := GetAPIURL(); got != defaultAPIURL {
		t.Errorf("Expected default %s, got %s", defaultAPIURL, got)
	}
}

func TestGetAPIURL_EnvOverridesDefault(t *testing.T) {
	apiURL = ""
	t.Setenv("FIREPLAN_API_URL", "http://env.example:9000")

	if got := GetAPIURL(); got != "http://env.example:9000" {
		t.Errorf("Expected env URL, got %s", got)
	}
}

func TestGetAPIURL_FlagOverridesEnv(t *testing.T) {
	apiURL = "http://flag.example:7000"
	defer func() { apiURL = "" }()
	t.Setenv("FIREPLAN_API_URL", "http://env.example:9000")

	if got := GetAPIURL(); got != "http://flag.example:7000" {
		t.Errorf("Expected flag URL, got %s", got)
	}
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	want := map[string]bool{"health": false, "catalog": false, "optimize": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("Missing subcommand %s", name)
		}
	}
}
