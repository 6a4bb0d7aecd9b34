package console

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed text.yaml
var textYAML []byte

type Text struct {
	Welcome           string `yaml:"welcome"`
	Help              string `yaml:"help"`
	Prompt            string `yaml:"prompt"`
	Turn              string `yaml:"turn"`
	NewGame           string `yaml:"new_game"`
	Captured          string `yaml:"captured"`
	Promoted          string `yaml:"promoted"`
	AdditionalCapture string `yaml:"additional_capture"`
	ViewChanged       string `yaml:"view_changed"`
	Hint              string `yaml:"hint"`
	NoHint            string `yaml:"no_hint"`
	Goodbye           string `yaml:"goodbye"`
	Win               struct {
		AllCaptured string `yaml:"all_captured"`
		NoMoves     string `yaml:"no_moves"`
		Draw        string `yaml:"draw"`
		Over        string `yaml:"over"`
	} `yaml:"win"`
	Errors struct {
		CaptureRequired string `yaml:"capture_required"`
		MustContinue    string `yaml:"must_continue"`
		MoveUnavailable string `yaml:"move_unavailable"`
		NotStarted      string `yaml:"not_started"`
		UnknownCommand  string `yaml:"unknown_command"`
		BadSyntax       string `yaml:"bad_syntax"`
		BadPosition     string `yaml:"bad_position"`
		UnknownView     string `yaml:"unknown_view"`
	} `yaml:"errors"`
}

func LoadText() (Text, error) {
	var t Text
	if err := yaml.Unmarshal(textYAML, &t); err != nil {
		return Text{}, fmt.Errorf("decode ui text: %w", err)
	}
	return t, nil
}

// fill 替换 {{key}} 占位符，kv 成对出现。
func fill(tmpl string, kv ...string) string {
	if len(kv)%2 != 0 {
		kv = append(kv, "")
	}
	pairs := make([]string, 0, len(kv))
	for i := 0; i < len(kv); i += 2 {
		pairs = append(pairs, "{{"+kv[i]+"}}", kv[i+1])
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}
