/*
Copyright © 2017 the frame authors.
This file is part of frame.

frame is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

frame is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with frame.  If not, see <http://www.gnu.org/licenses/>.
*/

package frameutil

import "testing"

func TestNewCfgRegistersRunAndVersionCommands(t *testing.T) {
	cfg := NewCfg()
	names := map[string]bool{}
	for _, c := range cfg.Root.Commands() {
		names[c.Name()] = true
	}
	if !names["run"] {
		t.Error("expected a \"run\" subcommand")
	}
	if !names["version"] {
		t.Error("expected a \"version\" subcommand")
	}
}

func TestNewCfgBindsSettingsFlagIntoViper(t *testing.T) {
	cfg := NewCfg()
	if err := cfg.runCmd.Flags().Set("settings", "overrides.toml"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := cfg.GetString("settings"); got != "overrides.toml" {
		t.Errorf("GetString(\"settings\") = %q, want \"overrides.toml\"", got)
	}
}

func TestNewCfgRunRequiresAtLeastTwoArgs(t *testing.T) {
	cfg := NewCfg()
	if err := cfg.runCmd.Args(cfg.runCmd, []string{"onlyone"}); err == nil {
		t.Error("expected an error for fewer than two args (paramfile + at least one species name)")
	}
	if err := cfg.runCmd.Args(cfg.runCmd, []string{"paramfile", "species1"}); err != nil {
		t.Errorf("expected two args to satisfy Args, got %v", err)
	}
}
