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

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/mbedward/frame"
)

// LoadSettings reads frame.Settings overrides from a TOML file, starting
// from frame.DefaultSettings() so an incomplete file still yields a usable
// Settings value. An empty path is not an error: DefaultSettings() is
// returned unchanged. A non-empty path that cannot be read or decoded is
// an error.
func LoadSettings(path string) (frame.Settings, error) {
	settings := frame.DefaultSettings()
	if path == "" {
		return settings, nil
	}
	if _, err := toml.DecodeFile(path, &settings); err != nil {
		return frame.Settings{}, fmt.Errorf("frameutil: reading settings file %q: %w", path, err)
	}
	return settings, nil
}
