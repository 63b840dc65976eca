package commands

// SetThemeCommand represents the command to store the theme preference.
// Unrecognized values are not an error; they resolve to the default
// theme when read back.
type SetThemeCommand struct {
	Theme string `json:"theme"`
}

// Validate validates the command
func (c SetThemeCommand) Validate() error {
	return nil
}
