package config

// Settings represents the top-level gvx.toml configuration file.
type Settings struct {
	Profiles ProfilesSettings `toml:"profiles"`
	Static   []StaticSetting  `toml:"static"`
}

// ProfilesSettings locates profile documents on disk.
type ProfilesSettings struct {
	Directory string `toml:"directory"`
	Extension string `toml:"extension"`
}

// StaticSetting declares one member of the fixed static variable schema.
// Value is a literal expression evaluated when the registry is built; a nil
// Value declares the key without an initial value.
type StaticSetting struct {
	Name        string  `toml:"name"`
	Description string  `toml:"description"`
	Value       *string `toml:"value"`
}
