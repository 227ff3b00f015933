package config

// Mode names one kind of analysis run.
type Mode string

const (
	ModePrefs    Mode = "prefs"
	ModeKeyStore Mode = "keystore"
	ModeCrypto   Mode = "crypto"
	ModeFind     Mode = "find"
	ModeRules    Mode = "rules"
	// Dynamic modes need a device and are not implemented.
	ModeDynamicPrefs Mode = "dynamic-prefs"
	ModeDynamicDB    Mode = "dynamic-db"
)

// Static reports whether the mode scans a source tree.
func (m Mode) Static() bool {
	return m != ModeDynamicPrefs && m != ModeDynamicDB
}

// ConfigError reports an invalid invocation. It is raised before anything
// touches the filesystem.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return e.Msg }

// Modes collects the mode switches and their inputs as given on the command
// line.
type Modes struct {
	Prefs        bool
	KeyStore     bool
	Crypto       bool
	Find         bool
	Rules        bool
	DynamicPrefs bool
	DynamicDB    bool

	Path      string
	Pattern   string
	RulesFile string
}

// Select returns the single requested mode after checking that the inputs it
// needs are present.
func (m Modes) Select() (Mode, error) {
	var picked []Mode
	for _, c := range []struct {
		on   bool
		mode Mode
	}{
		{m.Prefs, ModePrefs},
		{m.KeyStore, ModeKeyStore},
		{m.Crypto, ModeCrypto},
		{m.Find, ModeFind},
		{m.Rules, ModeRules},
		{m.DynamicPrefs, ModeDynamicPrefs},
		{m.DynamicDB, ModeDynamicDB},
	} {
		if c.on {
			picked = append(picked, c.mode)
		}
	}
	if len(picked) != 1 {
		return "", &ConfigError{Msg: "zero or more than one work modes specified, run with --help for usage"}
	}
	mode := picked[0]
	if !mode.Static() {
		return mode, nil
	}
	if m.Path == "" {
		return "", &ConfigError{Msg: "specify the path to the decompiled Java code directory via --path"}
	}
	if mode == ModeFind && m.Pattern == "" {
		return "", &ConfigError{Msg: "specify the pattern to match via --pattern"}
	}
	if mode == ModeRules && m.RulesFile == "" {
		return "", &ConfigError{Msg: "specify the rule set file via --rules or the rules config key"}
	}
	return mode, nil
}
