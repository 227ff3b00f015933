package rules

// Built-in sets. Order inside each set is significant: earlier rules win.
var (
	Preferences = Set{
		Name:        "prefs",
		Description: "SharedPreferences reads, writes, listeners and other references",
		Rules: []Rule{
			mustCompile("Getters", `pref.*get(Int|Boolean|Float|Long|String)`),
			mustCompile("Setters", `pref.*put(Int|Boolean|Float|Long|String)`),
			mustCompile("Listeners", `pref.*(register|unregister)OnSharedPreferenceChangeListener`),
			mustCompile("Rest", `sharedPreferences`),
		},
	}

	KeyStore = Set{
		Name:        "keystore",
		Description: "KeyChain and KeyStore references",
		Rules: []Rule{
			mustCompile("KeyStore", `KeyChain|KeyStore`),
		},
	}

	Crypto = Set{
		Name:        "crypto",
		Description: "JCA cipher, digest, key material and random source usage",
		Rules: []Rule{
			mustCompile("Ciphers", `Cipher\.getInstance`),
			mustCompile("Digests", `MessageDigest\.getInstance|Mac\.getInstance`),
			mustCompile("Keys", `SecretKeySpec|KeyGenerator|KeyPairGenerator|IvParameterSpec|PBEKeySpec`),
			mustCompile("Random", `SecureRandom|java\.util\.Random`),
		},
	}
)

var builtins = []Set{Preferences, KeyStore, Crypto}

// Builtins returns the built-in sets in display order.
func Builtins() []Set {
	out := make([]Set, len(builtins))
	copy(out, builtins)
	return out
}

// Builtin looks up a built-in set by name.
func Builtin(name string) (Set, bool) {
	for _, s := range builtins {
		if s.Name == name {
			return s, true
		}
	}
	return Set{}, false
}
