package models

// PasswordPolicy describes the character composition of a generated
// password. Every enabled class is guaranteed at least one character in
// the output.
type PasswordPolicy struct {
	Length           int  `json:"length"`
	IncludeUppercase bool `json:"include_uppercase"`
	IncludeLowercase bool `json:"include_lowercase"`
	IncludeNumbers   bool `json:"include_numbers"`
	IncludeSymbols   bool `json:"include_symbols"`

	// ExcludeSimilar removes visually ambiguous characters
	// (I, l, 1, O, 0, …) from the candidate sets.
	ExcludeSimilar bool `json:"exclude_similar"`
}

// DefaultPasswordPolicy mirrors the generator defaults of the web client:
// 16 characters, all classes enabled, similar-looking characters excluded.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		Length:           16,
		IncludeUppercase: true,
		IncludeLowercase: true,
		IncludeNumbers:   true,
		IncludeSymbols:   true,
		ExcludeSimilar:   true,
	}
}
