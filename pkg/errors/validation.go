package errors

import (
	"regexp"
	"unicode"
)

const (
	maxBlockIDLength  = 256
	maxRuleNameLength = 128
	maxPathLength     = 4096
)

// ValidateBlockID validates a block identifier from user input.
//
// The validation rules are intentionally conservative:
//   - No empty IDs
//   - No control characters or null bytes
//   - No leading or trailing whitespace
//   - Maximum length of 256 characters
func ValidateBlockID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidBlockID, "block ID cannot be empty")
	}
	if len(id) > maxBlockIDLength {
		return New(ErrCodeInvalidBlockID, "block ID too long (max %d characters)", maxBlockIDLength)
	}
	if hasControl(id) {
		return New(ErrCodeInvalidBlockID, "block ID contains invalid control characters")
	}
	if unicode.IsSpace(rune(id[0])) || unicode.IsSpace(rune(id[len(id)-1])) {
		return New(ErrCodeInvalidBlockID, "block ID has leading or trailing whitespace: %q", id)
	}
	return nil
}

// ruleKindRegex matches rule kind slugs such as "type-match".
var ruleKindRegex = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)

// ValidateRuleKind validates a rule kind slug as used in configuration files.
func ValidateRuleKind(kind string) error {
	if kind == "" {
		return New(ErrCodeInvalidRule, "rule kind cannot be empty")
	}
	if !ruleKindRegex.MatchString(kind) {
		return New(ErrCodeInvalidRule, "invalid rule kind: %q", kind)
	}
	return nil
}

// ValidateRuleName validates a human-readable rule name.
// Names may contain spaces but no control characters.
func ValidateRuleName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidRule, "rule name cannot be empty")
	}
	if len(name) > maxRuleNameLength {
		return New(ErrCodeInvalidRule, "rule name too long (max %d characters)", maxRuleNameLength)
	}
	if hasControl(name) {
		return New(ErrCodeInvalidRule, "rule name contains invalid control characters")
	}
	return nil
}

// typeTagRegex matches connector type tags. The empty tag is allowed.
var typeTagRegex = regexp.MustCompile(`^[A-Za-z0-9_.-]*$`)

// ValidateTypeTag validates a connector data type tag such as "number".
func ValidateTypeTag(tag string) error {
	if !typeTagRegex.MatchString(tag) {
		return New(ErrCodeInvalidInput, "invalid connector type: %q", tag)
	}
	return nil
}

// ValidatePath validates a file path given on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}
	if hasControl(path) {
		return New(ErrCodeInvalidPath, "path contains invalid characters")
	}
	return nil
}

func hasControl(s string) bool {
	for _, r := range s {
		if r == '\x00' || unicode.IsControl(r) {
			return true
		}
	}
	return false
}
