package tools

import (
	"errors"
	"math"
	"net/mail"
	"sort"
	"strings"
)

var errNotBareAddress = errors.New("not a bare email address")

// passwordKeys are refused outright: passwords are always generated server side.
var passwordKeys = map[string]bool{"password": true, "newPassword": true}

// arguments is the raw argument object of a tool call. JSON numbers arrive as
// float64 and JSON booleans as bool.
type arguments map[string]interface{}

// newArguments rejects any key that is not in allowed.
func newArguments(raw map[string]interface{}, allowed ...string) (arguments, error) {
	known := make(map[string]bool, len(allowed))
	for _, key := range allowed {
		known[key] = true
	}

	var unknown []string
	for key := range raw {
		if passwordKeys[key] {
			return nil, invalid(key, "caller-supplied passwords are not accepted; a temporary password is generated")
		}
		if !known[key] {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, invalid(unknown[0], "unknown argument (unexpected: %s)", strings.Join(unknown, ", "))
	}
	if raw == nil {
		raw = map[string]interface{}{}
	}
	return arguments(raw), nil
}

func (a arguments) present(key string) bool {
	v, ok := a[key]
	return ok && v != nil
}

// str returns the trimmed string under key. A required string must be non-empty.
func (a arguments) str(key string, required bool) (string, error) {
	if !a.present(key) {
		if required {
			return "", invalid(key, "is required")
		}
		return "", nil
	}
	s, ok := a[key].(string)
	if !ok {
		return "", invalid(key, "must be a string")
	}
	s = strings.TrimSpace(s)
	if s == "" && required {
		return "", invalid(key, "must not be empty")
	}
	return s, nil
}

// email returns a bare email address, unchanged. The directory matches
// addresses case-insensitively.
func (a arguments) email(key string, required bool) (string, error) {
	s, err := a.str(key, required)
	if err != nil || s == "" {
		return s, err
	}
	if err := checkEmail(s); err != nil {
		return "", invalid(key, "%q is not a valid email address", s)
	}
	return s, nil
}

// directoryKey returns a required user or group key: a primary email, an
// alias or the opaque ID assigned by the directory.
func (a arguments) directoryKey(key string) (string, error) {
	s, err := a.str(key, true)
	if err != nil {
		return "", err
	}
	if strings.Contains(s, "@") {
		if checkEmail(s) != nil {
			return "", invalid(key, "%q is not a valid email address or ID", s)
		}
		return s, nil
	}
	if strings.ContainsAny(s, " \t\r\n/?#") {
		return "", invalid(key, "%q is not a valid email address or ID", s)
	}
	return s, nil
}

func checkEmail(s string) error {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return err
	}
	if addr.Address != s || addr.Name != "" {
		return errNotBareAddress
	}
	at := strings.LastIndex(s, "@")
	if at <= 0 || at == len(s)-1 {
		return errNotBareAddress
	}
	return nil
}

func (a arguments) boolean(key string, def bool) (bool, error) {
	if !a.present(key) {
		return def, nil
	}
	b, ok := a[key].(bool)
	if !ok {
		return false, invalid(key, "must be a boolean")
	}
	return b, nil
}

// integer returns a whole number within [min, max].
func (a arguments) integer(key string, def, min, max int64) (int64, error) {
	if !a.present(key) {
		return def, nil
	}
	var n float64
	switch v := a[key].(type) {
	case float64:
		n = v
	case int:
		n = float64(v)
	case int64:
		n = float64(v)
	default:
		return 0, invalid(key, "must be an integer")
	}
	if n != math.Trunc(n) {
		return 0, invalid(key, "must be an integer")
	}
	if n < float64(min) || n > float64(max) {
		return 0, invalid(key, "must be between %d and %d", min, max)
	}
	return int64(n), nil
}

// enum returns the allowed value matching the argument, compared
// case-insensitively when fold is set.
func (a arguments) enum(key string, def string, fold bool, allowed ...string) (string, error) {
	s, err := a.str(key, def == "")
	if err != nil {
		return "", err
	}
	if s == "" {
		return def, nil
	}
	for _, v := range allowed {
		if s == v || (fold && strings.EqualFold(s, v)) {
			return v, nil
		}
	}
	return "", invalid(key, "must be one of %s, got %q", strings.Join(allowed, ", "), s)
}
