package command

import (
	"strconv"
	"strings"
)

// Args provides methods for reading key=value args
type Args []string

// GetString for an arg key
func (a Args) GetString(key string) (x string, ok bool) {
	prefix := key + "="
	for _, str := range a {
		if strings.HasPrefix(str, prefix) {
			return str[len(prefix):], true
		}
	}
	return
}

// Has returns true if key is present.
func (a Args) Has(key string) bool {
	_, ok := a.GetString(key)
	return ok
}

// GetInt for an arg key
func (a Args) GetInt(key string) (x int, ok bool) {
	var str string
	var err error
	if str, ok = a.GetString(key); ok {
		if x, err = strconv.Atoi(str); err != nil {
			ok = false
		}
	}
	return
}

// GetFloat for an arg key
func (a Args) GetFloat(key string) (x float64, ok bool) {
	var str string
	var err error
	if str, ok = a.GetString(key); ok {
		if x, err = strconv.ParseFloat(str, 64); err != nil {
			ok = false
		}
	}
	return
}

// GetBool for an arg key
func (a Args) GetBool(key string) (x bool, ok bool) {
	var str string
	var err error
	if str, ok = a.GetString(key); ok {
		if x, err = strconv.ParseBool(str); err != nil {
			ok = false
		}
	}
	return
}

// Each calls fn for every key=value pair, in order.
func (a Args) Each(fn func(key, value string) error) error {
	for _, str := range a {
		kv := strings.SplitN(str, "=", 2)
		if len(kv) != 2 {
			continue
		}
		if err := fn(kv[0], kv[1]); err != nil {
			return err
		}
	}
	return nil
}

func (a Args) String() string {
	return strings.Join(a, " ")
}
