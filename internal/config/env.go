package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
)

// envSetter parses a raw environment value into a config field
type envSetter func(field reflect.Value, raw string) error

// envSetters lists the field kinds an env tag may sit on
var envSetters = map[reflect.Kind]envSetter{
	reflect.String: func(field reflect.Value, raw string) error {
		field.SetString(raw)
		return nil
	},
	reflect.Int:   setInt,
	reflect.Int32: setInt,
	reflect.Int64: setInt,
	reflect.Bool: func(field reflect.Value, raw string) error {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return errors.New("expected a boolean")
		}
		field.SetBool(b)
		return nil
	},
	reflect.Slice: setStringList,
}

func setInt(field reflect.Value, raw string) error {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, field.Type().Bits())
	if err != nil {
		return errors.New("expected an integer")
	}
	field.SetInt(n)
	return nil
}

// setStringList splits a comma separated value, dropping blank items
func setStringList(field reflect.Value, raw string) error {
	if field.Type().Elem().Kind() != reflect.String {
		return fmt.Errorf("only string lists are supported, got %s", field.Type())
	}
	items := []string{}
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	field.Set(reflect.ValueOf(items))
	return nil
}

// applyEnv overrides every env-tagged field of cfg that has its variable set.
// All failures are reported together. Values are left out of the messages since
// some of them are secrets.
func applyEnv(cfg *Config) error {
	return errors.Join(overlayEnv(reflect.ValueOf(cfg).Elem())...)
}

func overlayEnv(v reflect.Value) []error {
	var errs []error
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field, meta := v.Field(i), t.Field(i)
		if field.Kind() == reflect.Struct {
			errs = append(errs, overlayEnv(field)...)
			continue
		}

		name := meta.Tag.Get("env")
		if name == "" {
			continue
		}
		// A tag on an unsupported kind is a programming error, so it fails even when unset
		set, ok := envSetters[field.Kind()]
		if !ok {
			errs = append(errs, fmt.Errorf("%s: unsupported field kind %s", name, field.Kind()))
			continue
		}

		raw, present := os.LookupEnv(name)
		if !present {
			continue
		}
		if err := set(field, raw); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}

	return errs
}
