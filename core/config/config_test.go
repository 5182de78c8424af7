package config

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v2"
)

func TestBuiltinConfig(t *testing.T) {
	rawConfig := make(map[string]interface{})
	assert.Nil(t, yaml.Unmarshal(defaultConfigData, &rawConfig))

	knownFields := make(map[string]bool)
	rt := reflect.TypeOf(Configuration{})
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		assert.NotEmpty(t, jsonTag)
		jsonField := strings.Split(jsonTag, ",")[0]
		knownFields[jsonField] = true

		if _, ok := rawConfig[jsonField]; !ok {
			assert.False(t, true, "default config missing field: %q", jsonField)
		}
	}

	for k := range rawConfig {
		_, ok := knownFields[k]
		assert.True(t, ok, "default config contains invalid field: %q", k)
	}
}

func TestDefaultConfig(t *testing.T) {
	// Will panic() on load failure because it should never happen at runtime.
	assert.NotNil(t, defaultConfig())
}

func TestDefaultConfigIsValid(t *testing.T) {
	assert.Nil(t, defaultConfig().Validate())
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(c *Configuration)
		wantErr bool
	}{
		{"default", func(c *Configuration) {}, false},
		{"blank prompt", func(c *Configuration) { c.Prompt = "" }, true},
		{"negative history", func(c *Configuration) { c.HistoryLimit = -1 }, true},
		{"zero history", func(c *Configuration) { c.HistoryLimit = 0 }, false},
		{"bad color", func(c *Configuration) { c.Color = "sometimes" }, true},
		{"always color", func(c *Configuration) { c.Color = ColorAlways }, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr {
				assert.NotNil(t, err)
			} else {
				assert.Nil(t, err)
			}
		})
	}
}

func TestHistoryPath(t *testing.T) {
	assert.Equal(t, "", Default().HistoryPath(), "no backing directory means no history")

	cfg := &Configuration{configurationDir: "/tmp/jobline"}
	assert.Equal(t, "/tmp/jobline/history", cfg.HistoryPath())
}
