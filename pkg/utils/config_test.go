package utils

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Run("with nil values", func(t *testing.T) {
		config := NewConfig(nil)
		require.NotNil(t, config)
		assert.False(t, config.Has("anything"))
	})

	t.Run("with values", func(t *testing.T) {
		values := map[string]string{
			"key1": "value1",
			"key2": "value2",
		}
		config := NewConfig(values)

		assert.Equal(t, "value1", config.Get("key1"))
		assert.Equal(t, "value2", config.Get("key2"))

		// Verify it's a copy, not a reference
		values["key1"] = "modified"
		assert.NotEqual(t, "modified", config.Get("key1"))
	})
}

func TestNewConfigFromEnv(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "test.env")
	err := os.WriteFile(envFile, []byte("BACKROOM_TEST_FILE_KEY=from_file\n"), 0644)
	require.NoError(t, err)
	t.Cleanup(func() { os.Unsetenv("BACKROOM_TEST_FILE_KEY") })

	t.Setenv("BACKROOM_TEST_ENV_KEY", "from_env")

	config := NewConfigFromEnv(envFile, filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, "from_file", config.Get("BACKROOM_TEST_FILE_KEY"))
	assert.Equal(t, "from_env", config.Get("BACKROOM_TEST_ENV_KEY"))
}

func TestEnvFile(t *testing.T) {
	t.Setenv("ENV_FILE", "")
	assert.Equal(t, ".env", EnvFile())

	t.Setenv("ENV_FILE", "/etc/backroom/.env")
	assert.Equal(t, "/etc/backroom/.env", EnvFile())
}

func TestConfigGetWithDefault(t *testing.T) {
	config := NewConfig(map[string]string{
		"existing": "value",
		"empty":    "",
	})

	tests := []struct {
		key  string
		want string
	}{
		{"existing", "value"},
		{"missing", "default"},
		{"empty", "default"},
	}

	for _, test := range tests {
		t.Run(test.key, func(t *testing.T) {
			assert.Equal(t, test.want, config.GetWithDefault(test.key, "default"))
		})
	}
}

func TestConfigGetBool(t *testing.T) {
	config := NewConfig(map[string]string{
		"true_bool":      "true",
		"false_bool":     "false",
		"upper_true":     "TRUE",
		"true_1":         "1",
		"false_0":        "0",
		"true_yes":       "yes",
		"false_no":       "no",
		"true_enabled":   "enabled",
		"false_disabled": "disabled",
		"invalid":        "invalid_bool",
		"empty":          "",
	})

	tests := []struct {
		key      string
		expected bool
	}{
		{"true_bool", true},
		{"false_bool", false},
		{"upper_true", true},
		{"true_1", true},
		{"false_0", false},
		{"true_yes", true},
		{"false_no", false},
		{"true_enabled", true},
		{"false_disabled", false},
		{"invalid", false},
		{"empty", false},
		{"missing", false},
	}

	for _, test := range tests {
		t.Run(test.key, func(t *testing.T) {
			assert.Equal(t, test.expected, config.GetBool(test.key), "GetBool(%s)", test.key)
		})
	}
}

func TestConfigGetIntWithDefault(t *testing.T) {
	config := NewConfig(map[string]string{
		"valid_int":   "42",
		"negative":    "-10",
		"invalid_int": "not_a_number",
		"empty":       "",
	})

	tests := []struct {
		key      string
		expected int
	}{
		{"valid_int", 42},
		{"negative", -10},
		{"invalid_int", 999},
		{"empty", 999},
		{"missing", 999},
	}

	for _, test := range tests {
		t.Run(test.key, func(t *testing.T) {
			assert.Equal(t, test.expected, config.GetIntWithDefault(test.key, 999))
		})
	}
}

func TestConfigSetAndHas(t *testing.T) {
	config := NewConfig(map[string]string{"empty": ""})

	assert.True(t, config.Has("empty"))
	assert.False(t, config.Has("new_key"))

	config.Set("new_key", "new_value")
	assert.True(t, config.Has("new_key"))
	assert.Equal(t, "new_value", config.Get("new_key"))

	config.Set("new_key", "updated_value")
	assert.Equal(t, "updated_value", config.Get("new_key"))
}

func TestConfigRequire(t *testing.T) {
	config := NewConfig(map[string]string{
		"OPENAI_API_KEY": "sk-test",
		"MYSQL_HOST":     "   ",
	})

	assert.NoError(t, config.Require("OPENAI_API_KEY"))
	assert.NoError(t, config.Require())

	err := config.Require("OPENAI_API_KEY", "MYSQL_HOST", "MYSQL_DATABASE")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MYSQL_HOST")
	assert.Contains(t, err.Error(), "MYSQL_DATABASE")
	assert.NotContains(t, err.Error(), "OPENAI_API_KEY")
}

func TestConfigThreadSafety(t *testing.T) {
	config := NewConfig(map[string]string{"counter": "0"})

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for range 100 {
				config.Set("key", "value")
				config.Get("key")
				config.Has("key")
				config.GetBool("counter")
				config.GetIntWithDefault("counter", id)
				_ = config.Require("key")
			}
		}(i)
	}

	wg.Wait()
	// Test passes if no data races occur
}
